package solver

import "github.com/sirupsen/logrus"

// Option configures a solver call.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

func newOptions(opts ...Option) options {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes search statistics to l at debug level.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
