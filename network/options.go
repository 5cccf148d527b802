package network

import "fmt"

// DefaultStart is the start valve name used when WithStart is not given.
const DefaultStart = "AA"

// Option configures FromValves.
type Option func(*options)

type options struct {
	start  string
	strict bool
	err    error
}

func defaultOptions() options {
	return options{start: DefaultStart}
}

// WithStart designates the start valve by name.
// An empty name is recorded as ErrOptionViolation.
func WithStart(name string) Option {
	return func(o *options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty start name", ErrOptionViolation)
			return
		}
		o.start = name
	}
}

// WithStrictReachability makes FromValves reject graphs where a
// positive-flow valve cannot be reached from the start.
func WithStrictReachability() Option {
	return func(o *options) {
		o.strict = true
	}
}
