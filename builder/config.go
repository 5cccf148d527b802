// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn   = PuzzleIDFn     ("AA","AB",…)
//   - rng    = nil            (pure/deterministic unless seeded)
//   - flowFn = DefaultFlowFn  (constant DefaultFlowRate)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	flowFn FlowFn
}

// newBuilderConfig applies options in order over the defaults
// (later options override earlier ones).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   PuzzleIDFn,
		rng:    nil,
		flowFn: DefaultFlowFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
