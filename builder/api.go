// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// api.go: public entry point and the sketch every constructor draws on.
//
// Design contract:
//   - One orchestrator: BuildValves(bopts, cons...). Resolves cfg, runs cons
//     in order over one sketch, then assigns flows and materializes valves.
//   - Constructors address vertices by index; names come from cfg.idFn, so
//     two constructors touching the same index share a vertex.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical valve lists.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/valvenet/valve"
)

// Constructor applies a deterministic topology to the sketch using the
// resolved builderConfig. Constructors validate their parameters early and
// return sentinel errors; they never panic.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch is the undirected tunnel layout under construction.
type sketch struct {
	names []string
	index map[string]int
	adj   [][]int
}

func newSketch() *sketch {
	return &sketch{index: make(map[string]int)}
}

// vertex returns the sketch position of name, adding it on first use.
func (s *sketch) vertex(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	i := len(s.names)
	s.names = append(s.names, name)
	s.index[name] = i
	s.adj = append(s.adj, nil)
	return i
}

// ensure adds the first n vertices of the ID scheme in index order.
func (s *sketch) ensure(n int, cfg builderConfig) {
	for i := 0; i < n; i++ {
		s.vertex(cfg.idFn(i))
	}
}

// tunnel links idx a and b both ways. Loops and repeats are ignored.
func (s *sketch) tunnel(a, b int, cfg builderConfig) {
	if a == b {
		return
	}
	u, v := s.vertex(cfg.idFn(a)), s.vertex(cfg.idFn(b))
	if slices.Contains(s.adj[u], v) {
		return
	}
	s.adj[u] = append(s.adj[u], v)
	s.adj[v] = append(s.adj[v], u)
}

// BuildValves resolves the builder configuration from bopts, applies all
// constructors in order, and returns the resulting valves in sketch order.
// The first valve is the start and carries flow rate 0; every other valve
// draws its rate from the configured FlowFn.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//   - ErrConstructFailed for a nil constructor or an empty result.
func BuildValves(bopts []BuilderOption, cons ...Constructor) ([]valve.Valve, error) {
	cfg := newBuilderConfig(bopts...)
	s := newSketch()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildValves: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildValves: %w", err)
		}
	}
	if len(s.names) == 0 {
		return nil, fmt.Errorf("BuildValves: no valves: %w", ErrConstructFailed)
	}

	out := make([]valve.Valve, len(s.names))
	for i, name := range s.names {
		v := valve.Valve{Name: name, Tunnels: make([]string, 0, len(s.adj[i]))}
		if i > 0 {
			v.FlowRate = cfg.flowFn(cfg.rng)
		}
		for _, j := range s.adj[i] {
			v.Tunnels = append(v.Tunnels, s.names[j])
		}
		out[i] = v
	}
	return out, nil
}
