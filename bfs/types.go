// Package bfs provides tunable options and error definitions
// for breadth-first search over a dense adjacency list.
package bfs

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance recorded for vertices BFS never reached.
const Unreachable = math.MaxUint32

// Sentinel errors for BFS execution.
var (
	// ErrSourceOutOfRange is returned when the source id is not a vertex.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrNeighborOutOfRange is returned when an adjacency row names a vertex
	// outside [0, len(adj)).
	ErrNeighborOutOfRange = errors.New("bfs: neighbor out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int, depth uint32) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int, uint32) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int, depth uint32) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Dist: edge count from the source, Unreachable if never reached.
//   - Parent: predecessor in the BFS tree, -1 for the source and unreached vertices.
type Result struct {
	Order  []int
	Dist   []uint32
	Parent []int
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Dist) && r.Dist[id] != Unreachable
}

// PathTo reconstructs the path from the source vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Dist[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
