// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// topologies.go: deterministic constructors.
//
// Contract (all constructors):
//   - Validate parameters first; no sketch mutation on invalid input.
//   - Add vertices 0..n-1 via cfg.idFn in ascending index order.
//   - Emit tunnels in a stable, documented order.
//
// Complexity: O(n) for Path/Cycle/Star, O(rows·cols) for Grid,
// O(n²) for Complete/RandomSparse.

package builder

import "fmt"

// File-local constants (stable method tags and minima).
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minGridNodes     = 2
	minCompleteNodes = 2
	minSparseNodes   = 2

	probMin = 0.0
	probMax = 1.0
)

// Path returns a Constructor for the chain 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.ensure(n, cfg)
		for i := 0; i+1 < n; i++ {
			s.tunnel(i, i+1, cfg)
		}
		return nil
	}
}

// Cycle returns a Constructor for the ring i–(i+1)%n.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.ensure(n, cfg)
		for i := 0; i < n; i++ {
			s.tunnel(i, (i+1)%n, cfg)
		}
		return nil
	}
}

// Star returns a Constructor with hub 0 (the start) and leaves 1..n-1.
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.ensure(n, cfg)
		for i := 1; i < n; i++ {
			s.tunnel(0, i, cfg)
		}
		return nil
	}
}

// Grid returns a Constructor for a rows×cols orthogonal grid in row-major
// index order; index r*cols+c sits at row r, column c.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridNodes {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, total ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, minGridNodes, ErrTooFewVertices)
		}
		s.ensure(rows*cols, cfg)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					s.tunnel(id, id+1, cfg)
				}
				if r+1 < rows {
					s.tunnel(id, id+cols, cfg)
				}
			}
		}
		return nil
	}
}

// Complete returns a Constructor linking every pair {i,j}, i<j.
func Complete(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.ensure(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.tunnel(i, j, cfg)
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor for a connected random network.
//
// A random spanning tree comes first (vertex i links to a uniformly chosen
// j<i), then every remaining pair {i,j}, i<j, is added with probability p.
// The spanning tree keeps the result connected, so every valve is reachable
// and every valve has at least one tunnel.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		rng := cfg.rng
		s.ensure(n, cfg)
		for i := 1; i < n; i++ {
			s.tunnel(i, rng.Intn(i), cfg)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					s.tunnel(i, j, cfg)
				}
			}
		}
		return nil
	}
}
