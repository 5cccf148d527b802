package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/network"
	"golang.org/x/sync/errgroup"
)

// ErrGraphNil is returned by Solve when the graph pointer is nil.
var ErrGraphNil = errors.New("solver: graph is nil")

// Budgets holds the time budget of each search. The usual puzzle values are
// 30 minutes for one agent and 26 for two.
type Budgets struct {
	Single uint32
	Dual   uint32
}

// DefaultBudgets returns the puzzle budgets.
func DefaultBudgets() Budgets {
	return Budgets{Single: 30, Dual: 26}
}

// Report bundles both answers for one graph.
type Report struct {
	Budgets Budgets
	Single  SingleResult
	Dual    DualResult
}

// Solve runs the single- and dual-agent searches concurrently over the same
// read-only graph. A context cancelled before a search starts aborts it with
// ctx.Err(); a running search is not interrupted. Budgets large enough that a
// total could leave the uint64 range fail with ErrPressureOverflow.
func Solve(ctx context.Context, g *network.ValveGraph, b Budgets, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	if !fits(g, b.Single, 1) {
		return Report{}, fmt.Errorf("%w: single-agent budget %d", ErrPressureOverflow, b.Single)
	}
	if !fits(g, b.Dual, 2) {
		return Report{}, fmt.Errorf("%w: dual-agent budget %d", ErrPressureOverflow, b.Dual)
	}
	rep := Report{Budgets: b}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("solver: single-agent search: %w", err)
		}
		rep.Single = Single(g, b.Single, opts...)
		return nil
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("solver: dual-agent search: %w", err)
		}
		rep.Dual = Dual(g, b.Dual, opts...)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return rep, nil
}
