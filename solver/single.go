package solver

import (
	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/network"
	"github.com/sirupsen/logrus"
)

// Step is one valve opening in a plan.
type Step struct {
	// Valve is the input name of the opened valve.
	Valve string

	// Minute is the number of minutes elapsed when the valve is open.
	Minute uint32

	// Released is the total pressure the valve releases until the budget ends.
	Released uint64
}

// SingleResult is the outcome of Single.
type SingleResult struct {
	Pressure uint64
	Plan     []Step
	// States is the number of memoized search states.
	States int
}

// state is the memo key of the single-agent search.
type state struct {
	at   int
	left uint32
	open mask.Set
}

// singleSearch owns the memo table of one Single call.
type singleSearch struct {
	c       *compact
	allowed mask.Set
	memo    map[state]uint64
}

func newSingleSearch(c *compact, allowed mask.Set) *singleSearch {
	return &singleSearch{c: c, allowed: allowed, memo: make(map[state]uint64)}
}

// best returns the maximum additional pressure obtainable from point at with
// left minutes, given the already opened set.
func (s *singleSearch) best(at int, left uint32, open mask.Set) uint64 {
	key := state{at: at, left: left, open: open}
	if v, ok := s.memo[key]; ok {
		return v
	}
	var top uint64
	for _, t := range s.c.goals {
		if open.Has(t.bit) || !s.allowed.Has(t.bit) {
			continue
		}
		rem, ok := s.c.step(at, t, left)
		if !ok {
			continue
		}
		v := add(gain(s.c.points[t.at].flow, rem), s.best(t.at, rem, open.With(t.bit)))
		if v > top {
			top = v
		}
	}
	s.memo[key] = top
	return top
}

// plan replays the memo table from the entry state, picking at each point the
// first target that realizes the memoized optimum.
func (s *singleSearch) plan(budget uint32) []Step {
	var steps []Step
	at, left, open := 0, budget, mask.Empty
	for want := s.best(at, left, open); want > 0; {
		advanced := false
		for _, t := range s.c.goals {
			if open.Has(t.bit) || !s.allowed.Has(t.bit) {
				continue
			}
			rem, ok := s.c.step(at, t, left)
			if !ok {
				continue
			}
			released := gain(s.c.points[t.at].flow, rem)
			next := open.With(t.bit)
			rest := s.best(t.at, rem, next)
			if add(released, rest) != want {
				continue
			}
			steps = append(steps, Step{
				Valve:    s.c.g.Name(s.c.points[t.at].node),
				Minute:   budget - rem,
				Released: released,
			})
			at, left, open, want = t.at, rem, next, rest
			advanced = true
			break
		}
		if !advanced {
			break
		}
	}
	return steps
}

// Single searches the best plan for one agent starting at the start valve
// with budget minutes. g must be non-nil.
//
// Each move walks the shortest tunnel path to an unopened target and spends
// one more minute opening it; the valve then releases its flow rate for every
// remaining minute. States (point, minutes left, opened set) are memoized.
// Totals saturate at math.MaxUint64; Solve rejects inputs that could reach it.
func Single(g *network.ValveGraph, budget uint32, opts ...Option) SingleResult {
	o := newOptions(opts...)
	c := newCompact(g)
	s := newSingleSearch(c, g.TargetMask())
	res := SingleResult{Pressure: s.best(0, budget, mask.Empty)}
	res.Plan = s.plan(budget)
	res.States = len(s.memo)
	o.log.WithFields(logrus.Fields{
		"budget":   budget,
		"targets":  len(c.goals),
		"states":   res.States,
		"pressure": res.Pressure,
	}).Debug("single-agent search done")
	return res
}

// BestPressure returns the maximum pressure one agent can release within
// budget minutes.
func BestPressure(g *network.ValveGraph, budget uint32) uint64 {
	return Single(g, budget).Pressure
}
