package solver

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/valvenet/mask"
	"github.com/katalvlaran/valvenet/network"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Partition is the pair of disjoint opened sets the two agents work on.
type Partition struct {
	First, Second mask.Set
}

// DualResult is the outcome of Dual.
type DualResult struct {
	Pressure  uint64
	Partition Partition
	// Plans holds one plan per agent, in Partition order.
	Plans [2][]Step
	// Masks is the number of distinct opened sets reached by one agent.
	Masks int
	// Visits is the number of search nodes walked, the start included.
	Visits int
}

// dualSearch owns the best-per-mask table of one Dual call.
type dualSearch struct {
	c      *compact
	best   map[mask.Set]uint64
	visits int
}

// walk explores every trajectory of one agent and keeps, for each exact
// opened set, the highest total seen.
func (s *dualSearch) walk(at int, left uint32, open mask.Set, total uint64) {
	s.visits++
	if v, ok := s.best[open]; !ok || total > v {
		s.best[open] = total
	}
	for _, t := range s.c.goals {
		if open.Has(t.bit) {
			continue
		}
		rem, ok := s.c.step(at, t, left)
		if !ok {
			continue
		}
		s.walk(t.at, rem, open.With(t.bit), add(total, gain(s.c.points[t.at].flow, rem)))
	}
}

type scored struct {
	set   mask.Set
	value uint64
}

// combine returns the best sum over pairs of disjoint sets in best.
//
// Entries are scanned by descending value. For a fixed first entry the
// partner sums only decrease, and no later first entry can exceed twice its
// own value, so both loops stop as soon as they cannot beat the running best.
func combine(best map[mask.Set]uint64) (Partition, uint64) {
	keys := maps.Keys(best)
	entries := make([]scored, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, scored{set: k, value: best[k]})
	}
	slices.SortFunc(entries, func(a, b scored) int {
		if c := cmp.Compare(b.value, a.value); c != 0 {
			return c
		}
		return cmp.Compare(a.set, b.set)
	})

	var (
		top   uint64
		part  Partition
		found bool
	)
	for i, a := range entries {
		if found && a.value <= top/2 {
			break
		}
		for _, b := range entries[i:] {
			sum := add(a.value, b.value)
			if found && sum <= top {
				break
			}
			if !a.set.Disjoint(b.set) {
				continue
			}
			top, part, found = sum, Partition{First: a.set, Second: b.set}, true
		}
	}
	return part, top
}

// Dual searches the best joint outcome of two agents that both start at the
// start valve with budget minutes and never open the same valve. g must be
// non-nil.
//
// One agent's trajectory space is walked exhaustively, recording the best
// total per exact opened set; the answer pairs two disjoint sets.
func Dual(g *network.ValveGraph, budget uint32, opts ...Option) DualResult {
	o := newOptions(opts...)
	c := newCompact(g)
	s := &dualSearch{c: c, best: make(map[mask.Set]uint64)}
	s.walk(0, budget, mask.Empty, 0)

	part, top := combine(s.best)
	res := DualResult{
		Pressure:  top,
		Partition: part,
		Masks:     len(s.best),
		Visits:    s.visits,
	}
	for i, set := range []mask.Set{part.First, part.Second} {
		res.Plans[i] = newSingleSearch(c, set).plan(budget)
	}
	o.log.WithFields(logrus.Fields{
		"budget":   budget,
		"targets":  len(c.goals),
		"masks":    res.Masks,
		"visits":   res.Visits,
		"first":    c.names(part.First),
		"second":   c.names(part.Second),
		"pressure": res.Pressure,
	}).Debug("dual-agent search done")
	return res
}

// BestDualPressure returns the maximum pressure two agents can release
// within budget minutes each.
func BestDualPressure(g *network.ValveGraph, budget uint32) uint64 {
	return Dual(g, budget).Pressure
}
