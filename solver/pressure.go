package solver

import (
	"errors"
	"math"
	"math/bits"

	"github.com/katalvlaran/valvenet/network"
)

// ErrPressureOverflow is returned by Solve when a total could exceed the
// range of uint64 for the given flow rates and budgets.
var ErrPressureOverflow = errors.New("solver: pressure may overflow uint64")

// gain is what a valve of flow rate flow releases over rem minutes. The
// product of two uint32 values always fits in uint64.
func gain(flow, rem uint32) uint64 {
	return uint64(flow) * uint64(rem)
}

// add sums two totals, saturating at math.MaxUint64 so larger totals never
// compare below smaller ones.
func add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}

// fits reports whether agents agents, each with budget minutes, can never
// release more than math.MaxUint64 on g. The bound opens every target at
// minute zero.
func fits(g *network.ValveGraph, budget uint32, agents uint64) bool {
	var rate uint64
	for _, t := range g.Targets() {
		rate += uint64(g.FlowRate(t.Node))
	}
	hi, lo := bits.Mul64(rate, uint64(budget))
	if hi != 0 {
		return false
	}
	hi, _ = bits.Mul64(lo, agents)
	return hi == 0
}
