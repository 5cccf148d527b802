// Package builder provides flow-rate distributions for generated valves.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultFlowRate is assigned to every non-start valve when no FlowFn is set.
const DefaultFlowRate uint32 = 1

// FlowFn produces a flow rate given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type FlowFn func(rng *rand.Rand) uint32

// DefaultFlowFn always returns DefaultFlowRate.
func DefaultFlowFn(_ *rand.Rand) uint32 {
	return DefaultFlowRate
}

// ConstantFlowFn returns a FlowFn that always yields v.
func ConstantFlowFn(v uint32) FlowFn {
	return func(_ *rand.Rand) uint32 {
		return v
	}
}

// UniformFlowFn returns a FlowFn sampling uniformly in [min, max] inclusive.
// A zero min mixes plain junctions (no flow) into the network.
// If rng is nil, yields max so output stays deterministic.
// Panics if max < min.
func UniformFlowFn(min, max uint32) FlowFn {
	if max < min {
		panic(fmt.Sprintf("UniformFlowFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) uint32 {
		if rng == nil || min == max {
			return max
		}
		return min + uint32(rng.Int63n(int64(max-min)+1))
	}
}
