// Package mask provides Set, a fixed-width bitmask over target positions.
//
// A Set is a plain uint64: it is copied by value, compared with ==, and
// intersected with &. Bit i is set iff the target at position i is a member.
package mask

import (
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Width is the number of distinct positions a Set can hold.
const Width = 64

// Set is a bitmask of target positions.
type Set uint64

// Empty is the set with no members.
const Empty Set = 0

// Bit returns the singleton set {i}. Positions at or above Width yield Empty.
func Bit[T constraints.Integer](i T) Set {
	if i < 0 || uint64(i) >= Width {
		return Empty
	}
	return Set(1) << uint(i)
}

// Of returns the set containing every listed position.
func Of[T constraints.Integer](positions ...T) Set {
	var s Set
	for _, p := range positions {
		s |= Bit(p)
	}
	return s
}

// Fits reports whether n positions can be indexed by a Set.
func Fits[T constraints.Integer](n T) bool {
	return n >= 0 && uint64(n) <= Width
}

// Has reports whether position i is in s.
func (s Set) Has(i uint) bool {
	return s&Bit(i) != 0
}

// With returns s ∪ {i}.
func (s Set) With(i uint) Set {
	return s | Bit(i)
}

// Disjoint reports whether s and o share no member.
func (s Set) Disjoint(o Set) bool {
	return s&o == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Positions lists the members in ascending order.
func (s Set) Positions() []uint {
	out := make([]uint, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, uint(bits.TrailingZeros64(v)))
	}
	return out
}

// String renders s as {0,3,5}.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range s.Positions() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	b.WriteByte('}')
	return b.String()
}
