// Package builder provides ID schemes for generated valve names.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a valve name from its zero-based index.
// It must be pure and injective.
type IDFn func(idx int) string

// PuzzleIDFn renders idx in base 26 with letters A–Z, padded to at least two
// letters: 0→"AA", 1→"AB", 26→"BA", 675→"ZZ", 676→"BAA".
// Panics if idx < 0.
func PuzzleIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("PuzzleIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i > 0; i /= 26 {
		runes = append(runes, rune('A'+i%26))
	}
	for len(runes) < 2 {
		runes = append(runes, 'A')
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index, e.g. "v0", "v1".
// Panics on an empty prefix.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("PrefixIDFn: empty prefix")
	}
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
