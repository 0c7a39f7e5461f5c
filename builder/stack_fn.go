// Package builder provides helper functions and types
// for configuring item stack sizes in map constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultStackCount is the stack size used when no StackFn is configured.
const DefaultStackCount = 1

// StackFn produces a stack size given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type StackFn func(rng *rand.Rand) int

// ConstantStackFn returns a StackFn that always yields n.
// Panics if n < 1.
func ConstantStackFn(n int) StackFn {
	if n < 1 {
		panic(fmt.Sprintf("ConstantStackFn: n must be ≥ 1, got %d", n))
	}
	return func(_ *rand.Rand) int { return n }
}

// UniformStackFn returns a StackFn sampling uniformly in [min, max].
// Panics if min < 1 or max < min. With a nil rng it yields min.
func UniformStackFn(min, max int) StackFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformStackFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}
