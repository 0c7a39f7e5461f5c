package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/rng"
)

func TestNew_ZeroSeedIsDefault(t *testing.T) {
	a := rng.New(0)
	b := rng.New(rng.DefaultSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDerive_IndependentStreams(t *testing.T) {
	base := rng.New(42)
	s1 := rng.Derive(base, 1)
	s2 := rng.Derive(base, 1)
	assert.NotEqual(t, s1.Int63(), s2.Int63(), "consecutive derivations must differ")

	again := rng.Derive(rng.New(42), 1)
	assert.Equal(t, rng.Derive(rng.New(42), 1).Int63(), again.Int63())
}

func TestRange(t *testing.T) {
	r := rng.New(3)
	for i := 0; i < 500; i++ {
		v := rng.Range(r, 2, 5)
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 5)
		w := rng.RangeInclusive(r, 2, 5)
		assert.GreaterOrEqual(t, w, 2)
		assert.LessOrEqual(t, w, 5)
	}
	assert.Equal(t, 4, rng.Range(r, 4, 4))
	assert.Equal(t, 4, rng.RangeInclusive(r, 4, 1))
}

func TestChance_Extremes(t *testing.T) {
	r := rng.New(9)
	for i := 0; i < 100; i++ {
		assert.False(t, rng.Chance(r, 0))
		assert.True(t, rng.Chance(r, 1))
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(a, rng.New(11))
	seen := make(map[int]bool)
	for _, v := range a {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
	rng.Shuffle([]int{}, nil)
}

func TestElementByWeight(t *testing.T) {
	r := rng.New(5)
	assert.Equal(t, -1, rng.ElementByWeight([]int{}, r, func(int) float64 { return 1 }))

	// Only index 2 carries weight.
	w := []float64{0, 0, 3, 0}
	for i := 0; i < 50; i++ {
		assert.Equal(t, 2, rng.ElementByWeight(w, r, func(v float64) float64 { return v }))
	}

	// Proportionality: 1:9 split should land roughly 10%/90%.
	items := []float64{1, 9}
	counts := [2]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[rng.ElementByWeight(items, r, func(v float64) float64 { return v })]++
	}
	require.InDelta(t, 0.1, float64(counts[0])/n, 0.02)

	// All-zero weights fall back to uniform and never return -1.
	for i := 0; i < 20; i++ {
		idx := rng.ElementByWeight([]float64{0, 0}, r, func(v float64) float64 { return v })
		assert.Contains(t, []int{0, 1}, idx)
	}
}

func TestTryRandomElement(t *testing.T) {
	_, ok := rng.TryRandomElement([]string{}, rng.New(1))
	assert.False(t, ok)
	v, ok := rng.TryRandomElement([]string{"only"}, rng.New(1))
	assert.True(t, ok)
	assert.Equal(t, "only", v)
}
