package grid

import (
	"math"
	"sort"
)

// MaxRadialPatternRadius is the largest radius RadialPattern covers.
const MaxRadialPatternRadius = 50

// RadialPattern holds every offset within MaxRadialPatternRadius of the
// origin, ordered by squared distance, then Z, then X. RadialPattern[0] is
// the origin itself. It is built once and must not be modified.
var RadialPattern = buildRadialPattern(MaxRadialPatternRadius)

// radialDistSq mirrors RadialPattern with each offset's squared length.
var radialDistSq = func() []int {
	out := make([]int, len(RadialPattern))
	for i, c := range RadialPattern {
		out[i] = c.LengthHorizontalSquared()
	}
	return out
}()

// NumCellsInRadius returns how many leading entries of RadialPattern lie
// within radius of the origin. Radii beyond MaxRadialPatternRadius are
// clamped.
// Complexity: O(log n).
func NumCellsInRadius(radius float64) int {
	if radius < 0 {
		return 0
	}
	r := math.Min(radius, MaxRadialPatternRadius)
	limit := int(math.Floor(r * r))
	return sort.Search(len(radialDistSq), func(i int) bool { return radialDistSq[i] > limit })
}

func buildRadialPattern(radius int) []Cell {
	rSq := radius * radius
	var out []Cell
	for z := -radius; z <= radius; z++ {
		for x := -radius; x <= radius; x++ {
			c := Cell{X: x, Z: z}
			if c.LengthHorizontalSquared() <= rSq {
				out = append(out, c)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].LengthHorizontalSquared(), out[j].LengthHorizontalSquared()
		if di != dj {
			return di < dj
		}
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].X < out[j].X
	})
	return out
}
