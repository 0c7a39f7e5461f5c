// SPDX-License-Identifier: MIT

package cellfinder

import (
	"math"

	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/rng"
)

const (
	// nearCellDraws is how many random cells TryFindRandomCellNear tries
	// before scanning the whole square.
	nearCellDraws = 20

	// minInsideDraws is the least number of random draws TryFindRandomCellInsideWith makes.
	minInsideDraws = 5
)

// RandomCell returns a uniformly chosen cell of m.
func (f *Finder) RandomCell(m Map) grid.Cell {
	size := m.Size()
	return grid.Cell{X: rng.Range(f.rnd, 0, size.X), Z: rng.Range(f.rnd, 0, size.Z)}
}

// RandomNotEdgeCell returns a random cell at least minEdgeDistance cells
// away from every map edge, or grid.Invalid when the map is too small.
func (f *Finder) RandomNotEdgeCell(minEdgeDistance int, m Map) grid.Cell {
	size := m.Size()
	if minEdgeDistance > size.X/2 || minEdgeDistance > size.Z/2 {
		return grid.Invalid
	}
	return grid.Cell{
		X: rng.Range(f.rnd, minEdgeDistance, size.X-minEdgeDistance),
		Z: rng.Range(f.rnd, minEdgeDistance, size.Z-minEdgeDistance),
	}
}

// TryFindRandomCellNear looks for a cell satisfying validator inside the
// square of half-width squareRadius around root, clipped to the map.
//
// With maxTries < 0, or maxTries at least the square's area, it makes a
// fixed number of random draws and then scans every cell of the clipped
// square in shuffled row and column order, so a qualifying cell is always
// found. With 0 <= maxTries < area it makes exactly maxTries draws and gives
// up. Failure returns root.
//
// Every candidate is reported to the Observer, if one is attached.
func (f *Finder) TryFindRandomCellNear(root grid.Cell, m Map, squareRadius int, validator func(grid.Cell) bool, maxTries int) (grid.Cell, bool) {
	minX, maxX := root.X-squareRadius, root.X+squareRadius
	minZ, maxZ := root.Z-squareRadius, root.Z+squareRadius
	area := (maxX - minX + 1) * (maxZ - minZ + 1)

	size := m.Size()
	minX, minZ = max(minX, 0), max(minZ, 0)
	maxX, maxZ = min(maxX, size.X-1), min(maxZ, size.Z-1)
	if minX > maxX || minZ > maxZ {
		return root, false
	}

	tries, bounded := nearCellDraws, false
	if maxTries >= 0 && maxTries < area {
		tries, bounded = maxTries, true
	}
	for i := 0; i < tries; i++ {
		c := grid.Cell{X: rng.RangeInclusive(f.rnd, minX, maxX), Z: rng.RangeInclusive(f.rnd, minZ, maxZ)}
		if validator == nil || validator(c) {
			f.flash(c, 0.5, "found")
			return c, true
		}
		f.flash(c, 0, "inv")
	}
	if bounded {
		return root, false
	}

	s := f.acquire()
	defer f.release(s)
	for x := minX; x <= maxX; x++ {
		s.xs = append(s.xs, x)
	}
	for z := minZ; z <= maxZ; z++ {
		s.zs = append(s.zs, z)
	}
	rng.Shuffle(s.xs, f.rnd)
	rng.Shuffle(s.zs, f.rnd)
	for _, x := range s.xs {
		for _, z := range s.zs {
			c := grid.Cell{X: x, Z: z}
			if validator == nil || validator(c) {
				f.flash(c, 0.6, "found2")
				return c, true
			}
			f.flash(c, 0.25, "inv2")
		}
	}

	return root, false
}

// TryFindRandomCellInsideWith returns a cell of rect satisfying predicate.
// It draws max(round(sqrt(area)), 5) random cells and then scans every cell
// in shuffled order, so it reports false only when no cell qualifies.
// Failure returns grid.Invalid.
func (f *Finder) TryFindRandomCellInsideWith(rect grid.Rect, predicate func(grid.Cell) bool) (grid.Cell, bool) {
	if rect.IsEmpty() {
		return grid.Invalid, false
	}
	draws := max(int(math.Round(math.Sqrt(float64(rect.Area())))), minInsideDraws)
	for i := 0; i < draws; i++ {
		c := rect.RandomCell(f.rnd)
		if predicate == nil || predicate(c) {
			return c, true
		}
	}

	s := f.acquire()
	defer f.release(s)
	s.cells = rect.AppendCells(s.cells[:0])
	rng.Shuffle(s.cells, f.rnd)
	for _, c := range s.cells {
		if predicate == nil || predicate(c) {
			return c, true
		}
	}

	return grid.Invalid, false
}
