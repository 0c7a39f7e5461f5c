// SPDX-License-Identifier: MIT

package cellfinder

import (
	"slices"

	"github.com/katalvlaran/cellfind/bfs"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/rng"
)

const (
	// regionCellDraws is how many random cells TryFindRandomCellInRegion
	// tries before scanning the whole region.
	regionCellDraws = 10

	// unboundedRadius disables extents pruning in TryFindRandomReachableCellNear.
	unboundedRadius = 1000

	// spawnRadiusRounds is how many doubling rounds the pawn spawn search
	// spends on unfogged, pawn-free cells.
	spawnRadiusRounds = 3

	// DefaultSpawnRadius is the usual firstTryWithRadius for the pawn spawn search.
	DefaultSpawnRadius = 4
)

var closewalkParms = core.For(core.NoPassClosedDoors, core.DangerDeadly, false)

// TryFindRandomReachableCellNear returns a random cell within radius of root
// that can be reached from root's region under tp and satisfies cellValidator.
//
// Regions are collected breadth-first from root's region. A region is entered
// when it allows tp as a destination, its bounding rect comes within radius
// of root (skipped when radius > 1000), and regionValidator accepts it. Root's
// region is always a candidate. Candidates are then drawn with probability
// proportional to cell count; a region that yields no cell is dropped and
// another is drawn.
//
// maxRegions == 0 means bfs.DefaultMaxRegions. A nil map is logged once.
func (f *Finder) TryFindRandomReachableCellNear(
	root grid.Cell,
	m Map,
	radius float64,
	tp core.TraverseParms,
	cellValidator func(grid.Cell) bool,
	regionValidator func(*core.Region) bool,
	maxRegions int,
) (grid.Cell, bool) {
	if m == nil {
		f.errorOnce(keyReachableNilMap, "cellfinder: tried to find a reachable cell in a nil map")
		return grid.Invalid, false
	}
	start := m.RegionAt(root)
	if start == nil || !core.SetPassable.Allows(start.Type) {
		return grid.Invalid, false
	}
	s := f.acquire()
	defer f.release(s)

	radSq := radius * radius
	_, err := s.trav.BreadthFirstTraverse(start,
		func(_, r *core.Region) bool {
			if !r.Allows(tp, true) {
				return false
			}
			if radius <= unboundedRadius && float64(r.ExtentsClose().ClosestDistSquaredTo(root)) > radSq {
				return false
			}
			return regionValidator == nil || regionValidator(r)
		},
		func(r *core.Region) bool {
			s.regions = append(s.regions, r)
			return false
		},
		f.traverseOptions(maxRegions, core.SetPassable)...)
	if err != nil {
		f.log.Error("cellfinder: reachable region traversal failed", "root", root.String(), "err", err)
		return grid.Invalid, false
	}

	inRange := func(c grid.Cell) bool {
		return float64(c.Sub(root).LengthHorizontalSquared()) <= radSq &&
			(cellValidator == nil || cellValidator(c))
	}
	for len(s.regions) > 0 {
		i := rng.ElementByWeight(s.regions, f.rnd, cellCountWeight)
		if c, ok := f.TryFindRandomCellInRegion(s.regions[i], inRange); ok {
			return c, true
		}
		s.regions = slices.Delete(s.regions, i, i+1)
	}

	return grid.Invalid, false
}

// TryFindRandomCellInRegion returns a cell of reg satisfying validator.
// It draws a few random cells first and then scans every cell in shuffled
// order, so it reports false only when no cell qualifies. On failure the
// returned cell is a random cell of reg.
func (f *Finder) TryFindRandomCellInRegion(reg *core.Region, validator func(grid.Cell) bool) (grid.Cell, bool) {
	if reg == nil || reg.CellCount() == 0 {
		return grid.Invalid, false
	}
	for i := 0; i < regionCellDraws; i++ {
		c := reg.RandomCell(f.rnd)
		if validator == nil || validator(c) {
			return c, true
		}
	}

	s := f.acquire()
	defer f.release(s)
	s.cells = append(s.cells[:0], reg.Cells()...)
	rng.Shuffle(s.cells, f.rnd)
	for _, c := range s.cells {
		if validator == nil || validator(c) {
			return c, true
		}
	}

	return reg.RandomCell(f.rnd), false
}

// RandomClosewalkCellNear returns a standable cell reachable from root
// without opening doors, or root when there is none.
func (f *Finder) RandomClosewalkCellNear(root grid.Cell, m Map, radius int, extraValidator func(grid.Cell) bool) grid.Cell {
	if c, ok := f.TryRandomClosewalkCellNear(root, m, radius, extraValidator); ok {
		return c
	}
	return root
}

// TryRandomClosewalkCellNear finds a standable cell within radius of root
// that is reachable without passing closed doors and satisfies
// extraValidator, if given.
func (f *Finder) TryRandomClosewalkCellNear(root grid.Cell, m Map, radius int, extraValidator func(grid.Cell) bool) (grid.Cell, bool) {
	return f.TryFindRandomReachableCellNear(root, m, float64(radius), closewalkParms,
		func(c grid.Cell) bool {
			return m.Standable(c) && (extraValidator == nil || extraValidator(c))
		}, nil, bfs.DefaultMaxRegions)
}

// RandomClosewalkCellNearNotForbidden prefers closewalk cells not forbidden
// to pawn and falls back to RandomClosewalkCellNear.
func (f *Finder) RandomClosewalkCellNearNotForbidden(root grid.Cell, m Map, radius int, pawn *core.Pawn) grid.Cell {
	c, ok := f.TryFindRandomReachableCellNear(root, m, float64(radius), closewalkParms,
		func(c grid.Cell) bool {
			return !m.IsForbidden(c, pawn) && m.Standable(c)
		}, nil, bfs.DefaultMaxRegions)
	if ok {
		return c
	}
	return f.RandomClosewalkCellNear(root, m, radius, nil)
}

// TryFindRandomSpawnCellForPawnNear finds a standable, pawn-free cell near
// root to put a pawn on.
//
// root itself wins when it qualifies. Otherwise three rounds, starting at
// firstTryWithRadius and doubling, look for a pawn-free standable cell that
// is not fogged unless root is. After that, plain closewalk searches from
// firstTryWithRadius+1 double the radius until it exceeds half of both map
// dimensions. Failure returns root.
func (f *Finder) TryFindRandomSpawnCellForPawnNear(root grid.Cell, m Map, firstTryWithRadius int) (grid.Cell, bool) {
	if m == nil {
		return root, false
	}
	if m.Standable(root) && m.FirstPawnAt(root) == nil {
		return root, true
	}
	rootFogged := m.Fogged(root)
	free := func(c grid.Cell) bool {
		return m.Standable(c) && (rootFogged || !m.Fogged(c)) && m.FirstPawnAt(c) == nil
	}

	radius := firstTryWithRadius
	for i := 0; i < spawnRadiusRounds; i++ {
		if c, ok := f.TryFindRandomReachableCellNear(root, m, float64(radius), closewalkParms, free, nil, bfs.DefaultMaxRegions); ok {
			return c, true
		}
		radius *= 2
	}

	size := m.Size()
	radius = max(firstTryWithRadius+1, 1)
	for {
		if c, ok := f.TryRandomClosewalkCellNear(root, m, radius, nil); ok {
			return c, true
		}
		if radius > size.X/2 && radius > size.Z/2 {
			return root, false
		}
		radius *= 2
	}
}

// RandomSpawnCellForPawnNear is TryFindRandomSpawnCellForPawnNear returning
// root on failure.
func (f *Finder) RandomSpawnCellForPawnNear(root grid.Cell, m Map, firstTryWithRadius int) grid.Cell {
	c, _ := f.TryFindRandomSpawnCellForPawnNear(root, m, firstTryWithRadius)
	return c
}
