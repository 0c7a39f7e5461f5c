// SPDX-License-Identifier: MIT

package cellfinder

import (
	"iter"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/dijkstra"
	"github.com/katalvlaran/cellfind/grid"
)

// Step costs of the best-stand-cell search.
const (
	standStepCost         = 1.0
	standDiagonalCost     = 1.41421354
	standNotStandableCost = 3.0
	standPawnCost         = 15.0
	standHostilePawnCost  = 40.0
	standDoorCost         = 6.0
	standLockedDoorCost   = 50.0

	// standImpassableCost prices doors the pawn cannot pass at all. It is
	// above any sum of the other costs.
	standImpassableCost = 1000.0

	standStartRadius  = 10.0
	maxParentWalkSize = 10000
)

// TryFindBestPawnStandCell finds the cheapest cell near pawn that pawn could
// stand on: walkable, free of other pawns, and not behind a closed door.
// The pawn's own cell never qualifies.
//
// Costs come from a Dijkstra expansion over cardinal steps, charging extra
// for unstandable cells, cells with other pawns (more if hostile) and closed
// doors (more if pawn cannot open them). The expansion is limited to a
// Manhattan radius that starts at 10 and doubles until a cell is found, the
// expansion stops growing, or the radius exceeds both map dimensions.
//
// With cellByCell the result is instead the first qualifying step on the
// cheapest path towards that cell.
func (f *Finder) TryFindBestPawnStandCell(m Map, pawn *core.Pawn, cellByCell bool) (grid.Cell, bool) {
	if m == nil || pawn == nil || !m.InBounds(pawn.Position) {
		return grid.Invalid, false
	}
	size := m.Size()
	origin := pawn.Position
	cost := standCost(m, pawn)

	best := grid.Invalid
	prevVisited := -1
	for radius := standStartRadius; ; radius *= 2 {
		err := f.stand.Run(origin, standNeighbors(m, radius, origin), cost,
			dijkstra.WithInfEdgeThreshold(standImpassableCost))
		if err != nil {
			f.log.Error("cellfinder: best stand cell search failed", "pawn", pawn.ID, "err", err)
			return grid.Invalid, false
		}
		if f.stand.Len() == prevVisited {
			return grid.Invalid, false
		}

		bestDist := 0.0
		for _, c := range f.stand.Order() {
			if c == origin {
				continue
			}
			d, _ := f.stand.Distance(c)
			if best.IsValid() && d >= bestDist {
				continue
			}
			if !m.Walkable(c) || m.AnyPawnBlockingPathAt(c, pawn) {
				continue
			}
			if door := m.DoorAt(c); door == nil || door.FreePassage() {
				best, bestDist = c, d
			}
		}
		if best.IsValid() {
			break
		}
		if radius > float64(size.X) && radius > float64(size.Z) {
			return grid.Invalid, false
		}
		prevVisited = f.stand.Len()
	}
	if !cellByCell {
		return best, true
	}

	path := f.stand.Path(best)
	if len(path) > maxParentWalkSize {
		f.log.Error("cellfinder: too many iterations walking the stand cell path", "pawn", pawn.ID)
		path = path[len(path)-maxParentWalkSize+1:]
	}
	for _, c := range path {
		if c == origin || !m.Walkable(c) {
			continue
		}
		if door := m.DoorAt(c); door == nil || door.FreePassage() {
			return c, true
		}
	}

	return best, true
}

// standNeighbors yields the walkable cardinal neighbors of cells within
// radius (Manhattan) of origin.
func standNeighbors(m Map, radius float64, origin grid.Cell) dijkstra.NeighborFunc[grid.Cell] {
	return func(x grid.Cell) iter.Seq[grid.Cell] {
		return func(yield func(grid.Cell) bool) {
			if float64(x.Sub(origin).LengthManhattan()) > radius {
				return
			}
			for _, d := range grid.CardinalDirections {
				c := x.Add(d)
				if !m.InBounds(c) || !m.Walkable(c) {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func standCost(m Map, pawn *core.Pawn) dijkstra.CostFunc[grid.Cell] {
	return func(from, to grid.Cell) float64 {
		door := m.DoorAt(to)
		if door != nil && !door.CanPhysicallyPass(pawn) {
			return standImpassableCost
		}
		cost := standStepCost
		if from.X != to.X && from.Z != to.Z {
			cost = standDiagonalCost
		}
		if !m.Standable(to) {
			cost += standNotStandableCost
		}
		if m.AnyPawnBlockingPathAt(to, pawn) {
			if hostilePawnAt(m, to, pawn) {
				cost += standHostilePawnCost
			} else {
				cost += standPawnCost
			}
		}
		if door != nil && !door.FreePassage() {
			if door.PawnCanOpen(pawn) {
				cost += standDoorCost
			} else {
				cost += standLockedDoorCost
			}
		}
		return cost
	}
}

func hostilePawnAt(m Map, c grid.Cell, pawn *core.Pawn) bool {
	for _, p := range m.PawnsAt(c) {
		if p.HostileTo(pawn) {
			return true
		}
	}
	return false
}
