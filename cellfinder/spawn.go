// SPDX-License-Identifier: MIT

package cellfinder

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// minWipeCost is the least a wiped building or item counts for, so wiping
// a worthless one is still worse than wiping nothing.
const minWipeCost = 0.001

// FindNoWipeSpawnLocNear returns the spot within maxDist of near where a
// thing of def, facing rot, would destroy the least market value when
// spawned.
//
// Candidates are visited in radial order and must keep the whole footprint
// on the map, be visible from near, pass extraValidator (if given) and, for
// buildings, allow construction. A footprint holding a pawn is skipped for
// impassable things, and one holding an impassable cell is skipped for
// items. The first spot that wipes nothing wins. near is returned when no
// spot qualifies.
func (f *Finder) FindNoWipeSpawnLocNear(
	near grid.Cell,
	m SpawnMap,
	def *gridgraph.ThingDef,
	rot grid.Rot4,
	maxDist int,
	extraValidator func(grid.Cell) bool,
) grid.Cell {
	if m == nil || def == nil {
		return near
	}
	size := m.Size()
	footprint := def.FootprintSize()

	best := grid.Invalid
	bestCost := math.MaxFloat64
	n := grid.NumCellsInRadius(float64(maxDist))
	for i := 0; i < n; i++ {
		c := near.Add(grid.RadialPattern[i])
		if !c.InBounds(size) {
			continue
		}
		rect := grid.OccupiedRect(c, rot, footprint)
		if !rect.InBounds(size) {
			continue
		}
		if !m.LineOfSight(near, c, true) {
			continue
		}
		if extraValidator != nil && !extraValidator(c) {
			continue
		}
		if def.Category == gridgraph.CategoryBuilding && !m.CanBuildOnTerrain(def, c, rot) {
			continue
		}

		cost, ok := wipeCost(m, def, rect)
		if !ok {
			continue
		}
		if !best.IsValid() || cost < bestCost {
			if cost == 0 {
				return c
			}
			best, bestCost = c, cost
		}
	}
	if best.IsValid() {
		return best
	}

	return near
}

// wipeCost sums the market value of every thing in rect that spawning def
// would destroy. ok is false when the footprint cannot take def at all.
func wipeCost(m SpawnMap, def *gridgraph.ThingDef, rect grid.Rect) (cost float64, ok bool) {
	wiped := mapset.New[*gridgraph.Thing]()
	var order []*gridgraph.Thing
	pawnPresent, impassablePresent := false, false
	for z := rect.MinZ; z <= rect.MaxZ; z++ {
		for x := rect.MinX; x <= rect.MaxX; x++ {
			c := grid.Cell{X: x, Z: z}
			if !m.Walkable(c) {
				impassablePresent = true
			}
			if m.FirstPawnAt(c) != nil {
				pawnPresent = true
			}
			for _, t := range m.ThingsAt(c) {
				if wiped.Has(t) || !gridgraph.SpawningWipes(def, t.Def) {
					continue
				}
				wiped.Put(t)
				order = append(order, t)
			}
		}
	}
	if pawnPresent && def.Passability == gridgraph.Impassable {
		return 0, false
	}
	if impassablePresent && def.Category == gridgraph.CategoryItem {
		return 0, false
	}

	for _, t := range order {
		if t.Def.Category == gridgraph.CategoryBuilding && len(t.Def.CostList) > 0 && t.Def.CostStuffCount == 0 {
			for _, part := range t.Def.CostList {
				if part.Def != nil {
					cost += part.Def.MarketValue * float64(part.Count) * float64(t.Stack())
				}
			}
		} else {
			cost += t.MarketValue() * float64(t.Stack())
		}
		if t.Def.Category == gridgraph.CategoryBuilding || t.Def.Category == gridgraph.CategoryItem {
			cost = math.Max(cost, minWipeCost)
		}
	}

	return cost, true
}
