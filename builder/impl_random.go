// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// impl_random.go — stochastic constructors: RandomRocks, RoadEdges,
// ScatterPawns, ScatterThings.
//
// Contract:
//   • All require cfg.rng != nil (ErrNeedRandSource).
//   • Cells are visited/drawn in a fixed order, so a fixed seed and
//     constructor order give identical maps.
//   • Random placement is bounded by maxPlacementAttempts per object;
//     running out yields ErrConstructFailed.

package builder

import (
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
	"github.com/katalvlaran/cellfind/rng"
)

// RandomRocks turns each door-free cell into wall terrain with probability p.
// Complexity: O(W×H).
func RandomRocks(p float64) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if p < MinProbability || p > MaxProbability {
			return builderErrorf(MethodRandomRocks, "p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomRocks, "%w", ErrNeedRandSource)
		}
		size := m.Size()
		for i := 0; i < size.Area(); i++ {
			c := size.CellAt(i)
			if cfg.rng.Float64() >= p || m.DoorAt(c) != nil {
				continue
			}
			if err := m.SetTerrain(c, cfg.wallTerrain); err != nil {
				return builderErrorf(MethodRandomRocks, "SetTerrain(%v): %w", c, err)
			}
		}
		return nil
	}
}

// RoadEdges marks n distinct walkable cells on the given side as road edge
// tiles.
// Complexity: O(side length).
func RoadEdges(side grid.Rot4, n int) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if n < 1 {
			return builderErrorf(MethodRoadEdges, "n=%d: %w", n, ErrTooSmall)
		}
		if !side.IsValid() {
			return builderErrorf(MethodRoadEdges, "side %v: %w", side, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRoadEdges, "%w", ErrNeedRandSource)
		}
		cells := grid.WholeMap(m.Size()).EdgeCellsOn(side)
		rng.Shuffle(cells, cfg.rng)
		placed := 0
		for _, c := range cells {
			if placed == n {
				break
			}
			if !m.Walkable(c) {
				continue
			}
			if err := m.AddRoadEdgeTile(c); err != nil {
				return builderErrorf(MethodRoadEdges, "AddRoadEdgeTile(%v): %w", c, err)
			}
			placed++
		}
		if placed < n {
			return builderErrorf(MethodRoadEdges, "only %d of %d walkable cells on %v: %w",
				placed, n, side, ErrConstructFailed)
		}
		return nil
	}
}

// ScatterPawns spawns n pawns of faction on random standable, unoccupied
// cells. Pawn IDs come from the configured IDFn.
// Complexity: O(n × maxPlacementAttempts) worst case.
func ScatterPawns(n int, faction *core.Faction) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if n < 0 {
			return builderErrorf(MethodScatterPawns, "n=%d: %w", n, ErrTooSmall)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodScatterPawns, "%w", ErrNeedRandSource)
		}
		whole := grid.WholeMap(m.Size())
		for i := 0; i < n; i++ {
			c, ok := randomFreeCell(m, whole, cfg, func(c grid.Cell) bool {
				return m.Standable(c) && len(m.PawnsAt(c)) == 0
			})
			if !ok {
				return builderErrorf(MethodScatterPawns, "no free cell for pawn %d: %w", i, ErrConstructFailed)
			}
			p := &core.Pawn{ID: cfg.idFn(i), Faction: faction}
			if err := m.SpawnPawn(p, c); err != nil {
				return builderErrorf(MethodScatterPawns, "SpawnPawn(%v): %w", c, err)
			}
		}
		return nil
	}
}

// ScatterThings spawns n things of def facing North at random cells whose
// whole footprint is standable. Stack sizes come from the configured StackFn.
// Complexity: O(n × maxPlacementAttempts × footprint) worst case.
func ScatterThings(def *gridgraph.ThingDef, n int) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if def == nil {
			return builderErrorf(MethodScatterThings, "%w", gridgraph.ErrNilThing)
		}
		if n < 0 {
			return builderErrorf(MethodScatterThings, "n=%d: %w", n, ErrTooSmall)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodScatterThings, "%w", ErrNeedRandSource)
		}
		whole := grid.WholeMap(m.Size())
		size := def.FootprintSize()
		for i := 0; i < n; i++ {
			c, ok := randomFreeCell(m, whole, cfg, func(c grid.Cell) bool {
				r := grid.OccupiedRect(c, grid.North, size)
				if !r.InBounds(m.Size()) {
					return false
				}
				for _, fc := range r.Cells() {
					if !m.Standable(fc) {
						return false
					}
				}
				return true
			})
			if !ok {
				return builderErrorf(MethodScatterThings, "no room for %s #%d: %w", def.Name, i, ErrConstructFailed)
			}
			t := &gridgraph.Thing{Def: def, Position: c, Rotation: grid.North, StackCount: cfg.stackFn(cfg.rng)}
			if err := m.SpawnThing(t); err != nil {
				return builderErrorf(MethodScatterThings, "SpawnThing(%v): %w", c, err)
			}
		}
		return nil
	}
}

// randomFreeCell draws cells of r until accept holds or attempts run out.
func randomFreeCell(m *gridgraph.Map, r grid.Rect, cfg builderConfig, accept func(grid.Cell) bool) (grid.Cell, bool) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		c := r.RandomCell(cfg.rng)
		if m.InBounds(c) && accept(c) {
			return c, true
		}
	}
	return grid.Invalid, false
}
