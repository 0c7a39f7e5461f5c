// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// impl_room.go — walls: Room(rect, doors...) and Border().
//
// Contract:
//   • Room lays cfg.wallTerrain on the perimeter of rect, then places closed
//     doors on the listed perimeter cells (wall removed first).
//   • Border walls in the outermost ring of the map.
//   • Deterministic: no randomness.

package builder

import (
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// Door describes a door to cut into a Room wall.
type Door struct {
	Cell    grid.Cell
	Open    bool
	Locked  bool
	Faction *core.Faction
}

// Room returns a Constructor that walls in rect and cuts doors into it.
// rect must be at least MinRoomDim on each side and lie inside the map;
// every door must be on rect's perimeter.
// Complexity: O(perimeter + len(doors)).
func Room(rect grid.Rect, doors ...Door) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if rect.Width() < MinRoomDim || rect.Height() < MinRoomDim {
			return builderErrorf(MethodRoom, "rect %dx%d (each side must be ≥ %d): %w",
				rect.Width(), rect.Height(), MinRoomDim, ErrTooSmall)
		}
		if !rect.InBounds(m.Size()) {
			return builderErrorf(MethodRoom, "rect outside map: %w", gridgraph.ErrOutOfBounds)
		}
		for _, c := range rect.EdgeCells() {
			if err := m.SetTerrain(c, cfg.wallTerrain); err != nil {
				return builderErrorf(MethodRoom, "SetTerrain(%v): %w", c, err)
			}
		}
		for _, d := range doors {
			if !rect.Contains(d.Cell) || rect.ExpandedBy(-1).Contains(d.Cell) {
				return builderErrorf(MethodRoom, "door %v not on the wall: %w", d.Cell, ErrConstructFailed)
			}
			if err := m.SetTerrain(d.Cell, gridgraph.Floor); err != nil {
				return builderErrorf(MethodRoom, "SetTerrain(%v): %w", d.Cell, err)
			}
			door := &core.Door{Open: d.Open, Locked: d.Locked, Faction: d.Faction}
			if err := m.PlaceDoor(d.Cell, door); err != nil {
				return builderErrorf(MethodRoom, "PlaceDoor(%v): %w", d.Cell, err)
			}
		}
		return nil
	}
}

// Border returns a Constructor that walls in the outermost ring of the map.
// Complexity: O(W+H).
func Border() Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		for _, c := range grid.WholeMap(m.Size()).EdgeCells() {
			if err := m.SetTerrain(c, cfg.wallTerrain); err != nil {
				return builderErrorf(MethodBorder, "SetTerrain(%v): %w", c, err)
			}
		}
		return nil
	}
}
