// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// impl_layers.go — rectangle painters for per-cell layers.
//
// Each constructor clips its rect to the map and paints every cell.
// Deterministic, O(area).

package builder

import (
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// Fog hides every cell of rect.
func Fog(rect grid.Rect) Constructor {
	return paint(rect, func(m *gridgraph.Map, c grid.Cell) error { m.SetFogged(c, true); return nil })
}

// Roof roofs every cell of rect.
func Roof(rect grid.Rect) Constructor {
	return paint(rect, func(m *gridgraph.Map, c grid.Cell) error { m.SetRoofed(c, true); return nil })
}

// Forbid marks every cell of rect forbidden.
func Forbid(rect grid.Rect) Constructor {
	return paint(rect, func(m *gridgraph.Map, c grid.Cell) error { m.SetForbidden(c, true); return nil })
}

// Danger sets the danger of every cell of rect.
func Danger(rect grid.Rect, d core.Danger) Constructor {
	return paint(rect, func(m *gridgraph.Map, c grid.Cell) error { m.SetDanger(c, d); return nil })
}

// Terrain lays t over rect.
func Terrain(rect grid.Rect, t gridgraph.Terrain) Constructor {
	return paint(rect, func(m *gridgraph.Map, c grid.Cell) error { return m.SetTerrain(c, t) })
}

func paint(rect grid.Rect, fn func(*gridgraph.Map, grid.Cell) error) Constructor {
	return func(m *gridgraph.Map, _ builderConfig) error {
		clipped := rect.ClipInsideMap(m.Size())
		if clipped.IsEmpty() {
			return builderErrorf(MethodLayer, "rect outside map: %w", gridgraph.ErrOutOfBounds)
		}
		for _, c := range clipped.Cells() {
			if err := fn(m, c); err != nil {
				return builderErrorf(MethodLayer, "%v: %w", c, err)
			}
		}
		return nil
	}
}
