package gridgraph

import "github.com/katalvlaran/cellfind/grid"

// BlocksSight reports whether c stops line of sight: solid terrain, an
// impassable thing, or a closed door.
func (m *Map) BlocksSight(c grid.Cell) bool {
	if !m.InBounds(c) || m.Terrain(c).BlocksSight() {
		return true
	}
	if d := m.doors[c]; d != nil && !d.Open {
		return true
	}
	for _, t := range m.things[c] {
		if t.Def.Passability == Impassable {
			return true
		}
	}
	return false
}

// LineOfSight reports whether end can be seen from start. Cells on the
// Bresenham line between them must not block sight; end itself is never
// checked, and start is skipped when skipFirstCell is set.
// Complexity: O(max(|dx|, |dz|)).
func (m *Map) LineOfSight(start, end grid.Cell, skipFirstCell bool) bool {
	if !m.InBounds(start) || !m.InBounds(end) {
		return false
	}
	dx, dz := abs(end.X-start.X), abs(end.Z-start.Z)
	sx, sz := sign(end.X-start.X), sign(end.Z-start.Z)
	err := dx - dz
	c := start
	for first := true; c != end; first = false {
		if !(first && skipFirstCell) && m.BlocksSight(c) {
			return false
		}
		e2 := 2 * err
		if e2 > -dz {
			err -= dz
			c.X += sx
		}
		if e2 < dx {
			err += dx
			c.Z += sz
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
