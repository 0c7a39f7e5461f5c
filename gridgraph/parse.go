package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// Glyphs understood by FromRows.
const (
	GlyphFloor     = '.'
	GlyphRock      = '#'
	GlyphWater     = '~'
	GlyphSand      = ','
	GlyphDoor      = 'D' // closed door
	GlyphOpenDoor  = 'd'
	GlyphLocked    = 'L' // locked closed door
	GlyphRoadEdge  = 'R' // floor with a road running off the map
	GlyphRoof      = '^' // roofed floor
	GlyphFog       = '?' // fogged floor
	GlyphForbidden = 'X' // forbidden floor
)

// FromRows parses a map drawn as text. rows[0] is the top row (highest Z), so
// the picture reads the way it prints. Road edge glyphs must sit on the
// boundary.
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownGlyph on bad input.
// Complexity: O(W×H).
func FromRows(rows []string, opts MapOptions) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m, err := NewMap(grid.Size{X: w, Z: h}, opts)
	if err != nil {
		return nil, err
	}

	for ri, row := range rows {
		z := h - 1 - ri
		for x := 0; x < w; x++ {
			if err = m.applyGlyph(grid.Cell{X: x, Z: z}, row[x]); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Map) applyGlyph(c grid.Cell, g byte) error {
	i := m.size.Index(c)
	switch g {
	case GlyphFloor:
	case GlyphRock:
		m.terrain[i] = Rock
	case GlyphWater:
		m.terrain[i] = Water
	case GlyphSand:
		m.terrain[i] = Sand
	case GlyphDoor, GlyphOpenDoor, GlyphLocked:
		return m.PlaceDoor(c, &core.Door{Open: g == GlyphOpenDoor, Locked: g == GlyphLocked})
	case GlyphRoadEdge:
		return m.AddRoadEdgeTile(c)
	case GlyphRoof:
		m.roofed[i] = true
	case GlyphFog:
		m.fogged[i] = true
	case GlyphForbidden:
		m.forbidden[i] = true
	default:
		return fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, g, c)
	}
	return nil
}
