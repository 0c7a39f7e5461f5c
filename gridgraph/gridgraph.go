// Package gridgraph provides a rectangular tile map that partitions itself
// into a region graph.
package gridgraph

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// Map is a rectangular grid of cells carrying terrain, doors, pawns, things,
// roofs, fog, forbidden marks and danger levels. Regions are derived data,
// rebuilt lazily after a mutation that changes walkability.
//
// Mutations are not synchronized. Once mutation stops, any number of readers
// may query the map concurrently; the lazy region rebuild is serialized.
type Map struct {
	size grid.Size
	opts MapOptions

	terrain   []Terrain
	fogged    []bool
	roofed    []bool
	forbidden []bool
	danger    []core.Danger

	doors    map[grid.Cell]*core.Door
	pawns    map[grid.Cell][]*core.Pawn
	things   map[grid.Cell][]*Thing
	roadEdge []grid.Cell

	mu       sync.Mutex
	dirty    bool
	graph    *core.Graph
	regionOf []*core.Region
}

// NewMap builds an all-Floor map of the given size.
// Returns ErrEmptyGrid for a non-positive dimension and ErrBadRegionSize for
// a non-positive RegionSize.
// Complexity: O(W×H) time and memory.
func NewMap(size grid.Size, opts MapOptions) (*Map, error) {
	if size.X <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrEmptyGrid, size.X, size.Z)
	}
	if opts.RegionSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRegionSize, opts.RegionSize)
	}
	n := size.Area()

	return &Map{
		size:      size,
		opts:      opts,
		terrain:   make([]Terrain, n),
		fogged:    make([]bool, n),
		roofed:    make([]bool, n),
		forbidden: make([]bool, n),
		danger:    make([]core.Danger, n),
		doors:     make(map[grid.Cell]*core.Door),
		pawns:     make(map[grid.Cell][]*core.Pawn),
		things:    make(map[grid.Cell][]*Thing),
		dirty:     true,
	}, nil
}

// Size returns the map dimensions.
func (m *Map) Size() grid.Size { return m.size }

// InBounds reports whether c lies on the map.
func (m *Map) InBounds(c grid.Cell) bool { return c.InBounds(m.size) }

// Terrain returns the terrain at c. Out-of-bounds cells report Rock.
func (m *Map) Terrain(c grid.Cell) Terrain {
	if !m.InBounds(c) {
		return Rock
	}
	return m.terrain[m.size.Index(c)]
}

// SetTerrain changes the terrain at c.
func (m *Map) SetTerrain(c grid.Cell, t Terrain) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	i := m.size.Index(c)
	if m.terrain[i].Passability() != t.Passability() {
		m.markDirty()
	}
	m.terrain[i] = t

	return nil
}

// Walkable reports whether a pawn can move through c.
func (m *Map) Walkable(c grid.Cell) bool {
	if !m.InBounds(c) || m.Terrain(c).Passability() == Impassable {
		return false
	}
	for _, t := range m.things[c] {
		if t.Def.Passability == Impassable {
			return false
		}
	}
	return true
}

// Standable reports whether a pawn can stop on c.
func (m *Map) Standable(c grid.Cell) bool {
	if !m.Walkable(c) || m.Terrain(c).Passability() != Standable {
		return false
	}
	if _, ok := m.doors[c]; ok {
		return false
	}
	for _, t := range m.things[c] {
		if t.Def.Passability != Standable {
			return false
		}
	}
	return true
}

// Impassable reports whether c blocks movement. Out-of-bounds cells do.
func (m *Map) Impassable(c grid.Cell) bool { return !m.Walkable(c) }

// Fogged reports whether c is hidden from the player.
func (m *Map) Fogged(c grid.Cell) bool {
	return m.InBounds(c) && m.fogged[m.size.Index(c)]
}

// SetFogged hides or reveals c. Out-of-bounds cells are ignored.
func (m *Map) SetFogged(c grid.Cell, v bool) {
	if m.InBounds(c) {
		m.fogged[m.size.Index(c)] = v
	}
}

// Roofed reports whether c has a roof.
func (m *Map) Roofed(c grid.Cell) bool {
	return m.InBounds(c) && m.roofed[m.size.Index(c)]
}

// SetRoofed adds or removes the roof over c. Out-of-bounds cells are ignored.
func (m *Map) SetRoofed(c grid.Cell, v bool) {
	if m.InBounds(c) {
		m.roofed[m.size.Index(c)] = v
	}
}

// SetForbidden marks c as off-limits to every pawn.
func (m *Map) SetForbidden(c grid.Cell, v bool) {
	if m.InBounds(c) {
		m.forbidden[m.size.Index(c)] = v
	}
}

// IsForbidden reports whether pawn p may not use c. A nil pawn is never
// restricted.
func (m *Map) IsForbidden(c grid.Cell, p *core.Pawn) bool {
	return p != nil && m.InBounds(c) && m.forbidden[m.size.Index(c)]
}

// Danger returns the danger level of c.
func (m *Map) Danger(c grid.Cell) core.Danger {
	if !m.InBounds(c) {
		return core.DangerNone
	}
	return m.danger[m.size.Index(c)]
}

// SetDanger sets the danger level of c. Region danger is the maximum over
// its cells.
func (m *Map) SetDanger(c grid.Cell, d core.Danger) {
	if !m.InBounds(c) {
		return
	}
	m.danger[m.size.Index(c)] = d
	m.markDirty()
}

// AddRoadEdgeTile records c as a boundary cell a road runs into.
func (m *Map) AddRoadEdgeTile(c grid.Cell) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !c.OnEdge(m.size) {
		return fmt.Errorf("%w: %v", ErrNotEdgeCell, c)
	}
	if !slices.Contains(m.roadEdge, c) {
		m.roadEdge = append(m.roadEdge, c)
	}
	return nil
}

// RoadEdgeTiles returns the boundary cells roads run into. The slice is owned
// by the map and must not be modified.
func (m *Map) RoadEdgeTiles() []grid.Cell { return m.roadEdge }

// CanBuildOnTerrain reports whether every cell of def's footprint at c facing
// rot is in bounds and has buildable terrain.
func (m *Map) CanBuildOnTerrain(def *ThingDef, c grid.Cell, rot grid.Rot4) bool {
	if def == nil {
		return false
	}
	r := grid.OccupiedRect(c, rot, def.FootprintSize())
	if !r.InBounds(m.size) {
		return false
	}
	for z := r.MinZ; z <= r.MaxZ; z++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if !m.Terrain(grid.Cell{X: x, Z: z}).Buildable() {
				return false
			}
		}
	}
	return true
}

func (m *Map) markDirty() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}
