package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// RegionAt returns the region containing c, or nil for impassable and
// out-of-bounds cells. Regions are rebuilt first if the map changed.
func (m *Map) RegionAt(c grid.Cell) *core.Region {
	if !m.InBounds(c) {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureRegionsLocked(); err != nil {
		return nil
	}
	return m.regionOf[m.size.Index(c)]
}

// Regions returns all regions sorted by ID.
func (m *Map) Regions() []*core.Region {
	g, err := m.RegionGraph()
	if err != nil {
		return nil
	}
	return g.Regions()
}

// RegionGraph returns the current region graph, rebuilding it if needed.
func (m *Map) RegionGraph() (*core.Graph, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureRegionsLocked(); err != nil {
		return nil, err
	}
	return m.graph, nil
}

// RebuildRegions discards the region graph and builds it again.
func (m *Map) RebuildRegions() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirty = true
	return m.ensureRegionsLocked()
}

func (m *Map) ensureRegionsLocked() error {
	if !m.dirty && m.graph != nil {
		return nil
	}
	g, regionOf, err := m.buildRegions()
	if err != nil {
		return err
	}
	m.graph, m.regionOf, m.dirty = g, regionOf, false
	return nil
}

// buildRegions cuts the map into RegionSize×RegionSize sections and finds the
// 4-connected components of walkable cells inside each one. Every door cell
// becomes a single-cell Door region. Regions touching across a cell border
// are linked. IDs follow section order, then row-major cell order.
//
// Time:   O(W·H).
// Memory: O(W·H) for the cell→region index.
func (m *Map) buildRegions() (*core.Graph, []*core.Region, error) {
	g := core.NewGraph()
	regionOf := make([]*core.Region, m.size.Area())
	rs := m.opts.RegionSize
	nextID := 0

	for sz := 0; sz < m.size.Z; sz += rs {
		for sx := 0; sx < m.size.X; sx += rs {
			section := grid.Rect{
				MinX: sx, MinZ: sz,
				MaxX: min(sx+rs, m.size.X) - 1,
				MaxZ: min(sz+rs, m.size.Z) - 1,
			}
			for z := section.MinZ; z <= section.MaxZ; z++ {
				for x := section.MinX; x <= section.MaxX; x++ {
					c := grid.Cell{X: x, Z: z}
					if regionOf[m.size.Index(c)] != nil || !m.Walkable(c) {
						continue
					}
					r, err := m.newRegionFrom(c, section, nextID, regionOf)
					if err != nil {
						return nil, nil, err
					}
					if err = g.AddRegion(r); err != nil {
						return nil, nil, err
					}
					nextID++
				}
			}
		}
	}

	// Link regions across east and north borders.
	for z := 0; z < m.size.Z; z++ {
		for x := 0; x < m.size.X; x++ {
			a := regionOf[m.size.Index(grid.Cell{X: x, Z: z})]
			if a == nil {
				continue
			}
			for _, d := range [...]grid.Cell{{X: 1, Z: 0}, {X: 0, Z: 1}} {
				n := grid.Cell{X: x + d.X, Z: z + d.Z}
				if !m.InBounds(n) {
					continue
				}
				b := regionOf[m.size.Index(n)]
				if b == nil || b == a {
					continue
				}
				if err := g.Link(a, b); err != nil {
					return nil, nil, fmt.Errorf("gridgraph: link %v-%v: %w", a, b, err)
				}
			}
		}
	}

	return g, regionOf, nil
}

// newRegionFrom flood-fills from seed inside section and registers the cells
// in regionOf. A door seed yields a one-cell Door region.
func (m *Map) newRegionFrom(seed grid.Cell, section grid.Rect, id int, regionOf []*core.Region) (*core.Region, error) {
	if door := m.doors[seed]; door != nil {
		r, err := core.NewRegion(id, core.RegionDoor, []grid.Cell{seed}, m)
		if err != nil {
			return nil, err
		}
		r.Door = door
		r.Danger = m.Danger(seed)
		regionOf[m.size.Index(seed)] = r
		return r, nil
	}

	seen := map[grid.Cell]bool{seed: true}
	queue := []grid.Cell{seed}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range grid.CardinalDirections {
			v := u.Add(d)
			if seen[v] || !section.Contains(v) || !m.Walkable(v) {
				continue
			}
			if _, isDoor := m.doors[v]; isDoor {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	r, err := core.NewRegion(id, core.RegionNormal, queue, m)
	if err != nil {
		return nil, err
	}
	for _, c := range queue {
		regionOf[m.size.Index(c)] = r
		r.Danger = max(r.Danger, m.Danger(c))
	}
	return r, nil
}
