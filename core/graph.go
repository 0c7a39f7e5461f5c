// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Region table and symmetric adjacency links.
// Policy:
//   - Mutations take the write lock; getters take the read lock.
//   - Neighbor lists stay sorted by Region.ID (binary insertion), so reads never sort.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// Graph owns the regions of one map and the links between adjacent regions.
type Graph struct {
	mu      sync.RWMutex
	regions map[int]*Region
	links   int
}

// NewGraph creates an empty region graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{regions: make(map[int]*Region)}
}

// AddRegion inserts r into the graph.
// Returns ErrNilRegion for nil, ErrDuplicateRegion if r.ID is taken.
// Complexity: O(1) amortized.
func (g *Graph) AddRegion(r *Region) error {
	if r == nil {
		return ErrNilRegion
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.regions[r.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateRegion, r.ID)
	}
	g.regions[r.ID] = r
	return nil
}

// Link connects a and b symmetrically. Linking an already-linked pair is a no-op.
// Returns ErrNilRegion, ErrSelfLink, or ErrRegionNotFound when either end is
// not part of this graph.
// Complexity: O(d) where d is the larger neighbor count.
func (g *Graph) Link(a, b *Region) error {
	if a == nil || b == nil {
		return ErrNilRegion
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLink, a.ID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.regions[a.ID] != a {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, a.ID)
	}
	if g.regions[b.ID] != b {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, b.ID)
	}
	if !insertSorted(&a.neighbors, b) {
		return nil
	}
	insertSorted(&b.neighbors, a)
	g.links++
	return nil
}

// HasLink reports whether a and b are adjacent.
// Complexity: O(log d).
func (g *Graph) HasLink(a, b *Region) bool {
	if a == nil || b == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i := sort.Search(len(a.neighbors), func(i int) bool { return a.neighbors[i].ID >= b.ID })
	return i < len(a.neighbors) && a.neighbors[i] == b
}

// Region returns the region with the given ID, or nil.
// Complexity: O(1).
func (g *Graph) Region(id int) *Region {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.regions[id]
}

// Regions returns every region sorted by ID.
// Complexity: O(R log R).
func (g *Graph) Regions() []*Region {
	g.mu.RLock()
	out := make([]*Region, 0, len(g.regions))
	for _, r := range g.regions {
		out = append(out, r)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RegionCount returns the number of regions.
func (g *Graph) RegionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.regions)
}

// LinkCount returns the number of distinct adjacent pairs.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.links
}

// insertSorted adds r to *list keeping ID order; reports false if already present.
func insertSorted(list *[]*Region, r *Region) bool {
	l := *list
	i := sort.Search(len(l), func(i int) bool { return l[i].ID >= r.ID })
	if i < len(l) && l[i] == r {
		return false
	}
	l = append(l, nil)
	copy(l[i+1:], l[i:])
	l[i] = r
	*list = l
	return true
}
