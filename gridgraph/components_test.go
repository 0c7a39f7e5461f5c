package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// TestRegions_DoorSplitsRooms checks that a door cell is its own region
// linking the rooms on either side.
func TestRegions_DoorSplitsRooms(t *testing.T) {
	m, err := gridgraph.FromRows([]string{
		"...#..",
		"...D..",
		"...#..",
	}, gridgraph.DefaultMapOptions())
	if err != nil {
		t.Fatal(err)
	}
	regs := m.Regions()
	if len(regs) != 3 {
		t.Fatalf("got %d regions; want 3", len(regs))
	}
	left := m.RegionAt(grid.Cell{X: 0, Z: 0})
	right := m.RegionAt(grid.Cell{X: 5, Z: 2})
	door := m.RegionAt(grid.Cell{X: 3, Z: 1})
	if left == nil || right == nil || door == nil {
		t.Fatalf("missing region: left=%v right=%v door=%v", left, right, door)
	}
	if left.CellCount() != 9 || right.CellCount() != 6 || door.CellCount() != 1 {
		t.Errorf("cell counts = %d/%d/%d; want 9/6/1", left.CellCount(), right.CellCount(), door.CellCount())
	}
	if door.Type != core.RegionDoor || door.Door != m.DoorAt(grid.Cell{X: 3, Z: 1}) {
		t.Errorf("door region = %v, door %p", door, door.Door)
	}
	if left.Type != core.RegionNormal {
		t.Errorf("left type = %v", left.Type)
	}
	if got := left.Neighbors(); len(got) != 1 || got[0] != door {
		t.Errorf("left neighbors = %v; want [door]", got)
	}
	if got := door.Neighbors(); len(got) != 2 {
		t.Errorf("door neighbors = %v; want 2", got)
	}
	if m.RegionAt(grid.Cell{X: 3, Z: 0}) != nil {
		t.Error("rock has a region")
	}
	if m.RegionAt(grid.Cell{X: -1, Z: 0}) != nil {
		t.Error("out-of-bounds cell has a region")
	}
}

// TestRegions_SectionsSplitOpenGround checks that RegionSize bounds regions.
func TestRegions_SectionsSplitOpenGround(t *testing.T) {
	m, err := gridgraph.NewMap(grid.Size{X: 6, Z: 3}, gridgraph.MapOptions{RegionSize: 3})
	if err != nil {
		t.Fatal(err)
	}
	a := m.RegionAt(grid.Cell{X: 2, Z: 1})
	b := m.RegionAt(grid.Cell{X: 3, Z: 1})
	if a == nil || b == nil || a == b {
		t.Fatalf("expected two distinct regions, got %v and %v", a, b)
	}
	if a.ExtentsClose() != (grid.Rect{MinX: 0, MinZ: 0, MaxX: 2, MaxZ: 2}) {
		t.Errorf("extents = %v", a.ExtentsClose())
	}
	g, err := m.RegionGraph()
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasLink(a, b) || g.LinkCount() != 1 {
		t.Errorf("HasLink=%v LinkCount=%d; want true/1", g.HasLink(a, b), g.LinkCount())
	}
}

// TestRegions_PartitionCoversWalkableCells checks every walkable cell is in
// exactly one region and region cells are walkable.
func TestRegions_PartitionCoversWalkableCells(t *testing.T) {
	m, err := gridgraph.FromRows([]string{
		"..#.....~~",
		"..#..D..~~",
		"####.#####",
		"....d.....",
		".#.#.#.#..",
	}, gridgraph.MapOptions{RegionSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[grid.Cell]int)
	for _, r := range m.Regions() {
		for _, c := range r.Cells() {
			seen[c]++
			if !m.Walkable(c) {
				t.Errorf("region %v holds unwalkable %v", r, c)
			}
			if m.RegionAt(c) != r {
				t.Errorf("RegionAt(%v) disagrees with region %v", c, r)
			}
		}
	}
	size := m.Size()
	for i := 0; i < size.Area(); i++ {
		c := size.CellAt(i)
		want := 0
		if m.Walkable(c) {
			want = 1
		}
		if seen[c] != want {
			t.Errorf("cell %v appears in %d regions; want %d", c, seen[c], want)
		}
	}
}

// TestRegions_DangerIsMaxOfCells checks danger aggregation and lazy rebuild.
func TestRegions_DangerIsMaxOfCells(t *testing.T) {
	m, err := gridgraph.NewMap(grid.Size{X: 4, Z: 4}, gridgraph.DefaultMapOptions())
	if err != nil {
		t.Fatal(err)
	}
	before := m.RegionAt(grid.Cell{})
	if before.Danger != core.DangerNone {
		t.Fatalf("initial danger = %v", before.Danger)
	}
	m.SetDanger(grid.Cell{X: 3, Z: 3}, core.DangerDeadly)
	after := m.RegionAt(grid.Cell{})
	if after == before {
		t.Error("region not rebuilt after SetDanger")
	}
	if after.Danger != core.DangerDeadly {
		t.Errorf("danger = %v; want Deadly", after.Danger)
	}
	if err = m.RebuildRegions(); err != nil {
		t.Fatal(err)
	}
	if m.RegionAt(grid.Cell{}) == after {
		t.Error("RebuildRegions kept the old region")
	}
}
