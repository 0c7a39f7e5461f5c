package cellfinder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/cellfinder"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

var anyone = core.For(core.ByPawn, core.DangerDeadly, false)

// chain returns a 9x3 open map cut into three regions 0-1-2 from west to east.
func chain(t *testing.T) []*core.Region {
	t.Helper()
	m := mustRows(t, 3,
		".........",
		".........",
		".........",
	)
	regs := m.Regions()
	require.Len(t, regs, 3)
	require.Equal(t, []int{0, 2}, regionIDs(regs[1].Neighbors()))
	return regs
}

func TestRandomRegionNear_ValidatorMatchingOneRegion(t *testing.T) {
	regs := chain(t)
	f, _ := quietFinder(1)
	for _, want := range regs {
		only := func(r *core.Region) bool { return r == want }
		for i := 0; i < 20; i++ {
			got := f.RandomRegionNear(want, 100, anyone, only, nil, core.SetPassable)
			assert.Same(t, want, got)
		}
	}
	// The root is filtered like any other region.
	only1 := func(r *core.Region) bool { return r.ID == 1 }
	for i := 0; i < 20; i++ {
		assert.Equal(t, 1, f.RandomRegionNear(regs[0], 100, anyone, only1, nil, core.SetPassable).ID)
	}
}

func TestRandomRegionNear_ShortCircuits(t *testing.T) {
	regs := chain(t)
	f, _ := quietFinder(1)
	never := func(*core.Region) bool { return false }

	assert.Same(t, regs[1], f.RandomRegionNear(regs[1], 1, anyone, nil, nil, core.SetPassable))
	assert.Same(t, regs[1], f.RandomRegionNear(regs[1], 0, anyone, nil, nil, core.SetPassable))
	// A cap of one skips filtering, even of the root itself.
	assert.Same(t, regs[1], f.RandomRegionNear(regs[1], 1, anyone, never, nil, core.SetPassable))
	assert.Same(t, regs[1], f.RandomRegionNear(regs[1], -4, anyone, never, nil, core.SetPassable))
	assert.Same(t, regs[1], f.RandomRegionNear(regs[1], 50, anyone, never, nil, core.SetPassable))
	assert.PanicsWithError(t, cellfinder.ErrNilRoot.Error(), func() {
		f.RandomRegionNear(nil, 50, anyone, nil, nil, core.SetPassable)
	})
}

func TestRandomRegionNear_WeightedByCellCount(t *testing.T) {
	m := mustRows(t, 3,
		"....##",
		"....##",
		"....##",
	)
	big, small := m.RegionAt(grid.Cell{X: 0, Z: 0}), m.RegionAt(grid.Cell{X: 3, Z: 0})
	require.Equal(t, 9, big.CellCount())
	require.Equal(t, 3, small.CellCount())

	f, _ := quietFinder(42)
	const draws = 4000
	hits := 0
	for i := 0; i < draws; i++ {
		if f.RandomRegionNear(big, 10, anyone, nil, nil, core.RegionNone) == big {
			hits++
		}
	}
	assert.InDelta(t, 0.75, float64(hits)/draws, 0.05)
}

func TestAllRegionsNear_OrderCapAndIdempotence(t *testing.T) {
	regs := chain(t)
	f, _ := quietFinder(1)

	var got []*core.Region
	f.AllRegionsNear(&got, regs[0], 0, anyone, nil, nil, core.SetPassable)
	assert.Equal(t, []int{0, 1, 2}, regionIDs(got))

	var again []*core.Region
	f.AllRegionsNear(&again, regs[0], 0, anyone, nil, nil, core.SetPassable)
	assert.Equal(t, regionIDs(got), regionIDs(again))

	f.AllRegionsNear(&got, regs[1], 2, anyone, nil, nil, core.SetPassable)
	assert.Equal(t, []int{1, 0}, regionIDs(got), "results are replaced, not appended")

	seen := map[int]bool{}
	f.AllRegionsNear(&got, regs[2], 100, anyone, nil, nil, core.SetPassable)
	for _, r := range got {
		assert.False(t, seen[r.ID], "region %d listed twice", r.ID)
		seen[r.ID] = true
	}
}

func TestAllRegionsNear_Filters(t *testing.T) {
	t.Run("forbidden region blocks the way", func(t *testing.T) {
		m := mustRows(t, 3, "...XXX...")
		root := m.RegionAt(grid.Cell{X: 0, Z: 0})
		f, _ := quietFinder(1)
		pawn := &core.Pawn{ID: "p"}

		var got []*core.Region
		f.AllRegionsNear(&got, root, 0, anyone, nil, pawn, core.SetPassable)
		assert.Equal(t, []int{0}, regionIDs(got))

		f.AllRegionsNear(&got, root, 0, anyone, nil, nil, core.SetPassable)
		assert.Equal(t, []int{0, 1, 2}, regionIDs(got))
	})

	t.Run("closed door", func(t *testing.T) {
		m := mustRows(t, 0, "...D...")
		root := m.RegionAt(grid.Cell{X: 0, Z: 0})
		f, _ := quietFinder(1)

		var got []*core.Region
		f.AllRegionsNear(&got, root, 0, core.For(core.NoPassClosedDoors, core.DangerDeadly, false), nil, nil, core.SetPassable)
		assert.Equal(t, []int{0}, regionIDs(got))

		f.AllRegionsNear(&got, root, 0, core.For(core.PassDoors, core.DangerDeadly, false), nil, nil, core.SetPassable)
		assert.Equal(t, []int{0, 1, 2}, regionIDs(got))

		// Door regions are outside the mask.
		f.AllRegionsNear(&got, root, 0, core.For(core.PassDoors, core.DangerDeadly, false), nil, nil, core.RegionNormal)
		assert.Equal(t, []int{0}, regionIDs(got))
	})

	t.Run("validator", func(t *testing.T) {
		regs := chain(t)
		f, _ := quietFinder(1)
		notMiddle := func(r *core.Region) bool { return r.ID != 1 }

		var got []*core.Region
		f.AllRegionsNear(&got, regs[0], 0, anyone, notMiddle, nil, core.SetPassable)
		assert.Equal(t, []int{0}, regionIDs(got))
	})
}

func TestAllRegionsNear_SoftFailuresLogOnce(t *testing.T) {
	regs := chain(t)
	f, logs := quietFinder(1)

	f.AllRegionsNear(nil, regs[0], 0, anyone, nil, nil, core.SetPassable)
	f.AllRegionsNear(nil, regs[0], 0, anyone, nil, nil, core.SetPassable)
	assert.Equal(t, 1, strings.Count(logs.String(), "nil results list"))

	got := []*core.Region{regs[2]}
	f.AllRegionsNear(&got, nil, 0, anyone, nil, nil, core.SetPassable)
	f.AllRegionsNear(&got, nil, 0, anyone, nil, nil, core.SetPassable)
	assert.Empty(t, got)
	assert.Equal(t, 1, strings.Count(logs.String(), "with a nil root"))
}

func TestTryFindClosestRegionWith(t *testing.T) {
	regs := chain(t)
	f, logs := quietFinder(1)
	isID := func(id int) func(*core.Region) bool {
		return func(r *core.Region) bool { return r.ID == id }
	}

	r, ok := f.TryFindClosestRegionWith(regs[0], anyone, isID(2), 0, core.SetPassable)
	require.True(t, ok)
	assert.Same(t, regs[2], r)

	r, ok = f.TryFindClosestRegionWith(regs[0], anyone, isID(0), 0, core.SetPassable)
	require.True(t, ok)
	assert.Same(t, regs[0], r)

	_, ok = f.TryFindClosestRegionWith(regs[0], anyone, isID(2), 2, core.SetPassable)
	assert.False(t, ok, "cap reached before region 2")

	_, ok = f.TryFindClosestRegionWith(regs[0], anyone, isID(7), 0, core.SetPassable)
	assert.False(t, ok)

	_, ok = f.TryFindClosestRegionWith(nil, anyone, isID(0), 0, core.SetPassable)
	assert.False(t, ok)
	_, _ = f.TryFindClosestRegionWith(nil, anyone, isID(0), 0, core.SetPassable)
	assert.Equal(t, 1, strings.Count(logs.String(), "TryFindClosestRegionWith called with a nil root"))
}

func TestTryFindClosestRegionWith_RespectsDoors(t *testing.T) {
	m := mustRows(t, 0, "...D...")
	root := m.RegionAt(grid.Cell{X: 0, Z: 0})
	east := m.RegionAt(grid.Cell{X: 6, Z: 0})
	f, _ := quietFinder(1)
	isEast := func(r *core.Region) bool { return r == east }

	_, ok := f.TryFindClosestRegionWith(root, core.For(core.NoPassClosedDoors, core.DangerDeadly, false), isEast, 0, core.SetPassable)
	assert.False(t, ok)

	got, ok := f.TryFindClosestRegionWith(root, core.For(core.PassDoors, core.DangerDeadly, false), isEast, 0, core.SetPassable)
	assert.True(t, ok)
	assert.Same(t, east, got)
}
