package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// forbidAll forbids every listed cell to every pawn.
type forbidAll map[grid.Cell]bool

func (f forbidAll) IsForbidden(c grid.Cell, _ *core.Pawn) bool { return f[c] }

func TestNewRegion_Empty(t *testing.T) {
	_, err := core.NewRegion(1, core.RegionNormal, nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyRegion)
}

func TestRegion_Extents(t *testing.T) {
	r := mustRegion(t, 1, core.RegionNormal,
		grid.Cell{X: 2, Z: 5}, grid.Cell{X: 4, Z: 3}, grid.Cell{X: 3, Z: 4})
	assert.Equal(t, grid.Rect{MinX: 2, MinZ: 3, MaxX: 4, MaxZ: 5}, r.ExtentsClose())
	assert.Equal(t, 3, r.CellCount())
	assert.Equal(t, 0, r.ExtentsClose().ClosestDistSquaredTo(grid.Cell{X: 3, Z: 3}))
}

func TestRegion_AllowsDoors(t *testing.T) {
	colony := &core.Faction{Name: "colony"}
	raiders := &core.Faction{Name: "raiders", Hostile: true}
	colonist := &core.Pawn{ID: "c", Faction: colony}
	raider := &core.Pawn{ID: "r", Faction: raiders}
	basher := &core.Pawn{ID: "b", Faction: raiders, CanBashDoors: true}

	door := &core.Door{Faction: colony}
	r := mustRegion(t, 1, core.RegionDoor, grid.Cell{})
	r.Door = door

	assert.True(t, r.Allows(core.ForPawn(colonist, core.DangerDeadly, core.ByPawn), true))
	assert.False(t, r.Allows(core.ForPawn(raider, core.DangerDeadly, core.ByPawn), true))
	assert.True(t, r.Allows(core.ForPawn(basher, core.DangerDeadly, core.ByPawn), true))
	assert.False(t, r.Allows(core.For(core.NoPassClosedDoors, core.DangerDeadly, false), true))
	assert.True(t, r.Allows(core.For(core.PassDoors, core.DangerDeadly, false), true))

	door.Open = true
	assert.True(t, r.Allows(core.For(core.NoPassClosedDoors, core.DangerDeadly, false), true))
	assert.True(t, r.Allows(core.ForPawn(raider, core.DangerDeadly, core.ByPawn), true))
}

func TestRegion_AllowsDangerAndType(t *testing.T) {
	p := &core.Pawn{ID: "p"}
	r := mustRegion(t, 1, core.RegionNormal, grid.Cell{})
	r.Danger = core.DangerSome

	tp := core.ForPawn(p, core.DangerNone, core.ByPawn)
	assert.False(t, r.Allows(tp, true), "hazardous destination over the limit")
	assert.True(t, r.Allows(tp, false), "hazardous pass-through is tolerated")

	r.Danger = core.DangerDeadly
	assert.False(t, r.Allows(tp, false))
	assert.True(t, r.Allows(core.ForPawn(p, core.DangerDeadly, core.ByPawn), true))

	wall := mustRegion(t, 2, core.RegionImpassable, grid.Cell{})
	assert.False(t, wall.Allows(core.For(core.PassDoors, core.DangerDeadly, false), true))
	assert.True(t, wall.Allows(core.For(core.PassAllDestroyableThings, core.DangerDeadly, false), true))
}

func TestRegion_IsForbiddenEntirely(t *testing.T) {
	a, b := grid.Cell{X: 0, Z: 0}, grid.Cell{X: 1, Z: 0}
	p := &core.Pawn{ID: "p"}

	partial, err := core.NewRegion(1, core.RegionNormal, []grid.Cell{a, b}, forbidAll{a: true})
	require.NoError(t, err)
	assert.False(t, partial.IsForbiddenEntirely(p))

	full, err := core.NewRegion(2, core.RegionNormal, []grid.Cell{a, b}, forbidAll{a: true, b: true})
	require.NoError(t, err)
	assert.True(t, full.IsForbiddenEntirely(p))
	assert.False(t, full.IsForbiddenEntirely(nil))
}

func TestFactionHostility(t *testing.T) {
	a := &core.Faction{Name: "a"}
	b := &core.Faction{Name: "b"}
	h := &core.Faction{Name: "h", Hostile: true}
	assert.False(t, a.HostileTo(b))
	assert.True(t, a.HostileTo(h))
	assert.False(t, h.HostileTo(h))
	assert.False(t, (*core.Faction)(nil).HostileTo(h))
}

func TestRegionTypeMask(t *testing.T) {
	assert.True(t, core.SetPassable.Allows(core.RegionDoor))
	assert.False(t, core.SetPassable.Allows(core.RegionImpassable))
	assert.True(t, core.SetAll.Allows(core.RegionImpassable))
	assert.Equal(t, "Door", core.RegionDoor.String())
}
