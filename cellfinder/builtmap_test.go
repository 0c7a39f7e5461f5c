package cellfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/builder"
	"github.com/katalvlaran/cellfind/cellfinder"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// pawnsByID indexes every pawn on m.
func pawnsByID(m *gridgraph.Map) map[string]*core.Pawn {
	out := make(map[string]*core.Pawn)
	size := m.Size()
	for i := 0; i < size.Area(); i++ {
		for _, p := range m.PawnsAt(size.CellAt(i)) {
			out[p.ID] = p
		}
	}
	return out
}

// TestBuiltMap_RoomRoadsAndPawns runs searches over a map laid out by the
// builder: a walled room with a closed door, road edges on the east side and
// a few scattered raiders.
func TestBuiltMap_RoomRoadsAndPawns(t *testing.T) {
	room := grid.Rect{MinX: 2, MinZ: 2, MaxX: 6, MaxZ: 6}
	inside := room.ExpandedBy(-1)
	m, err := builder.BuildMap(grid.Size{X: 12, Z: 8}, gridgraph.DefaultMapOptions(),
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Room(room, builder.Door{Cell: grid.Cell{X: 4, Z: 2}}),
		builder.RoadEdges(grid.East, 2),
		builder.ScatterPawns(3, &core.Faction{Name: "raiders", Hostile: true}),
	)
	require.NoError(t, err)
	f, _ := quietFinder(1)

	t.Run("road edge fast path", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			got, ok := f.TryFindRandomEdgeCellWith(nil, m, cellfinder.EdgeRoadChanceAlways)
			require.True(t, ok)
			assert.Equal(t, 11, got.X)
			assert.Contains(t, m.RoadEdgeTiles(), got)
		}
	})

	t.Run("closed door seals the room", func(t *testing.T) {
		root := m.RegionAt(grid.Cell{X: 4, Z: 4})
		require.NotNil(t, root)

		var regs []*core.Region
		f.AllRegionsNear(&regs, root, 0, core.For(core.NoPassClosedDoors, core.DangerDeadly, false), nil, nil, core.SetPassable)
		require.NotEmpty(t, regs)
		for _, r := range regs {
			for _, c := range r.Cells() {
				assert.True(t, inside.Contains(c), "region %d leaks to %v", r.ID, c)
			}
		}

		f.AllRegionsNear(&regs, root, 0, core.For(core.PassDoors, core.DangerDeadly, false), nil, nil, core.SetPassable)
		outside := 0
		for _, r := range regs {
			for _, c := range r.Cells() {
				if !room.Contains(c) {
					outside++
				}
			}
		}
		assert.Positive(t, outside)
	})

	t.Run("scattered pawns", func(t *testing.T) {
		pawns := pawnsByID(m)
		require.Len(t, pawns, 3)
		for _, id := range []string{"A", "B", "C"} {
			p, ok := pawns[id]
			require.True(t, ok, "pawn %s", id)
			got, ok := f.TryFindBestPawnStandCell(m, p, false)
			require.True(t, ok, "pawn %s", id)
			assert.NotEqual(t, p.Position, got)
			assert.True(t, m.Walkable(got))
		}
	})
}
