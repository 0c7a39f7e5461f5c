// Package dijkstra_test contains unit tests for the generic Dijkstra runner.
package dijkstra_test

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/dijkstra"
	"github.com/katalvlaran/cellfind/grid"
)

// gridNeighbors yields in-bounds cardinal neighbors of c not in walls.
func gridNeighbors(size grid.Size, walls map[grid.Cell]bool) dijkstra.NeighborFunc[grid.Cell] {
	return func(c grid.Cell) iter.Seq[grid.Cell] {
		return func(yield func(grid.Cell) bool) {
			for _, d := range grid.CardinalDirections {
				n := c.Add(d)
				if !n.InBounds(size) || walls[n] {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

func unitCost(_, _ grid.Cell) float64 { return 1 }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRun_NilCallbacks(t *testing.T) {
	r := dijkstra.NewRunner[grid.Cell]()
	assert.ErrorIs(t, r.Run(grid.Cell{}, nil, unitCost), dijkstra.ErrNilNeighbors)
	assert.ErrorIs(t, r.Run(grid.Cell{}, gridNeighbors(grid.Size{X: 2, Z: 2}, nil), nil), dijkstra.ErrNilCost)
}

func TestRun_NegativeWeight(t *testing.T) {
	r := dijkstra.NewRunner[grid.Cell]()
	err := r.Run(grid.Cell{}, gridNeighbors(grid.Size{X: 2, Z: 2}, nil),
		func(_, _ grid.Cell) float64 { return -1 })
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(-2) })
}

// ------------------------------------------------------------------------
// 2. Distances, order and paths
// ------------------------------------------------------------------------

func TestRun_OpenGridDistances(t *testing.T) {
	size := grid.Size{X: 4, Z: 3}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{X: 0, Z: 0}, gridNeighbors(size, nil), unitCost))

	require.Equal(t, size.Area(), r.Len())
	for _, c := range r.Order() {
		d, ok := r.Distance(c)
		require.True(t, ok)
		assert.Equal(t, float64(c.LengthManhattan()), d, "cell %v", c)
	}

	// Settle order is non-decreasing in distance.
	prev := -1.0
	for _, c := range r.Order() {
		d, _ := r.Distance(c)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestRun_TieBreakFollowsDiscoveryOrder(t *testing.T) {
	size := grid.Size{X: 3, Z: 3}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{X: 1, Z: 1}, gridNeighbors(size, nil), unitCost))

	// Neighbors are yielded N, E, S, W.
	assert.Equal(t, []grid.Cell{
		{X: 1, Z: 1}, {X: 1, Z: 2}, {X: 2, Z: 1}, {X: 1, Z: 0}, {X: 0, Z: 1},
	}, r.Order()[:5])
}

func TestRun_WallsAndPath(t *testing.T) {
	// . # .
	// . # .
	// . . .
	size := grid.Size{X: 3, Z: 3}
	walls := map[grid.Cell]bool{{X: 1, Z: 2}: true, {X: 1, Z: 1}: true}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{X: 0, Z: 2}, gridNeighbors(size, walls), unitCost))

	goal := grid.Cell{X: 2, Z: 2}
	d, ok := r.Distance(goal)
	require.True(t, ok)
	assert.Equal(t, 6.0, d)
	path := r.Path(goal)
	require.Len(t, path, 7)
	assert.Equal(t, grid.Cell{X: 0, Z: 2}, path[0])
	assert.Equal(t, goal, path[6])

	_, ok = r.Distance(grid.Cell{X: 1, Z: 1})
	assert.False(t, ok)
	assert.Nil(t, r.Path(grid.Cell{X: 1, Z: 1}))

	_, hasParent := r.Parent(grid.Cell{X: 0, Z: 2})
	assert.False(t, hasParent)
}

func TestRun_InfCostIsWall(t *testing.T) {
	size := grid.Size{X: 3, Z: 1}
	blocked := grid.Cell{X: 1, Z: 0}
	cost := func(_, to grid.Cell) float64 {
		if to == blocked {
			return math.Inf(1)
		}
		return 1
	}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{}, gridNeighbors(size, nil), cost))
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.Run(grid.Cell{}, gridNeighbors(size, nil),
		func(_, to grid.Cell) float64 { return float64(to.X) * 10 },
		dijkstra.WithInfEdgeThreshold(15)))
	assert.Equal(t, 2, r.Len())
}

func TestRun_ReuseDiscardsPreviousResults(t *testing.T) {
	size := grid.Size{X: 5, Z: 1}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{X: 0, Z: 0}, gridNeighbors(size, nil), unitCost))
	require.NoError(t, r.Run(grid.Cell{X: 4, Z: 0}, gridNeighbors(size, nil), unitCost))

	d, ok := r.Distance(grid.Cell{X: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, 4.0, d)
	assert.Equal(t, grid.Cell{X: 4, Z: 0}, r.Order()[0])
}

func TestRun_ReuseAfterWallsMove(t *testing.T) {
	// A vertex settled in the first run must be reachable again in the second.
	size := grid.Size{X: 4, Z: 1}
	r := dijkstra.NewRunner[grid.Cell]()
	require.NoError(t, r.Run(grid.Cell{X: 0, Z: 0}, gridNeighbors(size, nil), unitCost))
	require.Equal(t, 4, r.Len())

	wall := map[grid.Cell]bool{{X: 2, Z: 0}: true}
	require.NoError(t, r.Run(grid.Cell{X: 0, Z: 0}, gridNeighbors(size, wall), unitCost))
	assert.Equal(t, []grid.Cell{{X: 0, Z: 0}, {X: 1, Z: 0}}, r.Order())
	_, ok := r.Distance(grid.Cell{X: 3, Z: 0})
	assert.False(t, ok)

	require.NoError(t, r.Run(grid.Cell{X: 3, Z: 0}, gridNeighbors(size, nil), unitCost))
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []grid.Cell{{X: 3, Z: 0}, {X: 2, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 0}}, r.Path(grid.Cell{X: 0, Z: 0}))
}

func TestRunner_ZeroValueIsUsable(t *testing.T) {
	var r dijkstra.Runner[grid.Cell]
	require.NoError(t, r.Run(grid.Cell{}, gridNeighbors(grid.Size{X: 2, Z: 2}, nil), unitCost))
	assert.Equal(t, 4, r.Len())
	require.NoError(t, r.Run(grid.Cell{X: 1, Z: 1}, gridNeighbors(grid.Size{X: 2, Z: 2}, nil), unitCost))
	assert.Equal(t, 4, r.Len())
}

func TestRun_CheaperDetourWins(t *testing.T) {
	// Direct step 0→2 costs 10, detour 0→1→2 costs 2.
	type node int
	adj := map[node][]node{0: {2, 1}, 1: {2}, 2: nil}
	w := map[[2]node]float64{{0, 2}: 10, {0, 1}: 1, {1, 2}: 1}
	r := dijkstra.NewRunner[node]()
	err := r.Run(0,
		func(v node) iter.Seq[node] {
			return func(yield func(node) bool) {
				for _, n := range adj[v] {
					if !yield(n) {
						return
					}
				}
			}
		},
		func(a, b node) float64 { return w[[2]node{a, b}] })
	require.NoError(t, err)

	d, _ := r.Distance(2)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, []node{0, 1, 2}, r.Path(2))
}
