package cellfinder_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfind/cellfinder"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// mustRows parses rows into a map. regionSize <= 0 keeps the default.
func mustRows(t testing.TB, regionSize int, rows ...string) *gridgraph.Map {
	t.Helper()
	opts := gridgraph.DefaultMapOptions()
	if regionSize > 0 {
		opts.RegionSize = regionSize
	}
	m, err := gridgraph.FromRows(rows, opts)
	require.NoError(t, err)
	return m
}

// quietFinder returns a seeded Finder whose log output lands in the returned buffer.
func quietFinder(seed int64, opts ...cellfinder.Option) (*cellfinder.Finder, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	all := append([]cellfinder.Option{cellfinder.WithSeed(seed), cellfinder.WithLogger(log)}, opts...)
	return cellfinder.New(all...), &buf
}

func regionIDs(regs []*core.Region) []int {
	out := make([]int, len(regs))
	for i, r := range regs {
		out[i] = r.ID
	}
	return out
}

func spawnPawn(t testing.TB, m *gridgraph.Map, id string, c grid.Cell) *core.Pawn {
	t.Helper()
	p := &core.Pawn{ID: id}
	require.NoError(t, m.SpawnPawn(p, c))
	return p
}

// recorder is a minimal Observer that keeps labels in order.
type recorder struct {
	labels []string
	cells  []grid.Cell
}

func (r *recorder) FlashCell(c grid.Cell, _ float64, label string) {
	r.labels = append(r.labels, label)
	r.cells = append(r.cells, c)
}

func countLabel(labels []string, want string) int {
	n := 0
	for _, l := range labels {
		if l == want {
			n++
		}
	}
	return n
}
