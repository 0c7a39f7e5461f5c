// SPDX-License-Identifier: MIT
//
// File: finder.go
// Role: Finder value, options, scratch management and the map contracts.

package cellfinder

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cellfind/bfs"
	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/dijkstra"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
	"github.com/katalvlaran/cellfind/rng"
)

// Sentinel errors for cellfinder.
var (
	// ErrNilRoot is the panic value of RandomRegionNear when root is nil.
	ErrNilRoot = errors.New("cellfinder: root region is nil")

	// ErrNilRand is the panic value of WithRand(nil).
	ErrNilRand = errors.New("cellfinder: random source is nil")

	// ErrNilLogger is the panic value of WithLogger(nil).
	ErrNilLogger = errors.New("cellfinder: logger is nil")

	// ErrValidatorPanic wraps a panic recovered from a cell validator.
	ErrValidatorPanic = errors.New("cellfinder: validator panicked")
)

// Map is the read-only view of a tile map the searches need.
// *gridgraph.Map implements it.
type Map interface {
	Size() grid.Size
	InBounds(c grid.Cell) bool
	Walkable(c grid.Cell) bool
	Standable(c grid.Cell) bool
	Fogged(c grid.Cell) bool
	Roofed(c grid.Cell) bool
	IsForbidden(c grid.Cell, p *core.Pawn) bool
	RoadEdgeTiles() []grid.Cell
	RegionAt(c grid.Cell) *core.Region
	DoorAt(c grid.Cell) *core.Door
	PawnsAt(c grid.Cell) []*core.Pawn
	FirstPawnAt(c grid.Cell) *core.Pawn
	AnyPawnBlockingPathAt(c grid.Cell, forPawn *core.Pawn) bool
}

// SpawnMap extends Map with the thing and sight queries FindNoWipeSpawnLocNear uses.
type SpawnMap interface {
	Map
	ThingsAt(c grid.Cell) []*gridgraph.Thing
	CanBuildOnTerrain(def *gridgraph.ThingDef, c grid.Cell, rot grid.Rot4) bool
	LineOfSight(start, end grid.Cell, skipFirstCell bool) bool
}

var _ SpawnMap = (*gridgraph.Map)(nil)

// Observer receives every candidate cell TryFindRandomCellNear looks at.
// value is a heat in [0, 1]; label says what happened to the candidate.
type Observer interface {
	FlashCell(c grid.Cell, value float64, label string)
}

// RegionObserver is an Observer that also sees every region a region
// traversal enqueues, with its link distance from the root.
type RegionObserver interface {
	Observer
	EnqueueRegion(r *core.Region, depth int)
}

// Option configures a Finder.
type Option func(*Finder)

// WithRand makes the Finder draw from r. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(ErrNilRand.Error())
	}
	return func(f *Finder) { f.rnd = r }
}

// WithSeed makes the Finder draw from a fresh stream seeded with seed.
func WithSeed(seed int64) Option {
	return func(f *Finder) { f.rnd = rng.New(seed) }
}

// WithStream makes the Finder draw from stream of base, so Finders built from
// one seeded source for separate goroutines stay reproducible. A nil base
// means rng.DefaultSeed. base itself is advanced once.
func WithStream(base *rand.Rand, stream uint64) Option {
	return func(f *Finder) { f.rnd = rng.Derive(base, stream) }
}

// WithLogger routes the Finder's error reports to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}
	return func(f *Finder) { f.log = l }
}

// WithObserver attaches a debug observer. If o is a RegionObserver it is
// also told about region traversals.
func WithObserver(o Observer) Option {
	return func(f *Finder) { f.observer = o }
}

// Finder runs cell and region searches. It owns every scratch buffer the
// searches need, so independent Finders never share state.
//
// A Finder must not be used from several goroutines at once. Validators may
// call back into the Finder that invoked them: each nesting level works on
// its own scratch set.
type Finder struct {
	rnd      *rand.Rand
	log      *slog.Logger
	observer Observer
	logged   mapset.Set[string]

	pool  []*scratch
	depth int

	edges edgeCache
	stand *dijkstra.Runner[grid.Cell]
}

// New returns a Finder. Without options it draws from rng.DefaultSeed and
// logs to slog.Default().
func New(opts ...Option) *Finder {
	f := &Finder{
		log:    slog.Default(),
		logged: mapset.New[string](),
		stand:  dijkstra.NewRunner[grid.Cell](),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rnd == nil {
		f.rnd = rng.New(rng.DefaultSeed)
	}

	return f
}

// Rand returns the Finder's random source.
func (f *Finder) Rand() *rand.Rand { return f.rnd }

// scratch is one nesting level's worth of working buffers.
type scratch struct {
	regions []*core.Region
	cells   []grid.Cell
	xs, zs  []int
	trav    *bfs.Traverser
}

func (f *Finder) acquire() *scratch {
	if f.depth == len(f.pool) {
		f.pool = append(f.pool, &scratch{trav: bfs.NewTraverser()})
	}
	s := f.pool[f.depth]
	f.depth++
	return s
}

func (f *Finder) release(s *scratch) {
	clear(s.regions)
	s.regions = s.regions[:0]
	s.cells = s.cells[:0]
	s.xs = s.xs[:0]
	s.zs = s.zs[:0]
	f.depth--
}

// traverseOptions maps the public maxRegions/types pair onto bfs options.
// A zero types mask means core.SetPassable.
func (f *Finder) traverseOptions(maxRegions int, types core.RegionType) []bfs.Option {
	if types == core.RegionNone {
		types = core.SetPassable
	}
	opts := []bfs.Option{bfs.WithMaxRegions(maxRegions), bfs.WithRegionTypes(types)}
	if ro, ok := f.observer.(RegionObserver); ok {
		opts = append(opts, bfs.WithOnEnqueue(ro.EnqueueRegion))
	}
	return opts
}

func (f *Finder) flash(c grid.Cell, value float64, label string) {
	if f.observer != nil {
		f.observer.FlashCell(c, value, label)
	}
}

func cellCountWeight(r *core.Region) float64 { return float64(r.CellCount()) }
