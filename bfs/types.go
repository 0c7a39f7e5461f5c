// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core region graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellfind/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilRoot is returned when the root region is nil.
	ErrNilRoot = errors.New("bfs: root region is nil")

	// ErrNilProcessor is returned when no region processor is supplied.
	ErrNilProcessor = errors.New("bfs: region processor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBusy is returned when a Traverser is re-entered from its own callback.
	ErrBusy = errors.New("bfs: traverser is already running")
)

// DefaultMaxRegions is the region cap used when none is given.
const DefaultMaxRegions = 999999

// EntryCondition decides whether the traversal may step from one region into
// an adjacent one.
type EntryCondition func(from, to *core.Region) bool

// RegionProcessor is called once per entered region. Returning true stops
// the traversal.
type RegionProcessor func(r *core.Region) bool

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative region cap), it will be recorded
// internally and surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// MaxRegions caps how many regions are processed.
	MaxRegions int

	// RegionTypes is the mask of region types the traversal may enter.
	RegionTypes core.RegionType

	// OnEnqueue is called when a region is enqueued, with its link distance
	// from the root.
	OnEnqueue func(r *core.Region, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxRegions = DefaultMaxRegions
//   - RegionTypes = core.SetPassable
//   - no-op OnEnqueue hook.
func DefaultOptions() Options {
	return Options{
		MaxRegions:  DefaultMaxRegions,
		RegionTypes: core.SetPassable,
		OnEnqueue:   func(*core.Region, int) {},
	}
}

// WithMaxRegions caps the number of processed regions.
//
//	n > 0:  process at most n regions
//	n == 0: explicit "use DefaultMaxRegions"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRegions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxRegions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxRegions = DefaultMaxRegions
		default:
			o.MaxRegions = n
		}
	}
}

// WithRegionTypes sets the mask of enterable region types.
// An empty mask is an ErrOptionViolation.
func WithRegionTypes(mask core.RegionType) Option {
	return func(o *Options) {
		if mask == core.RegionNone {
			o.err = fmt.Errorf("%w: RegionTypes mask is empty", ErrOptionViolation)
			return
		}
		o.RegionTypes = mask
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(r *core.Region, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
