// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on implicit weighted graphs.
//
// Options:
//
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilNeighbors    if the neighbor enumerator is nil.
//	– ErrNilCost         if the cost function is nil.
//	– ErrNegativeWeight  if a negative edge cost is produced during relaxation.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"iter"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilNeighbors indicates that no neighbor enumerator was supplied.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrNilCost indicates that no edge cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NeighborFunc enumerates the vertices adjacent to v.
type NeighborFunc[T comparable] func(v T) iter.Seq[T]

// CostFunc returns the non-negative cost of stepping from one vertex to an
// adjacent one. Returning +Inf (or anything >= InfEdgeThreshold) marks the
// step impassable.
type CostFunc[T comparable] func(from, to T) float64

// Options configures the behavior of the Dijkstra algorithm.
//
// InfEdgeThreshold – edges with cost ≥ this threshold are skipped.
type Options struct {
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - InfEdgeThreshold: +Inf (only +Inf costs are impassable).
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: math.Inf(1),
	}
}
