// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cellfind/gridgraph"
)

// BuilderOption customizes a builderConfig before map construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme sets the pawn ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPawnPrefix names pawns prefix0, prefix1, ...
func WithPawnPrefix(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithStackFn overrides the stack size generator for ScatterThings.
// Panics on nil.
func WithStackFn(fn StackFn) BuilderOption {
	if fn == nil {
		panic("builder: WithStackFn(nil)")
	}
	return func(c *builderConfig) {
		c.stackFn = fn
	}
}

// WithWallTerrain sets the terrain Room, Border and RandomRocks lay down.
// Panics if the terrain is walkable.
func WithWallTerrain(t gridgraph.Terrain) BuilderOption {
	if t.Passability() != gridgraph.Impassable {
		panic("builder: WithWallTerrain(walkable terrain)")
	}
	return func(c *builderConfig) {
		c.wallTerrain = t
	}
}
