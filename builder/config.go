// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil        (pure/deterministic unless seeded)
//   • idFn        = "pawn0", "pawn1", ...
//   • stackFn     = ConstantStackFn(1)
//   • wallTerrain = gridgraph.Rock

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cellfind/gridgraph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Pawn ID strategy: index -> ID.
	idFn IDFn
	// Stack size generator for scattered items.
	stackFn StackFn
	// Terrain laid down by wall-building constructors.
	wallTerrain gridgraph.Terrain
}

const defaultPawnPrefix = "pawn"

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        SymbolNumberIDFn(defaultPawnPrefix),
		stackFn:     ConstantStackFn(DefaultStackCount),
		wallTerrain: gridgraph.Rock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
