// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(size, mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.
//   - Constructors never panic; they return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/gridgraph"
)

// Constructor applies a deterministic map mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors.
type Constructor func(m *gridgraph.Map, cfg builderConfig) error

// BuildMap creates a new all-floor gridgraph.Map of the given size, resolves
// the builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildMap: %w" and
// returned immediately.
//
// Complexity:
//   - Map allocation: O(W×H).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - gridgraph construction errors (ErrEmptyGrid, ErrBadRegionSize).
//   - builder sentinels (ErrTooSmall, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed) via errors.Is.
func BuildMap(size grid.Size, mopts gridgraph.MapOptions, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Map, error) {
	m, err := gridgraph.NewMap(size, mopts)
	if err != nil {
		return nil, fmt.Errorf("BuildMap: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// Apply runs constructors against an existing map, for fixtures that mix
// FromRows pictures with generated content.
func Apply(m *gridgraph.Map, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil map: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	return nil
}
