// SPDX-License-Identifier: MIT
// Package: cellfind/builder
//
// impl_noise.go — NoiseRocks: coherent rock outcrops from OpenSimplex noise.
//
// Contract:
//   • Requires cfg.rng != nil; the noise seed is drawn from it, so a fixed
//     builder seed yields identical outcrops.
//   • Door cells are never overwritten.

package builder

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/cellfind/gridgraph"
)

// NoiseRocks lays wall terrain on every door-free cell whose 2D noise value,
// sampled at (x*scale, z*scale), is above threshold. Larger scale gives
// smaller, busier outcrops; threshold in [-1, 1] controls coverage.
// Complexity: O(W×H).
func NoiseRocks(scale, threshold float64) Constructor {
	return func(m *gridgraph.Map, cfg builderConfig) error {
		if scale <= 0 {
			return builderErrorf(MethodNoiseRocks, "scale=%g: %w", scale, ErrTooSmall)
		}
		if threshold < -1 || threshold > 1 {
			return builderErrorf(MethodNoiseRocks, "threshold=%g: %w", threshold, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodNoiseRocks, "%w", ErrNeedRandSource)
		}
		noise := opensimplex.New(cfg.rng.Int63())
		size := m.Size()
		for i := 0; i < size.Area(); i++ {
			c := size.CellAt(i)
			if noise.Eval2(float64(c.X)*scale, float64(c.Z)*scale) <= threshold || m.DoorAt(c) != nil {
				continue
			}
			if err := m.SetTerrain(c, cfg.wallTerrain); err != nil {
				return builderErrorf(MethodNoiseRocks, "SetTerrain(%v): %w", c, err)
			}
		}
		return nil
	}
}
