// Package cellfinder answers "where can this go?" questions on a tile map:
// random reachable cells, random regions near a point, map-edge cells, the
// best nearby cell for a pawn to stand on, and low-damage spawn spots.
//
// Searches over reachability work on the region graph (see package bfs), so
// they cost O(regions) rather than O(cells) until a region is sampled.
// Random choices follow one rule throughout: try a handful of random
// candidates, then fall back to an exhaustive shuffled scan so a valid
// answer is never missed. TryFindRandomCellNear with a small maxTries is the
// one deliberate exception.
//
// State
//
//	All working buffers and edge-cell caches belong to a *Finder. There is no
//	package-level mutable state. A Finder is for one goroutine at a time;
//	validators may call back into it, and nested calls get their own buffers.
//
// Randomness
//
//	Each Finder draws from one *rand.Rand (WithRand, WithSeed). With the same
//	seed, the same map and the same call sequence, results repeat exactly:
//	region traversal order is fixed by region ID.
//
// Failures
//
//	Exhausted searches return false with grid.Invalid (or the root cell, as
//	each method documents). Bad soft input such as a nil map or nil root is
//	logged once per Finder through log/slog and treated as "nothing found".
//	RandomRegionNear panics with ErrNilRoot on a nil root.
//
// Usage
//
//	m, _ := gridgraph.FromRows(rows, gridgraph.DefaultMapOptions())
//	f := cellfinder.New(cellfinder.WithSeed(7))
//	c, ok := f.TryRandomClosewalkCellNear(grid.Cell{X: 3, Z: 3}, m, 5, nil)
package cellfinder
