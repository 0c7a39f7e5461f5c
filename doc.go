// Package cellfind answers "where can this go?" on a tile map: pick a random
// reachable cell near a point, a free map-edge cell, a safe place for a pawn
// to step aside, or a spot to drop an item without wiping anything.
//
// The map is cut into regions (connected chunks of walkable cells, doors
// alone in their own region). Searches walk the region graph instead of
// individual cells, so "reachable from here" is cheap.
//
// Packages:
//
//	grid/       — Cell, Rect, Rot4 and Size value types, radial patterns
//	core/       — Region, region links, pawns, doors, traverse parameters
//	gridgraph/  — Map: terrain, doors, pawns, things, roofs, fog, regions
//	bfs/        — breadth-first region traversal with edge and visit callbacks
//	dijkstra/   — generic Dijkstra over float costs
//	rng/        — seeded draws: ranges, chances, shuffles, weighted picks
//	builder/    — deterministic map constructors for tests and benchmarks
//	cellfinder/ — the searches
//	debugdraw/  — records searched cells and prints them over a map
//
// Quick ASCII example:
//
//	. . # . .
//	. . D . .     D is a closed door: its own region, linking
//	. . # . .     the west room and the east room.
//
// A Finder holds the random source and reusable scratch buffers:
//
//	f := cellfinder.New(cellfinder.WithSeed(42))
//	c, ok := f.TryFindRandomReachableCellNear(root, m, 10, core.ForPawn(p, core.DangerDeadly, core.ByPawn), nil, nil, 0)
//
//	go get github.com/katalvlaran/cellfind
package cellfind
