// Package bfs provides breadth-first traversal over a core region graph.
//
// What
//
//   - Visit regions in non-decreasing link distance from a root region.
//   - The root is always processed first, whatever its type.
//   - A neighbor is entered only if its type is in the traversal's region-type
//     mask and the caller's EntryCondition(from, to) accepts it.
//   - The RegionProcessor runs once per entered region; returning true stops
//     the traversal immediately ("found it").
//   - At most MaxRegions regions are processed.
//
// Why
//
//   - Region graphs are orders of magnitude smaller than the cell grid, so
//     "what can I reach from here" questions cost O(regions), not O(cells).
//   - BFS order approximates distance order, which is what "closest region
//     with property P" searches need.
//
// Determinism
//
//	core.Region.Neighbors is sorted by region ID and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible for an unchanged
//	graph.
//
// Reentrancy
//
//	A Traverser is single-use at a time: calling BreadthFirstTraverse on a
//	Traverser from inside one of its own callbacks returns ErrBusy rather than
//	corrupting the running traversal. Use a separate Traverser (or the
//	package-level BreadthFirstTraverse) for nested searches.
//
// Complexity (R = regions reached, L = links among them)
//
//   - Time:   O(R + L) plus callback cost.
//   - Memory: O(R) for the queue and the closed set.
//
// Usage
//
//	t := bfs.NewTraverser()
//	stopped, err := t.BreadthFirstTraverse(root,
//	    func(from, to *core.Region) bool { return to.Allows(tp, false) },
//	    func(r *core.Region) bool { return r.CellCount() > 50 },
//	    bfs.WithMaxRegions(200),
//	    bfs.WithRegionTypes(core.SetPassable),
//	)
//
// Errors
//
//   - ErrNilRoot          if the root region is nil.
//   - ErrNilProcessor     if the region processor is nil.
//   - ErrOptionViolation  for invalid options (negative MaxRegions, empty mask).
//   - ErrBusy             when a Traverser is re-entered from its own callback.
package bfs
