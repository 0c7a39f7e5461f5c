// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over implicit graphs with non-negative edge costs.
//
// Overview:
//
//   - The graph is never materialized. Callers supply a NeighborFunc that
//     enumerates adjacent vertices as an iter.Seq and a CostFunc that prices
//     each step. Any comparable type can be a vertex, typically grid.Cell.
//   - A Runner keeps its distance/parent maps and heap between runs, so
//     repeated searches (expanding radii, per-tick queries) do not reallocate.
//   - Settle order is exposed: Order() lists vertices by ascending distance,
//     with ties broken by discovery order.
//
// Key features:
//
//   - InfEdgeThreshold: costs at or above the threshold are walls.
//   - Path reconstruction through Parent/Path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), heap entries are lazily invalidated.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbors / ErrNilCost: missing callbacks.
//   - ErrNegativeWeight: a CostFunc returned a negative value; the run stops.
//   - ErrBadInfThreshold: raised (via panic) by WithInfEdgeThreshold on a
//     non-positive threshold.
//
// Thread safety:
//
//   - A Runner is not safe for concurrent use. Give each goroutine its own.
package dijkstra
