// Package gridgraph models a colony map as a rectangular grid of cells and
// partitions it into a region graph for fast reachability queries.
//
// What:
//
//   - Map holds per-cell terrain, fog, roof, forbidden and danger layers plus
//     doors, pawns and multi-cell things.
//   - Walkable / Standable / Impassable answer movement questions per cell.
//   - Regions: the map is cut into RegionSize×RegionSize sections; each
//     4-connected patch of walkable cells inside a section is a Normal region
//     and each door cell is its own Door region. Adjacent regions are linked
//     in a *core.Graph.
//   - LineOfSight traces a Bresenham line through sight-blocking cells.
//   - FromRows builds a map from a text picture, handy for tests.
//
// Why:
//
//   - Regions turn "can I get there" into a walk over a few hundred nodes
//     instead of tens of thousands of cells.
//   - Sections bound region size, so extents-based distance pruning stays
//     meaningful.
//
// Complexity:
//
//   - Region rebuild: O(W×H), Memory: O(W×H).
//   - Cell predicates: O(1) plus the number of things on the cell.
//
// Options:
//
//   - MapOptions.RegionSize: section side length (default 12).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph: bad construction input.
//   - ErrBadRegionSize: non-positive RegionSize.
//   - ErrOutOfBounds, ErrNotEdgeCell, ErrCellOccupied, ErrNilThing, ErrNotSpawned:
//     rejected mutations.
package gridgraph
