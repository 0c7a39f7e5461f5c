// Package grid provides the integer geometry every other package in cellfind
// is built on: map cells, inclusive cell rectangles, the four cardinal
// rotations and the radial search pattern.
//
// What:
//
//   - Cell is an immutable (X, Z) coordinate. Invalid is the sentinel used by
//     searches that fail.
//   - Size is the extent of a map; valid cells satisfy 0 ≤ X < Size.X and
//     0 ≤ Z < Size.Z.
//   - Rect is an axis-aligned, inclusive rectangle of cells with perimeter
//     ("edge cell") enumeration, clipping and random sampling.
//   - Rot4 names the four map sides: North is the max-Z row, East the max-X
//     column, South the Z=0 row and West the X=0 column.
//   - RadialPattern lists cell offsets in non-decreasing distance from the
//     origin, used for ring-by-ring searches.
//
// Determinism:
//
//	Every enumeration in this package (Rect.Cells, Rect.EdgeCells,
//	RadialPattern) has a fixed, documented order so callers can reproduce
//	results with a seeded random source.
package grid
