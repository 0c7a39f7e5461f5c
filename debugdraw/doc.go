// SPDX-License-Identifier: MIT

// Package debugdraw records the cells a cellfinder.Finder looks at and
// prints them over a map as a small ANSI picture.
//
// A Recorder implements cellfinder.RegionObserver, so it also keeps the
// regions each traversal enqueued (Visits). Inject it with
// cellfinder.WithObserver, run searches, then call Render:
//
//	rec := debugdraw.NewRecorder()
//	f := cellfinder.New(cellfinder.WithSeed(1), cellfinder.WithObserver(rec))
//	f.TryFindRandomCellNear(root, m, 3, ok, -1)
//	_ = rec.Render(os.Stdout, m)
//
// Flashed cells print as a heat digit 0..9 (value × 9), coloured by how the
// candidate fared: red for rejected outright, yellow for rejected during the
// exhaustive scan, green for accepted. Other cells print with the
// gridgraph.FromRows glyphs plus '@' for pawns. Rows run top (highest Z) to
// bottom, so a rendered map reads like the picture it was parsed from.
//
// Colour output follows github.com/gookit/color terminal detection; strip it
// with color.ClearCode when comparing text.
package debugdraw
