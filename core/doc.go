// Package core defines the region graph the cell finder searches over:
// Region nodes that partition a map's passable cells, the Graph linking
// adjacent regions, and the TraverseParms capability token consulted by
// Region.Allows.
//
// What:
//
//   - Region: a connected set of cells of one RegionType (Normal, Door,
//     Portal) with a bounding rectangle (ExtentsClose) for coarse distance
//     pruning and a sorted list of adjacent regions.
//   - Graph: owns the regions of one map and the symmetric links between them.
//   - TraverseParms: who is moving (Pawn), which doors they may pass
//     (TraverseMode) and how much Danger they tolerate.
//   - Pawn, Faction, Door: the minimal agent and door handles Allows needs.
//
// Determinism:
//
//	Region.Neighbors is kept sorted by Region.ID, so any traversal that walks
//	neighbors in order is reproducible for an unchanged graph.
//
// Concurrency:
//
//	Graph guards its region table with a sync.RWMutex while it is being
//	built. Once built, a Graph and its Regions are read-only and may be
//	shared between goroutines.
//
// Errors:
//
//   - ErrNilRegion       region pointer is nil.
//   - ErrDuplicateRegion region ID already present in the graph.
//   - ErrRegionNotFound  region is not part of this graph.
//   - ErrSelfLink        a region cannot be linked to itself.
//   - ErrEmptyRegion     a region must own at least one cell.
package core
