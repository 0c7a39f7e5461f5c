package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the map would have no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: map must have at least one row and one column")
	// ErrNonRectangular indicates glyph rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates a glyph FromRows does not understand.
	ErrUnknownGlyph = errors.New("gridgraph: unknown map glyph")
	// ErrBadRegionSize indicates a non-positive MapOptions.RegionSize.
	ErrBadRegionSize = errors.New("gridgraph: region size must be positive")
	// ErrOutOfBounds indicates a cell or footprint outside the map.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotEdgeCell indicates a road edge tile that is not on the map boundary.
	ErrNotEdgeCell = errors.New("gridgraph: cell is not on the map edge")
	// ErrNilThing indicates a nil thing, def or pawn argument.
	ErrNilThing = errors.New("gridgraph: thing is nil")
	// ErrCellOccupied indicates a door placed on an impassable or already-doored cell.
	ErrCellOccupied = errors.New("gridgraph: cell cannot take a door")
	// ErrNotSpawned indicates despawning something that is not on the map.
	ErrNotSpawned = errors.New("gridgraph: not spawned on this map")
)
