// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Region types, traversal modes, danger levels and sentinel errors.

package core

import "errors"

// Sentinel errors for core region-graph operations.
var (
	// ErrNilRegion indicates a nil *Region was passed.
	ErrNilRegion = errors.New("core: region is nil")

	// ErrDuplicateRegion indicates a region with the same ID is already in the graph.
	ErrDuplicateRegion = errors.New("core: duplicate region ID")

	// ErrRegionNotFound indicates an operation referenced a region outside this graph.
	ErrRegionNotFound = errors.New("core: region not found")

	// ErrSelfLink indicates an attempt to link a region to itself.
	ErrSelfLink = errors.New("core: region cannot link to itself")

	// ErrEmptyRegion indicates a region was created without cells.
	ErrEmptyRegion = errors.New("core: region must contain at least one cell")
)

// RegionType is a bit mask classifying regions. Traversals accept a mask
// of the types they may enter.
type RegionType uint8

const (
	// RegionNone marks the absence of a region.
	RegionNone RegionType = 0
	// RegionImpassable covers cells nothing can walk through.
	RegionImpassable RegionType = 1 << iota
	// RegionNormal covers open, standable ground.
	RegionNormal
	// RegionDoor is a single door cell.
	RegionDoor
	// RegionPortal is a pass-through-only connector (e.g. a gate).
	RegionPortal

	// SetPassable is the mask of region types a walker can enter.
	SetPassable = RegionNormal | RegionDoor | RegionPortal
	// SetAll accepts every region type.
	SetAll = RegionImpassable | SetPassable
)

// Allows reports whether t intersects the mask.
func (mask RegionType) Allows(t RegionType) bool { return mask&t != 0 }

// Passable reports whether a walker may enter a region of this type.
func (t RegionType) Passable() bool { return SetPassable.Allows(t) }

// String returns a short name for single types, or "mask(n)" for combinations.
func (t RegionType) String() string {
	switch t {
	case RegionNone:
		return "None"
	case RegionImpassable:
		return "Impassable"
	case RegionNormal:
		return "Normal"
	case RegionDoor:
		return "Door"
	case RegionPortal:
		return "Portal"
	default:
		return "Mask"
	}
}

// TraverseMode selects which obstacles a traversal may cross.
type TraverseMode int

const (
	// ByPawn passes doors the pawn can physically pass (or bash).
	ByPawn TraverseMode = iota
	// PassDoors passes every door regardless of who is moving.
	PassDoors
	// NoPassClosedDoors only passes doors that are currently open.
	NoPassClosedDoors
	// PassAllDestroyableThings ignores region passability entirely.
	PassAllDestroyableThings
)

// Danger ranks how hazardous a region is for a pawn.
type Danger int

const (
	// DangerNone is a safe region.
	DangerNone Danger = iota
	// DangerSome is hazardous but survivable.
	DangerSome
	// DangerDeadly may kill.
	DangerDeadly
)

// TraverseParms is the capability token passed untouched to Region.Allows.
type TraverseParms struct {
	Pawn      *Pawn
	Mode      TraverseMode
	MaxDanger Danger
	CanBash   bool
}

// For builds pawn-less traverse parameters.
func For(mode TraverseMode, maxDanger Danger, canBash bool) TraverseParms {
	return TraverseParms{Mode: mode, MaxDanger: maxDanger, CanBash: canBash}
}

// ForPawn builds traverse parameters for a specific pawn.
func ForPawn(p *Pawn, maxDanger Danger, mode TraverseMode) TraverseParms {
	tp := TraverseParms{Pawn: p, Mode: mode, MaxDanger: maxDanger}
	if p != nil {
		tp.CanBash = p.CanBashDoors
	}
	return tp
}
