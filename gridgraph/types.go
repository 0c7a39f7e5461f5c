// Package gridgraph defines terrain, thing and option types
// for the gridgraph map.
package gridgraph

import (
	"github.com/katalvlaran/cellfind/grid"
)

// Passability tells whether a pawn may stand on, walk through, or never enter
// a cell.
type Passability int

const (
	// Standable cells can be walked through and stood on.
	Standable Passability = iota
	// PassThroughOnly cells can be crossed but not stood on (shallow water, doors).
	PassThroughOnly
	// Impassable cells block movement.
	Impassable
)

// String returns the passability name.
func (p Passability) String() string {
	switch p {
	case Standable:
		return "Standable"
	case PassThroughOnly:
		return "PassThroughOnly"
	case Impassable:
		return "Impassable"
	default:
		return "Passability(?)"
	}
}

// Terrain is the ground type of a cell.
type Terrain int

const (
	// Floor is standable and buildable.
	Floor Terrain = iota
	// Rock is solid wall.
	Rock
	// Water is walkable but not standable or buildable.
	Water
	// Sand is standable but cannot carry buildings.
	Sand
)

// Passability returns how pawns can move over the terrain.
func (t Terrain) Passability() Passability {
	switch t {
	case Rock:
		return Impassable
	case Water:
		return PassThroughOnly
	default:
		return Standable
	}
}

// Buildable reports whether buildings may be placed on the terrain.
func (t Terrain) Buildable() bool { return t == Floor }

// BlocksSight reports whether the terrain stops line of sight.
func (t Terrain) BlocksSight() bool { return t == Rock }

// ThingCategory is the broad class of a thing def.
type ThingCategory int

const (
	// CategoryItem is a haulable object lying on the floor.
	CategoryItem ThingCategory = iota
	// CategoryBuilding is a constructed structure.
	CategoryBuilding
	// CategoryPlant is a growing plant.
	CategoryPlant
	// CategoryPawn is a creature; pawns live in core.Pawn and are never wiped.
	CategoryPawn
)

// ThingDefCount is one entry in a build cost list.
type ThingDefCount struct {
	Def   *ThingDef
	Count int
}

// ThingDef describes a kind of thing.
type ThingDef struct {
	Name        string
	Category    ThingCategory
	Size        grid.Size // footprint when facing North; zero means 1x1
	Passability Passability
	MarketValue float64

	// CostList is what constructing one of these consumes.
	CostList []ThingDefCount
	// CostStuffCount is how much stuff (material of choice) it needs; 0 if none.
	CostStuffCount int
}

// FootprintSize returns Size with zero dimensions replaced by 1.
func (d *ThingDef) FootprintSize() grid.Size {
	s := d.Size
	if s.X <= 0 {
		s.X = 1
	}
	if s.Z <= 0 {
		s.Z = 1
	}
	return s
}

// SpawningWipes reports whether spawning a thing of def newDef destroys an
// existing thing of def old sharing its footprint.
//
//	Building             wipes Plant and Building
//	Impassable Building  also wipes Item
//	Item                 wipes Item
//
// Pawns are never wiped.
func SpawningWipes(newDef, old *ThingDef) bool {
	if newDef == nil || old == nil || old.Category == CategoryPawn {
		return false
	}
	switch newDef.Category {
	case CategoryBuilding:
		if old.Category == CategoryPlant || old.Category == CategoryBuilding {
			return true
		}
		return old.Category == CategoryItem && newDef.Passability == Impassable
	case CategoryItem:
		return old.Category == CategoryItem
	default:
		return false
	}
}

// Thing is an instance of a ThingDef placed on a map.
type Thing struct {
	Def        *ThingDef
	Position   grid.Cell
	Rotation   grid.Rot4
	StackCount int
}

// OccupiedRect returns the cells the thing covers.
func (t *Thing) OccupiedRect() grid.Rect {
	return grid.OccupiedRect(t.Position, t.Rotation, t.Def.FootprintSize())
}

// Stack returns StackCount, treating non-positive counts as 1.
func (t *Thing) Stack() int {
	if t.StackCount <= 0 {
		return 1
	}
	return t.StackCount
}

// MarketValue is the value of one unit of the thing.
func (t *Thing) MarketValue() float64 { return t.Def.MarketValue }

// MapOptions contains tunable parameters for map construction.
type MapOptions struct {
	// RegionSize is the side length of the square sections regions are cut into.
	RegionSize int
}

// DefaultMapOptions returns MapOptions with RegionSize=12.
func DefaultMapOptions() MapOptions {
	return MapOptions{RegionSize: 12}
}
