package core

import "github.com/katalvlaran/cellfind/grid"

// Faction groups pawns. Two distinct factions are hostile when either is
// marked Hostile.
type Faction struct {
	Name    string
	Hostile bool
}

// HostileTo reports whether f and o are enemies.
func (f *Faction) HostileTo(o *Faction) bool {
	if f == nil || o == nil || f == o {
		return false
	}
	return f.Hostile || o.Hostile
}

// Pawn is an opaque agent handle. The map owning the pawn keeps Position
// current; searches only read it.
type Pawn struct {
	ID       string
	Faction  *Faction
	Position grid.Cell
	// CanBashDoors lets the pawn force its way through doors it cannot open.
	CanBashDoors bool
}

// HostileTo reports whether p and o belong to hostile factions.
func (p *Pawn) HostileTo(o *Pawn) bool {
	if p == nil || o == nil {
		return false
	}
	return p.Faction.HostileTo(o.Faction)
}

// Door is a door occupying a single cell.
type Door struct {
	Position grid.Cell
	Open     bool
	Locked   bool
	// Faction owning the door; nil means anyone may open it.
	Faction *Faction
}

// FreePassage reports whether anything can walk through without opening the door.
func (d *Door) FreePassage() bool { return d != nil && d.Open }

// PawnCanOpen reports whether p may open the door.
func (d *Door) PawnCanOpen(p *Pawn) bool {
	if d == nil || p == nil || d.Locked {
		return false
	}
	return d.Faction == nil || d.Faction == p.Faction || !d.Faction.HostileTo(p.Faction)
}

// CanPhysicallyPass reports whether p can get through the door at all,
// either because it is open, because p can open it, or because p can bash it.
func (d *Door) CanPhysicallyPass(p *Pawn) bool {
	if d == nil {
		return true
	}
	return d.FreePassage() || d.PawnCanOpen(p) || (p != nil && p.CanBashDoors)
}
