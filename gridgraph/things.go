package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
)

// PlaceDoor installs door at c and sets its Position.
// Returns ErrCellOccupied if c is impassable or already has a door.
func (m *Map) PlaceDoor(c grid.Cell, door *core.Door) error {
	if door == nil {
		return ErrNilThing
	}
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if _, ok := m.doors[c]; ok || !m.Walkable(c) {
		return fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}
	door.Position = c
	m.doors[c] = door
	m.markDirty()

	return nil
}

// RemoveDoor removes the door at c, if any.
func (m *Map) RemoveDoor(c grid.Cell) {
	if _, ok := m.doors[c]; ok {
		delete(m.doors, c)
		m.markDirty()
	}
}

// DoorAt returns the door at c, or nil.
func (m *Map) DoorAt(c grid.Cell) *core.Door { return m.doors[c] }

// SpawnPawn places p at c.
func (m *Map) SpawnPawn(p *core.Pawn, c grid.Cell) error {
	if p == nil {
		return ErrNilThing
	}
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	p.Position = c
	m.pawns[c] = append(m.pawns[c], p)

	return nil
}

// DespawnPawn removes p from the map.
func (m *Map) DespawnPawn(p *core.Pawn) error {
	if p == nil {
		return ErrNilThing
	}
	list := m.pawns[p.Position]
	i := slices.Index(list, p)
	if i < 0 {
		return fmt.Errorf("%w: pawn %s", ErrNotSpawned, p.ID)
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(m.pawns, p.Position)
	} else {
		m.pawns[p.Position] = list
	}

	return nil
}

// PawnsAt returns the pawns standing on c. The slice is owned by the map.
func (m *Map) PawnsAt(c grid.Cell) []*core.Pawn { return m.pawns[c] }

// FirstPawnAt returns the first pawn on c, or nil.
func (m *Map) FirstPawnAt(c grid.Cell) *core.Pawn {
	if list := m.pawns[c]; len(list) > 0 {
		return list[0]
	}
	return nil
}

// AnyPawnBlockingPathAt reports whether a pawn other than forPawn occupies c.
func (m *Map) AnyPawnBlockingPathAt(c grid.Cell, forPawn *core.Pawn) bool {
	for _, p := range m.pawns[c] {
		if p != forPawn {
			return true
		}
	}
	return false
}

// SpawnThing places t at t.Position facing t.Rotation, occupying every cell
// of its footprint. The whole footprint must be in bounds.
func (m *Map) SpawnThing(t *Thing) error {
	if t == nil || t.Def == nil {
		return ErrNilThing
	}
	r := t.OccupiedRect()
	if !r.InBounds(m.size) {
		return fmt.Errorf("%w: %s footprint %v-%v", ErrOutOfBounds, t.Def.Name,
			grid.Cell{X: r.MinX, Z: r.MinZ}, grid.Cell{X: r.MaxX, Z: r.MaxZ})
	}
	for _, c := range r.Cells() {
		m.things[c] = append(m.things[c], t)
	}
	if t.Def.Passability == Impassable {
		m.markDirty()
	}

	return nil
}

// DespawnThing removes t from every cell of its footprint.
func (m *Map) DespawnThing(t *Thing) error {
	if t == nil || t.Def == nil {
		return ErrNilThing
	}
	found := false
	for _, c := range t.OccupiedRect().Cells() {
		list := m.things[c]
		i := slices.Index(list, t)
		if i < 0 {
			continue
		}
		found = true
		if list = slices.Delete(list, i, i+1); len(list) == 0 {
			delete(m.things, c)
		} else {
			m.things[c] = list
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotSpawned, t.Def.Name)
	}
	if t.Def.Passability == Impassable {
		m.markDirty()
	}

	return nil
}

// ThingsAt returns the things covering c. The slice is owned by the map.
func (m *Map) ThingsAt(c grid.Cell) []*Thing { return m.things[c] }
