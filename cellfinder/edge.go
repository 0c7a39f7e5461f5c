// SPDX-License-Identifier: MIT

package cellfinder

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cellfind/core"
	"github.com/katalvlaran/cellfind/grid"
	"github.com/katalvlaran/cellfind/rng"
)

// Road chances: how often an edge search first tries the map's road exits.
const (
	EdgeRoadChanceIgnore   = 0.0
	EdgeRoadChanceAnimal   = 0.0
	EdgeRoadChanceHostile  = 0.2
	EdgeRoadChanceNeutral  = 0.75
	EdgeRoadChanceFriendly = 0.75
	EdgeRoadChanceAlways   = 1.0
)

// edgeCellDraws is how many random edge cells are tried before the full scan.
const edgeCellDraws = 100

// CheckedCellValidator is a cell validator that can fail. A non-nil error
// rejects the cell and is logged with it.
type CheckedCellValidator func(c grid.Cell) (bool, error)

// edgeCache keeps the perimeter of the last map size seen, whole and per side.
// Each side remembers the size it was built for.
type edgeCache struct {
	allSize  grid.Size
	all      []grid.Cell
	sideSize [4]grid.Size
	side     [4][]grid.Cell
}

func (f *Finder) edgeCells(size grid.Size) []grid.Cell {
	if f.edges.all == nil || f.edges.allSize != size {
		f.edges.allSize = size
		f.edges.all = grid.WholeMap(size).EdgeCells()
	}
	return f.edges.all
}

func (f *Finder) edgeCellsOn(size grid.Size, dir grid.Rot4) []grid.Cell {
	i := dir.AsInt()
	if f.edges.side[i] == nil || f.edges.sideSize[i] != size {
		f.edges.sideSize[i] = size
		f.edges.side[i] = grid.WholeMap(size).EdgeCellsOn(dir)
	}
	return f.edges.side[i]
}

// RandomEdgeCell returns a cell chosen uniformly from the map's perimeter.
func (f *Finder) RandomEdgeCell(m Map) grid.Cell {
	cells := f.edgeCells(m.Size())
	if len(cells) == 0 {
		return grid.Invalid
	}
	return cells[f.rnd.Intn(len(cells))]
}

// RandomEdgeCellOn returns a random cell on the dir side of the map, or
// grid.Invalid for an invalid rotation.
func (f *Finder) RandomEdgeCellOn(dir grid.Rot4, m Map) grid.Cell {
	size := m.Size()
	switch dir {
	case grid.North:
		return grid.Cell{X: rng.Range(f.rnd, 0, size.X), Z: size.Z - 1}
	case grid.South:
		return grid.Cell{X: rng.Range(f.rnd, 0, size.X), Z: 0}
	case grid.East:
		return grid.Cell{X: size.X - 1, Z: rng.Range(f.rnd, 0, size.Z)}
	case grid.West:
		return grid.Cell{X: 0, Z: rng.Range(f.rnd, 0, size.Z)}
	default:
		return grid.Invalid
	}
}

// TryFindRandomEdgeCellWith finds a perimeter cell satisfying validator.
//
// With probability roadChance it first picks among the map's road edge tiles
// that qualify. Then it tries random perimeter cells, and finally scans the
// whole perimeter in shuffled order. A validator that panics during the scan
// rejects that cell only; the panic is logged.
func (f *Finder) TryFindRandomEdgeCellWith(validator func(grid.Cell) bool, m Map, roadChance float64) (grid.Cell, bool) {
	return f.findEdgeCell(m, grid.Rot4(-1), roadChance, plainCheck(validator), true)
}

// TryFindRandomEdgeCellWithDir is TryFindRandomEdgeCellWith restricted to
// the dir side of the map. An invalid rotation finds nothing.
func (f *Finder) TryFindRandomEdgeCellWithDir(validator func(grid.Cell) bool, m Map, dir grid.Rot4, roadChance float64) (grid.Cell, bool) {
	if !dir.IsValid() {
		return grid.Invalid, false
	}
	return f.findEdgeCell(m, dir, roadChance, plainCheck(validator), true)
}

// TryFindRandomEdgeCellWithChecked is TryFindRandomEdgeCellWith for a
// validator that reports failures as errors. Errors reject the cell and are
// logged; panics are not recovered.
func (f *Finder) TryFindRandomEdgeCellWithChecked(validator CheckedCellValidator, m Map, roadChance float64) (grid.Cell, bool) {
	return f.findEdgeCell(m, grid.Rot4(-1), roadChance, validator, false)
}

// TryFindRandomEdgeCellWithDirChecked is the one-sided form of
// TryFindRandomEdgeCellWithChecked.
func (f *Finder) TryFindRandomEdgeCellWithDirChecked(validator CheckedCellValidator, m Map, dir grid.Rot4, roadChance float64) (grid.Cell, bool) {
	if !dir.IsValid() {
		return grid.Invalid, false
	}
	return f.findEdgeCell(m, dir, roadChance, validator, false)
}

// TryFindRandomEdgeCellNearWith finds a perimeter cell within radius of near
// satisfying validator. It searches the perimeter or the square around near,
// whichever holds fewer cells.
func (f *Finder) TryFindRandomEdgeCellNearWith(near grid.Cell, radius float64, m Map, validator func(grid.Cell) bool) (grid.Cell, bool) {
	size := m.Size()
	rect := grid.CenteredOnRadius(near, radius)
	pred := func(c grid.Cell) bool {
		return c.InHorDistOf(near, radius) && c.OnEdge(size) && (validator == nil || validator(c))
	}
	if grid.WholeMap(size).EdgeCellsCount() < rect.Area() {
		return f.TryFindRandomEdgeCellWith(pred, m, EdgeRoadChanceIgnore)
	}
	return f.TryFindRandomCellInsideWith(rect.ClipInsideMap(size), pred)
}

// TryFindRandomPawnExitCell finds an unroofed, walkable perimeter cell that
// pawn can walk to from where it stands.
func (f *Finder) TryFindRandomPawnExitCell(pawn *core.Pawn, m Map) (grid.Cell, bool) {
	if pawn == nil || m == nil {
		return grid.Invalid, false
	}
	tp := core.ForPawn(pawn, core.DangerSome, core.ByPawn)
	reach, ok := f.reachableRegionIDs(m, pawn.Position, tp)
	if !ok {
		return grid.Invalid, false
	}

	return f.TryFindRandomEdgeCellWith(func(c grid.Cell) bool {
		if m.Roofed(c) || !m.Walkable(c) {
			return false
		}
		r := m.RegionAt(c)
		return r != nil && reach.Has(r.ID) && r.Allows(tp, true)
	}, m, EdgeRoadChanceIgnore)
}

// reachableRegionIDs returns the IDs of every region a traversal under tp
// can enter starting from the region at from.
func (f *Finder) reachableRegionIDs(m Map, from grid.Cell, tp core.TraverseParms) (mapset.Set[int], bool) {
	start := m.RegionAt(from)
	if start == nil {
		return mapset.Set[int]{}, false
	}
	s := f.acquire()
	defer f.release(s)

	ids := mapset.New[int]()
	_, err := s.trav.BreadthFirstTraverse(start,
		func(_, r *core.Region) bool { return r.Allows(tp, false) },
		func(r *core.Region) bool {
			ids.Put(r.ID)
			return false
		},
		f.traverseOptions(0, core.SetPassable)...)
	if err != nil {
		f.log.Error("cellfinder: reachability traversal failed", "from", from.String(), "err", err)
		return ids, false
	}

	return ids, true
}

// plainCheck adapts a boolean validator. A nil validator accepts every cell.
func plainCheck(validator func(grid.Cell) bool) CheckedCellValidator {
	return func(c grid.Cell) (bool, error) {
		return validator == nil || validator(c), nil
	}
}

// findEdgeCell is the shared edge search. dir selects one side; an invalid
// dir means the whole perimeter. guard recovers validator panics during the
// exhaustive scan.
func (f *Finder) findEdgeCell(m Map, dir grid.Rot4, roadChance float64, check CheckedCellValidator, guard bool) (grid.Cell, bool) {
	if check == nil {
		check = plainCheck(nil)
	}
	size := m.Size()
	oneSide := dir.IsValid()

	s := f.acquire()
	defer f.release(s)

	if rng.Chance(f.rnd, roadChance) {
		for _, c := range m.RoadEdgeTiles() {
			if oneSide && !c.OnEdgeOf(size, dir) {
				continue
			}
			if f.accept(check, c) {
				s.cells = append(s.cells, c)
			}
		}
		if c, ok := rng.TryRandomElement(s.cells, f.rnd); ok {
			return c, true
		}
	}

	for i := 0; i < edgeCellDraws; i++ {
		var c grid.Cell
		if oneSide {
			c = f.RandomEdgeCellOn(dir, m)
		} else {
			c = f.RandomEdgeCell(m)
		}
		if f.accept(check, c) {
			return c, true
		}
	}

	if oneSide {
		s.cells = append(s.cells[:0], f.edgeCellsOn(size, dir)...)
	} else {
		s.cells = append(s.cells[:0], f.edgeCells(size)...)
	}
	rng.Shuffle(s.cells, f.rnd)
	for _, c := range s.cells {
		var ok bool
		if guard {
			ok = f.acceptGuarded(check, c)
		} else {
			ok = f.accept(check, c)
		}
		if ok {
			return c, true
		}
	}

	return grid.Invalid, false
}

// accept runs check on c, logging and rejecting on error.
func (f *Finder) accept(check CheckedCellValidator, c grid.Cell) bool {
	ok, err := check(c)
	if err != nil {
		f.log.Error("cellfinder: edge cell validation failed", "cell", c.String(), "err", err)
		return false
	}
	return ok
}

// acceptGuarded is accept with validator panics turned into rejections.
func (f *Finder) acceptGuarded(check CheckedCellValidator, c grid.Cell) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("cellfinder: edge cell validation failed", "cell", c.String(),
				"err", fmt.Errorf("%w: %v", ErrValidatorPanic, r))
			ok = false
		}
	}()
	return f.accept(check, c)
}
