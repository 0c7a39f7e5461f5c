package core

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cellfind/grid"
)

// ForbiddenOracle answers whether a cell is off-limits to a pawn. The map
// that builds the regions supplies it.
type ForbiddenOracle interface {
	IsForbidden(c grid.Cell, p *Pawn) bool
}

// Region is a connected set of cells of a single RegionType.
//
// ID is unique within its Graph. Cells are stored in discovery order;
// ExtentsClose is their bounding rectangle. Door is non-nil only for
// RegionDoor regions. Neighbors are sorted by ID.
type Region struct {
	ID     int
	Type   RegionType
	Door   *Door
	Danger Danger

	cells     []grid.Cell
	extents   grid.Rect
	neighbors []*Region
	oracle    ForbiddenOracle
}

// NewRegion creates a region owning cells. The cell slice is retained, not
// copied. oracle may be nil, in which case no cell is ever forbidden.
// Returns ErrEmptyRegion if cells is empty.
// Complexity: O(len(cells)).
func NewRegion(id int, typ RegionType, cells []grid.Cell, oracle ForbiddenOracle) (*Region, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: region %d", ErrEmptyRegion, id)
	}
	ext := grid.Rect{MinX: 1, MaxX: 0}
	for _, c := range cells {
		ext = ext.Encapsulate(c)
	}
	return &Region{ID: id, Type: typ, cells: cells, extents: ext, oracle: oracle}, nil
}

// CellCount returns the number of cells in the region.
func (r *Region) CellCount() int { return len(r.cells) }

// Cells returns the region's cells. Callers must not modify the slice.
func (r *Region) Cells() []grid.Cell { return r.cells }

// ExtentsClose returns the bounding rectangle of the region's cells.
func (r *Region) ExtentsClose() grid.Rect { return r.extents }

// RandomCell returns a uniformly chosen cell of the region.
func (r *Region) RandomCell(rnd *rand.Rand) grid.Cell {
	return r.cells[rnd.Intn(len(r.cells))]
}

// Neighbors returns the adjacent regions sorted by ID. Callers must not
// modify the slice.
func (r *Region) Neighbors() []*Region { return r.neighbors }

// Allows reports whether a traversal described by tp may enter r.
// isDestination marks r as the place the traverser wants to end up, which
// applies the danger limit even to merely hazardous regions.
func (r *Region) Allows(tp TraverseParms, isDestination bool) bool {
	if tp.Mode != PassAllDestroyableThings && !r.Type.Passable() {
		return false
	}
	if tp.Pawn != nil && tp.MaxDanger < DangerDeadly && r.Danger > tp.MaxDanger {
		if isDestination || r.Danger == DangerDeadly {
			return false
		}
	}
	if r.Door == nil {
		return true
	}
	switch tp.Mode {
	case ByPawn:
		if tp.CanBash {
			return true
		}
		if tp.Pawn == nil {
			return r.Door.FreePassage()
		}
		return r.Door.CanPhysicallyPass(tp.Pawn)
	case NoPassClosedDoors:
		return r.Door.FreePassage()
	default:
		return true
	}
}

// IsForbiddenEntirely reports whether every cell of the region is forbidden to p.
func (r *Region) IsForbiddenEntirely(p *Pawn) bool {
	if r.oracle == nil || p == nil {
		return false
	}
	for _, c := range r.cells {
		if !r.oracle.IsForbidden(c, p) {
			return false
		}
	}
	return true
}

// String formats the region as "Region#id(Type,n cells)".
func (r *Region) String() string {
	if r == nil {
		return "Region<nil>"
	}
	return fmt.Sprintf("Region#%d(%s,%d cells)", r.ID, r.Type, len(r.cells))
}
