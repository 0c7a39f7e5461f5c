package grid

import (
	"math/rand"
)

// Rect is an axis-aligned rectangle of cells. Both bounds are inclusive, so
// a Rect with MinX == MaxX is one cell wide. A Rect with MaxX < MinX (or
// MaxZ < MinZ) is empty.
type Rect struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// RectFromCells builds the rectangle spanned by two corners in any order.
func RectFromCells(a, b Cell) Rect {
	return Rect{
		MinX: min(a.X, b.X), MinZ: min(a.Z, b.Z),
		MaxX: max(a.X, b.X), MaxZ: max(a.Z, b.Z),
	}
}

// WholeMap returns the rectangle covering every cell of a map of the given size.
func WholeMap(size Size) Rect {
	return Rect{MinX: 0, MinZ: 0, MaxX: size.X - 1, MaxZ: size.Z - 1}
}

// CenteredOn returns the square of half-width radius around c.
func CenteredOn(c Cell, radius int) Rect {
	return Rect{MinX: c.X - radius, MinZ: c.Z - radius, MaxX: c.X + radius, MaxZ: c.Z + radius}
}

// CenteredOnRadius is CenteredOn with a fractional radius rounded up.
func CenteredOnRadius(c Cell, radius float64) Rect {
	return CenteredOn(c, ceilToInt(radius))
}

// OccupiedRect returns the footprint of a thing of the given size placed at
// center with rotation rot. East and West swap the footprint's axes. Even
// dimensions extend one cell further towards +X/+Z.
func OccupiedRect(center Cell, rot Rot4, size Size) Rect {
	w, h := size.X, size.Z
	if rot.IsHorizontal() {
		w, h = h, w
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	minX := center.X - (w-1)/2
	minZ := center.Z - (h-1)/2
	return Rect{MinX: minX, MinZ: minZ, MaxX: minX + w - 1, MaxZ: minZ + h - 1}
}

// Width returns the number of columns.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows.
func (r Rect) Height() int { return r.MaxZ - r.MinZ + 1 }

// IsEmpty reports whether the rectangle holds no cells.
func (r Rect) IsEmpty() bool { return r.MaxX < r.MinX || r.MaxZ < r.MinZ }

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Z >= r.MinZ && c.Z <= r.MaxZ
}

// InBounds reports whether the whole rectangle lies on a map of the given size.
func (r Rect) InBounds(size Size) bool {
	return !r.IsEmpty() && r.MinX >= 0 && r.MinZ >= 0 && r.MaxX < size.X && r.MaxZ < size.Z
}

// ClipInsideMap returns the part of the rectangle that lies on the map.
func (r Rect) ClipInsideMap(size Size) Rect {
	r.MinX = max(r.MinX, 0)
	r.MinZ = max(r.MinZ, 0)
	r.MaxX = min(r.MaxX, size.X-1)
	r.MaxZ = min(r.MaxZ, size.Z-1)
	return r
}

// ExpandedBy grows the rectangle by n cells on every side.
func (r Rect) ExpandedBy(n int) Rect {
	return Rect{MinX: r.MinX - n, MinZ: r.MinZ - n, MaxX: r.MaxX + n, MaxZ: r.MaxZ + n}
}

// Encapsulate returns the smallest rectangle containing r and c.
func (r Rect) Encapsulate(c Cell) Rect {
	if r.IsEmpty() {
		return Rect{MinX: c.X, MinZ: c.Z, MaxX: c.X, MaxZ: c.Z}
	}
	r.MinX = min(r.MinX, c.X)
	r.MinZ = min(r.MinZ, c.Z)
	r.MaxX = max(r.MaxX, c.X)
	r.MaxZ = max(r.MaxZ, c.Z)
	return r
}

// ClosestCellTo returns the cell of the rectangle nearest to c.
func (r Rect) ClosestCellTo(c Cell) Cell {
	return Cell{X: clamp(c.X, r.MinX, r.MaxX), Z: clamp(c.Z, r.MinZ, r.MaxZ)}
}

// ClosestDistSquaredTo returns the squared Euclidean distance from c to the
// nearest cell of the rectangle; zero when c is inside.
func (r Rect) ClosestDistSquaredTo(c Cell) int {
	return c.Sub(r.ClosestCellTo(c)).LengthHorizontalSquared()
}

// RandomCell returns a uniformly chosen cell of a non-empty rectangle.
func (r Rect) RandomCell(rnd *rand.Rand) Cell {
	return Cell{
		X: r.MinX + rnd.Intn(r.Width()),
		Z: r.MinZ + rnd.Intn(r.Height()),
	}
}

// Cells returns every cell of the rectangle in row-major order (Z ascending,
// then X ascending).
// Complexity: O(Area).
func (r Rect) Cells() []Cell {
	return r.AppendCells(make([]Cell, 0, r.Area()))
}

// AppendCells appends every cell of the rectangle to dst in row-major order.
func (r Rect) AppendCells(dst []Cell) []Cell {
	for z := r.MinZ; z <= r.MaxZ; z++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			dst = append(dst, Cell{X: x, Z: z})
		}
	}
	return dst
}

// EdgeCellsCount returns how many distinct cells lie on the perimeter.
func (r Rect) EdgeCellsCount() int {
	switch {
	case r.IsEmpty():
		return 0
	case r.Width() == 1 || r.Height() == 1:
		return r.Area()
	default:
		return 2*r.Width() + 2*(r.Height()-2)
	}
}

// EdgeCells returns each perimeter cell exactly once: the bottom row left to
// right, the right column bottom to top, the top row right to left and the
// left column top to bottom.
// Complexity: O(perimeter).
func (r Rect) EdgeCells() []Cell {
	out := make([]Cell, 0, r.EdgeCellsCount())
	if r.IsEmpty() {
		return out
	}
	if r.Width() == 1 || r.Height() == 1 {
		return r.AppendCells(out)
	}
	for x := r.MinX; x <= r.MaxX; x++ {
		out = append(out, Cell{X: x, Z: r.MinZ})
	}
	for z := r.MinZ + 1; z <= r.MaxZ; z++ {
		out = append(out, Cell{X: r.MaxX, Z: z})
	}
	for x := r.MaxX - 1; x >= r.MinX; x-- {
		out = append(out, Cell{X: x, Z: r.MaxZ})
	}
	for z := r.MaxZ - 1; z > r.MinZ; z-- {
		out = append(out, Cell{X: r.MinX, Z: z})
	}
	return out
}

// EdgeCellsOn returns the cells of one side of the rectangle. Corners belong
// to both sides that meet there. An invalid rotation yields no cells.
func (r Rect) EdgeCellsOn(dir Rot4) []Cell {
	if r.IsEmpty() {
		return nil
	}
	var out []Cell
	switch dir {
	case North:
		for x := r.MinX; x <= r.MaxX; x++ {
			out = append(out, Cell{X: x, Z: r.MaxZ})
		}
	case South:
		for x := r.MinX; x <= r.MaxX; x++ {
			out = append(out, Cell{X: x, Z: r.MinZ})
		}
	case East:
		for z := r.MinZ; z <= r.MaxZ; z++ {
			out = append(out, Cell{X: r.MaxX, Z: z})
		}
	case West:
		for z := r.MinZ; z <= r.MaxZ; z++ {
			out = append(out, Cell{X: r.MinX, Z: z})
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
