package grid

import (
	"fmt"
	"math"
)

// Cell is an integer coordinate on the map grid.
// Equality and hashing are by coordinate, so Cell is usable as a map key.
type Cell struct {
	X, Z int
}

// Invalid is the sentinel returned by searches that found nothing.
var Invalid = Cell{X: -1000, Z: -1000}

// invalidThreshold separates real coordinates from the Invalid sentinel.
const invalidThreshold = -500

// CardinalDirections lists the unit offsets North, East, South, West, in that order.
var CardinalDirections = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// IsValid reports whether c is a real coordinate rather than Invalid.
func (c Cell) IsValid() bool {
	return c.X > invalidThreshold && c.Z > invalidThreshold
}

// Add returns c + o.
func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Z + o.Z} }

// Sub returns c - o.
func (c Cell) Sub(o Cell) Cell { return Cell{c.X - o.X, c.Z - o.Z} }

// LengthHorizontalSquared returns X² + Z².
func (c Cell) LengthHorizontalSquared() int { return c.X*c.X + c.Z*c.Z }

// LengthManhattan returns |X| + |Z|.
func (c Cell) LengthManhattan() int { return absInt(c.X) + absInt(c.Z) }

// InHorDistOf reports whether c lies within Euclidean distance maxDist of o.
func (c Cell) InHorDistOf(o Cell, maxDist float64) bool {
	return float64(c.Sub(o).LengthHorizontalSquared()) <= maxDist*maxDist
}

// InBounds reports whether c lies on a map of the given size.
func (c Cell) InBounds(size Size) bool {
	return c.X >= 0 && c.X < size.X && c.Z >= 0 && c.Z < size.Z
}

// OnEdge reports whether c is an in-bounds cell on the map perimeter.
func (c Cell) OnEdge(size Size) bool {
	if !c.InBounds(size) {
		return false
	}
	return c.X == 0 || c.Z == 0 || c.X == size.X-1 || c.Z == size.Z-1
}

// OnEdgeOf reports whether c is an in-bounds cell on the given side of the map.
func (c Cell) OnEdgeOf(size Size, dir Rot4) bool {
	if !c.InBounds(size) {
		return false
	}
	switch dir {
	case North:
		return c.Z == size.Z-1
	case East:
		return c.X == size.X-1
	case South:
		return c.Z == 0
	case West:
		return c.X == 0
	default:
		return false
	}
}

// String formats the cell as "(x, z)".
func (c Cell) String() string {
	if !c.IsValid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// Size is the extent of a rectangular map.
type Size struct {
	X, Z int
}

// Area returns X·Z.
func (s Size) Area() int { return s.X * s.Z }

// Index maps an in-bounds cell to its row-major index: z*X + x.
// Complexity: O(1).
func (s Size) Index(c Cell) int { return c.Z*s.X + c.X }

// CellAt converts a row-major index back to a cell.
// Complexity: O(1).
func (s Size) CellAt(idx int) Cell { return Cell{X: idx % s.X, Z: idx / s.X} }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ceilToInt rounds a radius up, the way search squares are sized.
func ceilToInt(v float64) int { return int(math.Ceil(v)) }
