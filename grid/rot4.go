package grid

// Rot4 is one of the four cardinal rotations, also used to name a map side.
type Rot4 int

// Rotation constants, clockwise from North.
const (
	North Rot4 = iota
	East
	South
	West
)

// AllRotations returns the four valid rotations in clockwise order.
func AllRotations() []Rot4 {
	return []Rot4{North, East, South, West}
}

// IsValid reports whether r is one of the four rotations.
func (r Rot4) IsValid() bool {
	return r >= North && r <= West
}

// AsInt returns the rotation as an index in [0,3].
func (r Rot4) AsInt() int { return int(r) }

// IsHorizontal reports whether r faces East or West.
func (r Rot4) IsHorizontal() bool { return r == East || r == West }

// Opposite returns the rotation facing the other way.
func (r Rot4) Opposite() Rot4 {
	if !r.IsValid() {
		return r
	}
	return (r + 2) % 4
}

// FacingCell returns the unit offset this rotation points at.
func (r Rot4) FacingCell() Cell {
	if !r.IsValid() {
		return Cell{}
	}
	return CardinalDirections[r]
}

// String returns the name of the rotation.
func (r Rot4) String() string {
	switch r {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}
