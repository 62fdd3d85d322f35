package world

// Direction represents one of the eight compass directions
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections returns all eight directions for neighbourhood iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	case South:
		return 1, 0
	case SouthWest:
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}
