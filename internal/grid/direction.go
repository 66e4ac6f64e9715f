package grid

import "fmt"

// Direction is a unit step through the grid. DX moves along columns, DY
// along rows; positive DY points down.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// The eight compass directions.
var (
	South     = Direction{DX: 0, DY: 1}
	North     = Direction{DX: 0, DY: -1}
	East      = Direction{DX: 1, DY: 0}
	West      = Direction{DX: -1, DY: 0}
	SouthEast = Direction{DX: 1, DY: 1}
	NorthEast = Direction{DX: 1, DY: -1}
	NorthWest = Direction{DX: -1, DY: -1}
	SouthWest = Direction{DX: -1, DY: 1}
)

// scanOrder must not change; see the package documentation.
var scanOrder = [8]Direction{
	South, North, East, West, SouthEast, NorthEast, NorthWest, SouthWest,
}

// Directions returns the eight directions in scanning order.
func Directions() []Direction {
	out := make([]Direction, len(scanOrder))
	copy(out, scanOrder[:])
	return out
}

// Valid reports whether d is one of the eight unit directions.
func (d Direction) Valid() bool {
	for _, s := range scanOrder {
		if d == s {
			return true
		}
	}
	return false
}

// String returns the compass abbreviation, e.g. "NE".
func (d Direction) String() string {
	switch d {
	case South:
		return "S"
	case North:
		return "N"
	case East:
		return "E"
	case West:
		return "W"
	case SouthEast:
		return "SE"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthWest:
		return "SW"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}
