package event

import "fmt"

// Direction is the way the player turns. Left and Right are the only values;
// the zero value is Left.
type Direction struct {
	right bool
}

// Left returns the left-turn direction.
func Left() Direction { return Direction{} }

// Right returns the right-turn direction.
func Right() Direction { return Direction{right: true} }

// String returns "left" or "right".
func (d Direction) String() string {
	if d.right {
		return "right"
	}
	return "left"
}

// ParseDirection returns the direction named by s.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left(), nil
	case "right":
		return Right(), nil
	}
	return Direction{}, fmt.Errorf("unknown direction: %q", s)
}

// Heading is the compass direction the player faces.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// String returns the lower-case heading name.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Turn returns the heading after turning once in direction d.
func (h Heading) Turn(d Direction) Heading {
	if d.right {
		return (h + 1) % 4
	}
	return (h + 3) % 4
}

// Position is a cell on the world grid.
type Position struct {
	X, Y int
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
