// Package platform implements the tilting-platform simulation: a grid of
// rolling and fixed rocks that shifts under gravity in the four cardinal
// directions. All operations are pure value transforms; the package does
// no I/O.
package platform

import "fmt"

// Cell is one position on the platform.
type Cell byte

const (
	CellEmpty Cell = iota // nothing here, rocks roll through
	CellRound             // a rolling rock ('O')
	CellCube              // a fixed rock ('#'), never moves
)

// Rune returns the display character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case CellRound:
		return 'O'
	case CellCube:
		return '#'
	default:
		return '.'
	}
}

// Direction is a tilt direction.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name like "north" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "north", "n":
		return North, nil
	case "west", "w":
		return West, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	default:
		return North, fmt.Errorf("platform: unknown direction %q", s)
	}
}
