// Package core provides the board model and autopilot for the torus snake game.
// This package is UI-agnostic and deterministic given a random source.
package core

import "fmt"

// Coord represents a cell position on the board.
// X increases to the right, Y increases downward (screen coordinates).
// Coordinates are unbounded until a Grid normalizes them.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
// The result is not wrapped.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir is one of the four cardinal headings.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists all headings in clockwise order starting at North.
var Dirs = [4]Dir{North, East, South, West}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y, South increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Left returns the heading after a 90° counter-clockwise rotation.
func (d Dir) Left() Dir {
	return (d + 3) % 4
}

// Right returns the heading after a 90° clockwise rotation.
func (d Dir) Right() Dir {
	return (d + 1) % 4
}

// Vertical reports whether the heading is North or South.
func (d Dir) Vertical() bool {
	return d == North || d == South
}
