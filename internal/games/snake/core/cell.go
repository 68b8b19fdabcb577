package core

// Cell is the occupancy state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Snake
	Food
)

// String returns the string representation of a cell state.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Snake:
		return "snake"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Hazard reports whether entering the cell is fatal.
func (c Cell) Hazard() bool {
	return c == Wall || c == Snake
}

// Walkable reports whether the search may route through the cell.
func (c Cell) Walkable() bool {
	return c == Empty || c == Food
}
