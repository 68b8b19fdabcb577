package core

import (
	"fmt"
	"sort"
)

// Rand is the random source used for food placement and autopilot tie-breaks.
// *math/rand.Rand satisfies it; tests supply deterministic stubs.
type Rand interface {
	Intn(n int) int
}

// Grid is the periodic game board. Edges wrap: leaving one side re-enters
// on the opposite side. Only non-empty cells are stored.
type Grid struct {
	w, h    int
	cells   map[Coord]Cell
	food    Coord
	hasFood bool
}

// NewGrid creates an empty grid. Panics on non-positive dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make(map[Coord]Cell),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// Normalize wraps c into [0,W)x[0,H).
func (g *Grid) Normalize(c Coord) Coord {
	return Coord{X: wrap(c.X, g.w), Y: wrap(c.Y, g.h)}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// At returns the state of the cell at c.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.Normalize(c)]
}

// Occupy marks c as snake.
func (g *Grid) Occupy(c Coord) {
	g.cells[g.Normalize(c)] = Snake
}

// Free clears c. Freeing an empty cell is a no-op.
func (g *Grid) Free(c Coord) {
	delete(g.cells, g.Normalize(c))
}

// SetWall marks c as a wall.
func (g *Grid) SetWall(c Coord) {
	g.cells[g.Normalize(c)] = Wall
}

// Delta returns the signed per-axis offset from a to b along the shorter
// way around each axis. Axes are shortened independently, so the pair is
// not a true torus geodesic when both wrap.
func (g *Grid) Delta(a, b Coord) (dx, dy int) {
	a, b = g.Normalize(a), g.Normalize(b)
	return shorten(b.X-a.X, g.w), shorten(b.Y-a.Y, g.h)
}

func shorten(d, n int) int {
	if 2*abs(d) > n {
		if d > 0 {
			return d - n
		}
		return d + n
	}
	return d
}

// Distance returns the periodic Manhattan distance between a and b.
func (g *Grid) Distance(a, b Coord) int {
	dx, dy := g.Delta(a, b)
	return abs(dx) + abs(dy)
}

// Neighbors returns the four cardinal neighbors of c, normalized,
// in Dirs order.
func (g *Grid) Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range Dirs {
		out[i] = g.Normalize(c.Step(d))
	}
	return out
}

// Surrounding returns the eight orthogonal and diagonal neighbors of c.
func (g *Grid) Surrounding(c Coord) [8]Coord {
	var out [8]Coord
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = g.Normalize(Coord{X: c.X + dx, Y: c.Y + dy})
			i++
		}
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	return g.w*g.h - len(g.cells)
}

// PlaceFood samples uniform random cells until an empty one is found, moves
// the food marker there and returns it. Panics if no empty cell exists;
// callers check for a full board first.
func (g *Grid) PlaceFood(rng Rand) Coord {
	if g.EmptyCount() == 0 {
		panic("core: cannot place food on a full grid")
	}

	var c Coord
	for {
		c = Coord{X: rng.Intn(g.w), Y: rng.Intn(g.h)}
		if g.At(c) == Empty {
			break
		}
	}

	g.RemoveFood()
	g.cells[c] = Food
	g.food = c
	g.hasFood = true
	return c
}

// Food returns the current food coordinate. Only meaningful if HasFood.
func (g *Grid) Food() Coord {
	return g.food
}

// HasFood reports whether a food cell is on the board.
func (g *Grid) HasFood() bool {
	return g.hasFood
}

// RemoveFood takes the food off the board. A cell that has already been
// overwritten (e.g. by the snake eating it) is left alone.
func (g *Grid) RemoveFood() {
	if !g.hasFood {
		return
	}
	if g.cells[g.food] == Food {
		delete(g.cells, g.food)
	}
	g.hasFood = false
}

// Walls returns all wall cells sorted by row then column.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for c, cell := range g.cells {
		if cell == Wall {
			walls = append(walls, c)
		}
	}
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].X < walls[j].X
	})
	return walls
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
