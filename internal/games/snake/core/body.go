package core

// InitialLength is the number of segments a freshly spawned body has.
const InitialLength = 3

// Body is the snake: an ordered run of cells, head first.
type Body struct {
	cells       []Coord // Head at index 0
	heading     Dir
	lastHeading Dir // Heading committed by the previous Step
	target      int // Length the body trims down to after each Step
}

// NewBody creates a body from head-first cells. The cells are not marked in
// any grid; use Place for that.
func NewBody(cells []Coord, heading Dir) *Body {
	if len(cells) == 0 {
		panic("core: body needs at least one cell")
	}
	b := &Body{
		cells:       make([]Coord, len(cells)),
		heading:     heading,
		lastHeading: heading,
		target:      len(cells),
	}
	copy(b.cells, cells)
	return b
}

// SpawnBody creates the initial three-cell body in the middle of g, heading
// East, and marks it in the grid.
func SpawnBody(g *Grid) *Body {
	hx, hy := g.Width()/2, g.Height()/2
	cells := make([]Coord, InitialLength)
	for i := range cells {
		cells[i] = g.Normalize(C(hx-i, hy))
	}
	b := NewBody(cells, East)
	b.Place(g)
	return b
}

// Place marks every body cell as snake in g.
func (b *Body) Place(g *Grid) {
	for _, c := range b.cells {
		g.Occupy(c)
	}
}

// Head returns the head cell.
func (b *Body) Head() Coord {
	b.mustNotBeEmpty()
	return b.cells[0]
}

// TailEnd returns the last cell of the body.
func (b *Body) TailEnd() Coord {
	b.mustNotBeEmpty()
	return b.cells[len(b.cells)-1]
}

func (b *Body) mustNotBeEmpty() {
	if len(b.cells) == 0 {
		panic("core: zero length body")
	}
}

// Cells returns a copy of the body cells, head first.
func (b *Body) Cells() []Coord {
	out := make([]Coord, len(b.cells))
	copy(out, b.cells)
	return out
}

// Len returns the current number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Target returns the length the body grows toward.
func (b *Body) Target() int {
	return b.target
}

// Heading returns the current heading.
func (b *Body) Heading() Dir {
	return b.heading
}

// LastHeading returns the heading committed by the last Step.
func (b *Body) LastHeading() Dir {
	return b.lastHeading
}

// PeekNext returns the cell the head would enter moving in d.
func (b *Body) PeekNext(g *Grid, d Dir) Coord {
	return g.Normalize(b.Head().Step(d))
}

// Peek returns the cell the head would enter on the current heading.
func (b *Body) Peek(g *Grid) Coord {
	return b.PeekNext(g, b.heading)
}

// Turn sets the heading. Validity is the caller's concern.
func (b *Body) Turn(d Dir) {
	b.heading = d
}

// TurnLeft rotates the heading 90° counter-clockwise.
func (b *Body) TurnLeft() {
	b.heading = b.heading.Left()
}

// TurnRight rotates the heading 90° clockwise.
func (b *Body) TurnRight() {
	b.heading = b.heading.Right()
}

// WouldReverse reports whether d points straight back along the last
// committed heading.
func (b *Body) WouldReverse(d Dir) bool {
	return d == b.lastHeading.Opposite()
}

// Grow extends the target length by one.
func (b *Body) Grow() {
	b.target++
}

// Step moves the head one cell along the current heading, marking it in g,
// then frees tail cells until the body is back at its target length.
func (b *Body) Step(g *Grid) {
	next := b.Peek(g)
	b.cells = append([]Coord{next}, b.cells...)
	g.Occupy(next)

	for len(b.cells) > b.target {
		last := len(b.cells) - 1
		g.Free(b.cells[last])
		b.cells = b.cells[:last]
	}

	b.lastHeading = b.heading
}
