// Package core provides the terminal drawing surface shared by the game and
// the platform layer. It has no Bubble Tea dependency so game rendering stays
// testable without a terminal.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r. A rectangle larger
// than r is pinned to r's top-left corner.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + Clamp((r.W-w)/2, 0, r.W),
		Y: r.Y + Clamp((r.H-h)/2, 0, r.H),
		W: w,
		H: h,
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
