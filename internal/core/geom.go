// Package core provides fundamental types and utilities shared by the runner
// engine and its front-ends. It has no external dependencies (especially no
// Bubble Tea) so the simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in grid cells.
type Rect struct {
	X, Y int // Origin (left edge, lower edge in engine space)
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the y-coordinate one past the far vertical edge.
func (r Rect) Top() int {
	return r.Y + r.H
}

// Intersects reports whether both axes overlap strictly.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Top() &&
		r.Top() > other.Y
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
