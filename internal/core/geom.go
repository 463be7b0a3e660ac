// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It contains no external dependencies (especially
// no Bubble Tea) so the simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in world units.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// OverlapsX reports whether the horizontal extents of r and other overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if !r.OverlapsX(other) {
		return false
	}
	return r.Bottom() > other.Y && r.Y < other.Bottom()
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Cell converts a world coordinate to a terminal cell index given the
// number of world units per cell.
func Cell(v, unitsPerCell float64) int {
	if unitsPerCell <= 0 {
		return int(math.Floor(v))
	}
	return int(math.Floor(v / unitsPerCell))
}

// Cells converts a world length to a cell count, never less than one.
func Cells(length, unitsPerCell float64) int {
	if unitsPerCell <= 0 {
		return Max(1, int(math.Round(length)))
	}
	return Max(1, int(math.Round(length/unitsPerCell)))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
