// Package core provides the platform-neutral surface shared by the game
// adapter and the frontends: a colored cell buffer, input actions, and
// runtime settings. It has no external dependencies so game logic stays
// testable without a terminal or window.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Projection maps world pixels onto a cell grid.
type Projection struct {
	OriginX, OriginY float64 // World position of cell (0, 0)
	CellW, CellH     float64 // World pixels per cell
}

// Cell returns the cell containing world point (x, y).
func (p Projection) Cell(x, y float64) (int, int) {
	return int(math.Floor((x - p.OriginX) / p.CellW)), int(math.Floor((y - p.OriginY) / p.CellH))
}

// Rect maps a world box to the cells it touches. Boxes smaller than a cell
// still cover at least one cell.
func (p Projection) Rect(x, y, w, h float64) Rect {
	x0, y0 := p.Cell(x, y)
	x1 := int(math.Ceil((x + w - p.OriginX) / p.CellW))
	y1 := int(math.Ceil((y + h - p.OriginY) / p.CellH))
	return Rect{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
