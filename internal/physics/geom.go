// Package physics provides the float geometry used by the platformer
// simulation: 2D vectors, axis-aligned boxes, the minimum-translation
// collision resolver, and sloped ramp surfaces.
// Like core, it has no external dependencies so it stays pure and testable.
package physics

import "math"

// Vec2 is a 2D vector in world units (pixels). Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Half returns v / 2.
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// AABB is an axis-aligned bounding box described by its top-left corner and size.
type AABB struct {
	Pos  Vec2
	Size Vec2
}

// Box creates an AABB from position and size.
func Box(pos, size Vec2) AABB {
	return AABB{Pos: pos, Size: size}
}

// Left returns the x-coordinate of the left edge.
func (b AABB) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 { return b.Pos.X + b.Size.X }

// Top returns the y-coordinate of the top edge.
func (b AABB) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Center returns the center point of the box.
func (b AABB) Center() Vec2 {
	return b.Pos.Add(b.Size.Half())
}

// Translate returns the box moved by d.
func (b AABB) Translate(d Vec2) AABB {
	return AABB{Pos: b.Pos.Add(d), Size: b.Size}
}

// Intersects returns true if the boxes overlap.
// Touching edges do not count as overlap.
func (b AABB) Intersects(o AABB) bool {
	if b.Right() <= o.Left() || b.Left() >= o.Right() {
		return false
	}
	if b.Bottom() <= o.Top() || b.Top() >= o.Bottom() {
		return false
	}
	return true
}

// ContainsPoint returns true if p lies inside the box (right/bottom exclusive).
func (b AABB) ContainsPoint(p Vec2) bool {
	return p.X >= b.Left() && p.X < b.Right() && p.Y >= b.Top() && p.Y < b.Bottom()
}

// MoveToward moves value toward target by at most maxDelta without overshooting.
func MoveToward(value, target, maxDelta float64) float64 {
	if value < target {
		return math.Min(value+maxDelta, target)
	}
	return math.Max(value-maxDelta, target)
}

// Sign returns -1, 0, or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
