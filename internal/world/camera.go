package world

import "github.com/vovakirdan/turbo-hedgehog/internal/physics"

// Camera tracks the view offset into the level.
type Camera struct {
	Pos    physics.Vec2
	ViewW  float64
	ViewH  float64
	Frozen bool
}

// SetViewport updates the view size. Renderers call this when their output resizes.
func (c *Camera) SetViewport(w, h float64) {
	c.ViewW = w
	c.ViewH = h
}

// Follow centers the view on target. The offset never goes negative.
// A frozen camera ignores Follow.
func (c *Camera) Follow(target physics.Vec2) {
	if c.Frozen {
		return
	}
	c.Pos = physics.V(max(0, target.X-c.ViewW/2), max(0, target.Y-c.ViewH/2))
}

// Freeze stops the camera from following.
func (c *Camera) Freeze() { c.Frozen = true }

// Unfreeze resumes following.
func (c *Camera) Unfreeze() { c.Frozen = false }

// Bottom returns the world Y of the view's lower edge.
func (c *Camera) Bottom() float64 {
	return c.Pos.Y + c.ViewH
}
