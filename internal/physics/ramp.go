package physics

// SlopeAccelMagnitude is the along-slope horizontal acceleration (px/s²)
// applied while standing on a ramp.
const SlopeAccelMagnitude = 840.0

// Ramp is a sloped surface defined as Y = f(x) over [Start.X, Start.X+Width].
// It is not a box collider; the world snaps bodies onto its surface.
type Ramp struct {
	Start     Vec2    // Bottom end of the slope's left edge; Start.Y is the low surface height
	Width     float64 // Horizontal span
	Height    float64 // Rise between the low and high end
	Ascending bool    // True when the surface rises to the right
}

// NewAscendingRamp creates a ramp that rises to the right.
func NewAscendingRamp(start Vec2, width, height float64) Ramp {
	return Ramp{Start: start, Width: width, Height: height, Ascending: true}
}

// NewDescendingRamp creates a ramp that falls to the right.
func NewDescendingRamp(start Vec2, width, height float64) Ramp {
	return Ramp{Start: start, Width: width, Height: height, Ascending: false}
}

// ContainsX reports whether x lies within the ramp's horizontal span.
// Degenerate ramps contain nothing.
func (r Ramp) ContainsX(x float64) bool {
	if r.Width <= 0 {
		return false
	}
	return x >= r.Start.X && x <= r.Start.X+r.Width
}

// SurfaceY returns the surface height at x. Smaller Y is higher on screen.
func (r Ramp) SurfaceY(x float64) float64 {
	if r.Width <= 0 {
		return r.Start.Y
	}
	t := (x - r.Start.X) / r.Width
	if r.Ascending {
		return r.Start.Y - t*r.Height
	}
	return r.Start.Y - r.Height + t*r.Height
}

// SlopeAccel returns the horizontal acceleration biasing momentum downhill:
// negative on ascending ramps, positive on descending ones.
func (r Ramp) SlopeAccel() float64 {
	if r.Ascending {
		return -SlopeAccelMagnitude
	}
	return SlopeAccelMagnitude
}

// Bounds returns the box enclosing the ramp, useful for culling and rendering.
func (r Ramp) Bounds() AABB {
	return AABB{
		Pos:  Vec2{X: r.Start.X, Y: r.Start.Y - r.Height},
		Size: Vec2{X: r.Width, Y: r.Height},
	}
}
