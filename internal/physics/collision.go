package physics

import "math"

// HitSide indicates which side of the solid box the moving box hit.
type HitSide int

const (
	HitNone   HitSide = iota
	HitTop            // Moving box landed on top of the solid (pushed up)
	HitBottom         // Moving box struck the underside of the solid (pushed down)
	HitLeft           // Moving box struck the solid's left face (pushed left)
	HitRight          // Moving box struck the solid's right face (pushed right)
)

// String returns a human-readable name for the side.
func (s HitSide) String() string {
	switch s {
	case HitNone:
		return "None"
	case HitTop:
		return "Top"
	case HitBottom:
		return "Bottom"
	case HitLeft:
		return "Left"
	case HitRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the hit separates along the X axis.
func (s HitSide) Horizontal() bool {
	return s == HitLeft || s == HitRight
}

// Hit is the result of resolving one box against another.
type Hit struct {
	Side       HitSide
	Correction Vec2 // Displacement to apply to the moving box
}

// Resolve computes the minimum-translation correction that separates moving
// from solid. Non-overlapping boxes yield HitNone and a zero correction.
//
// Of the four directional separations the smaller axis wins, X on a tie;
// inside an axis left beats right and up beats down on a tie.
func Resolve(moving, solid AABB) Hit {
	if !moving.Intersects(solid) {
		return Hit{Side: HitNone}
	}

	moveLeft := solid.Left() - moving.Right()
	moveRight := solid.Right() - moving.Left()
	moveUp := solid.Top() - moving.Bottom()
	moveDown := solid.Bottom() - moving.Top()

	absX := math.Min(math.Abs(moveLeft), math.Abs(moveRight))
	absY := math.Min(math.Abs(moveUp), math.Abs(moveDown))

	if absX <= absY {
		if math.Abs(moveLeft) <= math.Abs(moveRight) {
			return Hit{Side: HitLeft, Correction: Vec2{X: moveLeft}}
		}
		return Hit{Side: HitRight, Correction: Vec2{X: moveRight}}
	}

	if math.Abs(moveUp) <= math.Abs(moveDown) {
		return Hit{Side: HitTop, Correction: Vec2{Y: moveUp}}
	}
	return Hit{Side: HitBottom, Correction: Vec2{Y: moveDown}}
}
