// Package world implements the platformer simulation: player kinematics,
// patrol enemies and the boss, ring-burst particles, level content, the
// camera, and the per-tick orchestration that ties them together.
//
// The package is deterministic. It never reads a clock and draws randomness
// only from the RandomSource supplied in Config.
package world

import "github.com/vovakirdan/turbo-hedgehog/internal/physics"

// Entity is the shape shared by every simulated object.
// Inactive entities take no part in update, collision or render.
type Entity struct {
	Pos    physics.Vec2
	Vel    physics.Vec2
	Size   physics.Vec2
	Active bool
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() physics.AABB {
	return physics.AABB{Pos: e.Pos, Size: e.Size}
}

// Center returns the center of the entity's bounding box.
func (e *Entity) Center() physics.Vec2 {
	return e.Bounds().Center()
}

func newEntity(pos, size physics.Vec2) Entity {
	return Entity{Pos: pos, Size: size, Active: true}
}

// PlatformKind tags a platform for rendering. Both kinds collide identically.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
)

// String returns the kind name.
func (k PlatformKind) String() string {
	if k == PlatformGround {
		return "Ground"
	}
	return "Floating"
}

// Platform is a solid rectangle.
type Platform struct {
	Entity
	Kind PlatformKind
}

// NewPlatform creates a solid platform.
func NewPlatform(pos, size physics.Vec2, kind PlatformKind) Platform {
	return Platform{Entity: newEntity(pos, size), Kind: kind}
}

// RingSize is the side of a level ring's box.
const RingSize = 16

// Ring is a level collectible. Picked-up rings stay inactive until the level reloads.
type Ring struct {
	Entity
	Value int
}

// NewRing creates a ring at pos worth value points.
func NewRing(pos physics.Vec2, value int) Ring {
	return Ring{Entity: newEntity(pos, physics.V(RingSize, RingSize)), Value: value}
}

// SpeedPad pushes the player horizontally while overlapped.
type SpeedPad struct {
	Pos   physics.Vec2
	Size  physics.Vec2
	PushX float64 // Horizontal acceleration while overlapped
	PushY float64 // Upper bound on vertical velocity (more negative is faster upward)
}

// Bounds returns the pad's box.
func (p SpeedPad) Bounds() physics.AABB {
	return physics.AABB{Pos: p.Pos, Size: p.Size}
}

// FinishFlag marks the level exit.
type FinishFlag struct {
	Pos  physics.Vec2
	Size physics.Vec2
}

// NewFinishFlag creates a 24x64 finish marker.
func NewFinishFlag(pos physics.Vec2) FinishFlag {
	return FinishFlag{Pos: pos, Size: physics.V(24, 64)}
}

// Bounds returns the flag's box.
func (f FinishFlag) Bounds() physics.AABB {
	return physics.AABB{Pos: f.Pos, Size: f.Size}
}

// Spring launches the player upward on contact.
type Spring struct {
	Entity
}

// NewSpring creates a 28x18 spring.
func NewSpring(pos physics.Vec2) Spring {
	return Spring{Entity: newEntity(pos, physics.V(28, 18))}
}

// MonitorKind selects what a broken monitor grants.
type MonitorKind int

const (
	MonitorRings10 MonitorKind = iota
	MonitorOneUp
)

// String returns the kind name.
func (k MonitorKind) String() string {
	if k == MonitorOneUp {
		return "OneUp"
	}
	return "Rings10"
}

// Monitor is a breakable item box.
type Monitor struct {
	Entity
	Kind MonitorKind
}

// NewMonitor creates a 26x26 monitor.
func NewMonitor(pos physics.Vec2, kind MonitorKind) Monitor {
	return Monitor{Entity: newEntity(pos, physics.V(26, 26)), Kind: kind}
}
