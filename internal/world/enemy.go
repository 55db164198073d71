package world

import (
	"math"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// Enemy walks back and forth between LeftBound and RightBound.
type Enemy struct {
	Entity
	LeftBound  float64
	RightBound float64
}

// NewEnemy creates a patrol enemy moving right at t.Speed.
func NewEnemy(pos physics.Vec2, left, right float64, t EnemyTuning) Enemy {
	e := Enemy{
		Entity:     newEntity(pos, physics.V(t.Width, t.Height)),
		LeftBound:  left,
		RightBound: right,
	}
	e.Vel.X = t.Speed
	return e
}

// Update integrates position and reflects off the patrol bounds.
func (e *Enemy) Update(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	if e.Pos.X < e.LeftBound {
		e.Pos.X = e.LeftBound
		e.Vel.X = math.Abs(e.Vel.X)
	} else if e.Pos.X+e.Size.X > e.RightBound {
		e.Pos.X = e.RightBound - e.Size.X
		e.Vel.X = -math.Abs(e.Vel.X)
	}
}

// Boss is the Act 3 guardian. It paces its arena with a fast/slow duty cycle.
type Boss struct {
	Entity
	HP     int
	Timer  float64
	Facing float64

	tuning BossTuning
}

// NewBoss creates a boss at pos with full hit points, facing right.
func NewBoss(pos physics.Vec2, t BossTuning) *Boss {
	return &Boss{
		Entity: newEntity(pos, physics.V(t.Width, t.Height)),
		HP:     t.HP,
		Facing: 1,
		tuning: t,
	}
}

// Defeated reports whether the boss has no hit points left.
func (b *Boss) Defeated() bool {
	return b.HP <= 0
}

// Speed returns the current horizontal speed for the AI timer's phase.
func (b *Boss) Speed() float64 {
	if b.tuning.Period > 0 && math.Mod(b.Timer, b.tuning.Period) < b.tuning.FastPhase {
		return b.tuning.FastSpeed
	}
	return b.tuning.SlowSpeed
}

// Update advances the AI timer, moves the boss, and flips facing at the arena edges.
func (b *Boss) Update(dt float64) {
	b.Timer += dt
	b.Vel.X = b.Facing * b.Speed()
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X < b.tuning.ArenaLeft {
		b.Pos.X = b.tuning.ArenaLeft
		b.Facing = 1
	}
	if b.Pos.X > b.tuning.ArenaRight {
		b.Pos.X = b.tuning.ArenaRight
		b.Facing = -1
	}
}

// TakeHit removes one hit point. It does nothing once the boss is defeated.
func (b *Boss) TakeHit() {
	if b.HP <= 0 {
		return
	}
	b.HP--
}
