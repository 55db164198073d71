package world

import (
	"math"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// Player is the controllable hedgehog.
//
// Invariants: ChargingSpinDash implies Rolling; a dead player only integrates
// gravity. Dead is one-way; respawn builds a new Player.
type Player struct {
	Entity

	OnGround bool
	Lives    int
	Score    int
	Rings    int

	Invulnerable float64 // Seconds left, never negative
	HurtLock     float64 // Seconds left, never negative
	Dead         bool

	ChargingSpinDash bool
	Rolling          bool
	SpinDashCharge   float64 // 0..1
	Facing           float64 // -1 or 1; a held direction aims the dash while charging

	// Previous-tick key state for edge detection.
	PrevJump   bool
	PrevCrouch bool

	Tuning PlayerTuning
}

// NewPlayer creates a player at pos with zero velocity, facing right.
func NewPlayer(pos physics.Vec2, lives, score int, t PlayerTuning) *Player {
	return &Player{
		Entity: newEntity(pos, physics.V(t.Width, t.Height)),
		Lives:  lives,
		Score:  score,
		Facing: 1,
		Tuning: t,
	}
}

// LaunchSpeed returns the spin-dash launch magnitude for a charge level.
// Charge is clamped to [0, 1].
func (t PlayerTuning) LaunchSpeed(charge float64) float64 {
	charge = math.Max(0, math.Min(1, charge))
	return t.SpinDashBaseLaunch + t.SpinDashChargeScale*charge
}

// ApplyInput runs the ability state machine for one tick.
// It is a no-op while dead.
func (p *Player) ApplyInput(dt float64, in Input) {
	if p.Dead {
		return
	}
	t := &p.Tuning

	jumpPressed := in.Jump && !p.PrevJump
	crouchReleased := !in.Crouch && p.PrevCrouch
	p.PrevJump = in.Jump
	p.PrevCrouch = in.Crouch

	if p.OnGround && in.Crouch {
		if p.ChargingSpinDash || math.Abs(p.Vel.X) < t.SpinDashStopThreshold {
			p.ChargingSpinDash = true
			p.Rolling = true
			p.Vel.X = 0
			if jumpPressed {
				p.SpinDashCharge = math.Max(0, math.Min(1, p.SpinDashCharge+t.SpinDashChargeStep))
			}
			if in.Left != in.Right {
				if in.Left {
					p.Facing = -1
				} else {
					p.Facing = 1
				}
			}
		} else {
			p.Rolling = true
		}
	} else {
		if p.ChargingSpinDash && crouchReleased {
			p.Vel.X = p.Facing * t.LaunchSpeed(p.SpinDashCharge)
			p.ChargingSpinDash = false
			p.SpinDashCharge = 0
		}
		if !in.Crouch {
			p.Rolling = false
		}
		if !p.OnGround {
			p.ChargingSpinDash = false
			p.SpinDashCharge = 0
		}
	}

	if p.ChargingSpinDash {
		return
	}

	p.applyLateral(dt, in)

	if p.Vel.X != 0 {
		p.Facing = physics.Sign(p.Vel.X)
	}

	if jumpPressed && p.OnGround {
		p.Vel.Y = -t.JumpSpeed
		p.OnGround = false
	}
}

func (p *Player) applyLateral(dt float64, in Input) {
	t := &p.Tuning

	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	if p.Rolling && t.RollBlocksControl {
		dir = 0
	}

	vx := p.Vel.X
	if dir != 0 {
		switch {
		case !t.KeepOverspeed:
			vx = math.Max(-t.MaxRunSpeed, math.Min(vx+dir*t.Accel*dt, t.MaxRunSpeed))
		case dir*vx < t.MaxRunSpeed:
			vx += dir * t.Accel * dt
			if dir > 0 {
				vx = math.Min(vx, t.MaxRunSpeed)
			} else {
				vx = math.Max(vx, -t.MaxRunSpeed)
			}
		}
	} else {
		friction := t.Friction
		if !p.OnGround {
			friction *= t.AirFrictionFactor
		}
		vx = physics.MoveToward(vx, 0, friction*dt)
	}

	if in.Left && vx > 0 {
		vx = physics.MoveToward(vx, 0, t.Decel*dt)
	}
	if in.Right && vx < 0 {
		vx = physics.MoveToward(vx, 0, t.Decel*dt)
	}
	p.Vel.X = vx
}

// ApplyGravity integrates gravity into vertical velocity. The fall cap only
// applies while alive.
func (p *Player) ApplyGravity(dt float64) {
	p.Vel.Y += p.Tuning.Gravity * dt
	if !p.Dead && p.Vel.Y > p.Tuning.MaxFallSpeed {
		p.Vel.Y = p.Tuning.MaxFallSpeed
	}
}

// TickTimers counts down invulnerability and hurt-lock, clamping at zero.
func (p *Player) TickTimers(dt float64) {
	p.Invulnerable = math.Max(0, p.Invulnerable-dt)
	p.HurtLock = math.Max(0, p.HurtLock-dt)
}

// IsInvulnerable reports whether damage is currently ignored.
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// IsHurtLocked reports whether pickups are currently suppressed.
func (p *Player) IsHurtLocked() bool {
	return p.HurtLock > 0
}

// Hurt spends all rings and knocks the player away from a hazard at hazardX.
// It returns the number of rings spent.
func (p *Player) Hurt(hazardX float64, h HazardTuning) int {
	spent := p.Rings
	p.Rings = 0

	dir := 1.0
	if p.Center().X < hazardX {
		dir = -1
	}
	p.Vel = physics.V(dir*h.KnockbackX, h.KnockbackY)
	p.OnGround = false
	p.ChargingSpinDash = false
	p.Rolling = false
	p.SpinDashCharge = 0
	p.Invulnerable = h.HitInvulnerability
	p.HurtLock = h.HurtLock
	return spent
}

// Kill switches the player into the death animation.
func (p *Player) Kill() {
	p.Dead = true
	p.Vel = physics.V(0, p.Tuning.DeathPopSpeed)
	p.OnGround = false
	p.ChargingSpinDash = false
	p.Rolling = false
	p.SpinDashCharge = 0
	p.Invulnerable = p.Tuning.DeathInvulnerability
}
