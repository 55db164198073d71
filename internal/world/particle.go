package world

import (
	"math"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// RandomSource supplies uniform floats in [0, 1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator (64-bit LCG).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the generator's internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// RingParticle is a ring knocked loose by damage. It bounces on platforms
// and expires after its lifetime.
type RingParticle struct {
	Entity
	Life float64
}

// Update advances lifetime and physics. Expired particles become inactive.
func (rp *RingParticle) Update(dt float64, platforms []Platform, t BurstTuning) {
	rp.Life -= dt
	if rp.Life <= 0 {
		rp.Active = false
		return
	}

	rp.Vel.Y += t.Gravity * dt

	rp.Pos.X += rp.Vel.X * dt
	for i := range platforms {
		if !platforms[i].Active {
			continue
		}
		hit := physics.Resolve(rp.Bounds(), platforms[i].Bounds())
		if hit.Side == physics.HitNone {
			continue
		}
		rp.Pos = rp.Pos.Add(hit.Correction)
		if hit.Side.Horizontal() {
			rp.Vel.X = 0
		}
	}

	rp.Pos.Y += rp.Vel.Y * dt
	for i := range platforms {
		if !platforms[i].Active {
			continue
		}
		hit := physics.Resolve(rp.Bounds(), platforms[i].Bounds())
		if hit.Side == physics.HitNone {
			continue
		}
		rp.Pos = rp.Pos.Add(hit.Correction)
		switch hit.Side {
		case physics.HitTop:
			rp.Vel.Y = -rp.Vel.Y * t.BounceDamping
			rp.Vel.X *= t.FrictionX
			if math.Abs(rp.Vel.Y) < t.RestThreshold {
				rp.Vel.Y = 0
			}
		case physics.HitBottom:
			rp.Vel.Y = 0
		case physics.HitLeft, physics.HitRight:
			rp.Vel.X = 0
		}
	}
}

// RingBurst spawns particles in a full circle around center. Each particle
// takes an evenly spaced slot angle plus random jitter, a random speed in
// [MinSpeed, MaxSpeed), and an upward bias on its vertical velocity.
type RingBurst struct {
	rng    RandomSource
	tuning BurstTuning
}

// NewRingBurst creates a burst spawner drawing from rng.
func NewRingBurst(rng RandomSource, t BurstTuning) *RingBurst {
	return &RingBurst{rng: rng, tuning: t}
}

// Count returns how many particles spending rings produces.
func (b *RingBurst) Count(rings int) int {
	if rings <= 0 {
		return 0
	}
	return min(rings, b.tuning.Max)
}

// Spawn appends Count(rings) particles to dst and returns it.
func (b *RingBurst) Spawn(dst []RingParticle, center physics.Vec2, rings int) []RingParticle {
	n := b.Count(rings)
	size := physics.V(b.tuning.Size, b.tuning.Size)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + (b.random()-0.5)*b.tuning.Jitter
		speed := b.randomRange(b.tuning.MinSpeed, b.tuning.MaxSpeed)

		rp := RingParticle{
			Entity: newEntity(center.Sub(size.Half()), size),
			Life:   b.tuning.Life,
		}
		rp.Vel = physics.V(math.Cos(angle)*speed, math.Sin(angle)*speed+b.tuning.UpwardBias)
		dst = append(dst, rp)
	}
	return dst
}

func (b *RingBurst) random() float64 {
	return b.rng.Float64()
}

func (b *RingBurst) randomRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + b.random()*(hi-lo)
}
