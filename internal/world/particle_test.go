package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRingBurstCount(t *testing.T) {
	b := NewRingBurst(constSource(0.5), DefaultTuning().Burst)

	tests := []struct {
		rings    int
		expected int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{5, 5},
		{20, 20},
		{57, 20},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, b.Count(tc.rings), "Count(%d)", tc.rings)
		assert.Len(t, b.Spawn(nil, physics.V(0, 0), tc.rings), tc.expected, "Spawn(%d)", tc.rings)
	}
}

func TestRingBurstRadialLayout(t *testing.T) {
	bt := DefaultTuning().Burst
	b := NewRingBurst(constSource(0.5), bt)

	center := physics.V(100, 200)
	particles := b.Spawn(nil, center, 4)
	require.Len(t, particles, 4)

	// A centered random source removes jitter and picks the middle speed.
	speed := (bt.MinSpeed + bt.MaxSpeed) / 2
	expected := []physics.Vec2{
		{X: speed, Y: bt.UpwardBias},
		{X: 0, Y: speed + bt.UpwardBias},
		{X: -speed, Y: bt.UpwardBias},
		{X: 0, Y: -speed + bt.UpwardBias},
	}
	for i, rp := range particles {
		assert.InDelta(t, expected[i].X, rp.Vel.X, 1e-9, "particle %d vx", i)
		assert.InDelta(t, expected[i].Y, rp.Vel.Y, 1e-9, "particle %d vy", i)
		assert.Equal(t, center, rp.Center())
		assert.Equal(t, bt.Life, rp.Life)
		assert.True(t, rp.Active)
	}
}

func TestRingBurstSpeedRange(t *testing.T) {
	bt := DefaultTuning().Burst
	b := NewRingBurst(rand.New(rand.NewSource(12345)), bt)

	for _, rp := range b.Spawn(nil, physics.V(0, 0), 20) {
		v := physics.V(rp.Vel.X, rp.Vel.Y-bt.UpwardBias)
		speed := math.Hypot(v.X, v.Y)
		assert.GreaterOrEqual(t, speed, bt.MinSpeed-1e-9)
		assert.Less(t, speed, bt.MaxSpeed)
	}
}

func TestRingBurstDeterministicWithSeed(t *testing.T) {
	bt := DefaultTuning().Burst
	a := NewRingBurst(NewSimpleRNG(7), bt).Spawn(nil, physics.V(50, 50), 12)
	b := NewRingBurst(NewSimpleRNG(7), bt).Spawn(nil, physics.V(50, 50), 12)
	assert.Equal(t, a, b)
}

func TestRingParticleBouncesAndSettles(t *testing.T) {
	bt := DefaultTuning().Burst
	floor := []Platform{NewPlatform(physics.V(0, 100), physics.V(500, 50), PlatformGround)}

	rp := RingParticle{Entity: newEntity(physics.V(100, 80), physics.V(bt.Size, bt.Size)), Life: bt.Life}
	rp.Vel = physics.V(100, 400)

	rp.Update(testDT, floor, bt)
	assert.InDelta(t, 100-bt.Size, rp.Pos.Y, 1e-9, "resting on the floor")
	assert.Less(t, rp.Vel.Y, 0.0, "bounced upward")
	assert.InDelta(t, 100*bt.FrictionX, rp.Vel.X, 1e-9)

	for range 120 {
		rp.Update(testDT, floor, bt)
		require.LessOrEqual(t, rp.Bounds().Bottom(), 100+1e-9)
	}
	assert.Equal(t, 0.0, rp.Vel.Y, "small bounces snap to rest")
}

func TestRingParticleWallAndCeiling(t *testing.T) {
	bt := DefaultTuning().Burst
	wall := []Platform{NewPlatform(physics.V(100, 0), physics.V(20, 200), PlatformGround)}

	rp := RingParticle{Entity: newEntity(physics.V(84, 100), physics.V(bt.Size, bt.Size)), Life: bt.Life}
	rp.Vel = physics.V(300, 0)
	rp.Update(testDT, wall, bt)
	assert.Equal(t, 0.0, rp.Vel.X)
	assert.Equal(t, 100-bt.Size, rp.Pos.X)

	ceiling := []Platform{NewPlatform(physics.V(0, 0), physics.V(500, 20), PlatformGround)}
	up := RingParticle{Entity: newEntity(physics.V(200, 22), physics.V(bt.Size, bt.Size)), Life: bt.Life}
	up.Vel = physics.V(0, -400)
	up.Update(testDT, ceiling, bt)
	assert.Equal(t, 0.0, up.Vel.Y)
	assert.Equal(t, 20.0, up.Pos.Y)
}

func TestRingParticleExpires(t *testing.T) {
	bt := DefaultTuning().Burst
	rp := RingParticle{Entity: newEntity(physics.V(0, 0), physics.V(bt.Size, bt.Size)), Life: 0.03}
	rp.Update(0.02, nil, bt)
	assert.True(t, rp.Active)
	rp.Update(0.02, nil, bt)
	assert.False(t, rp.Active)
}

func TestSimpleRNGRange(t *testing.T) {
	r := NewSimpleRNG(0)
	for range 1000 {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
