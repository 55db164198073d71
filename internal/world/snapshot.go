package world

import (
	"math"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// PlayerView is the render-facing copy of the player.
type PlayerView struct {
	Pos          physics.Vec2
	Vel          physics.Vec2
	Size         physics.Vec2
	Score        int
	Lives        int
	Rings        int
	OnGround     bool
	Rolling      bool
	Charging     bool
	Invulnerable bool
	Dead         bool
	Charge       float64
	Facing       float64
}

// BossView is the render-facing copy of the boss.
type BossView struct {
	Pos      physics.Vec2
	Size     physics.Vec2
	HP       int
	Defeated bool
}

// Snapshot is a read-only copy of everything a renderer needs.
// Collections contain active entities only.
type Snapshot struct {
	Tick   uint64
	State  State
	Level  LevelID
	Camera physics.Vec2
	ViewW  float64
	ViewH  float64

	Player PlayerView

	Platforms []Platform
	Ramps     []physics.Ramp
	Pads      []SpeedPad
	Rings     []Ring
	Particles []RingParticle
	Enemies   []Enemy
	Springs   []Spring
	Monitors  []Monitor

	Finish         FinishFlag
	FinishUnlocked bool
	Boss           *BossView
}

// Snapshot returns a copy of the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.player
	snap := Snapshot{
		Tick:   w.tick,
		State:  w.state,
		Level:  w.level,
		Camera: w.camera.Pos,
		ViewW:  w.camera.ViewW,
		ViewH:  w.camera.ViewH,
		Player: PlayerView{
			Pos:          p.Pos,
			Vel:          p.Vel,
			Size:         p.Size,
			Score:        p.Score,
			Lives:        p.Lives,
			Rings:        p.Rings,
			OnGround:     p.OnGround,
			Rolling:      p.Rolling,
			Charging:     p.ChargingSpinDash,
			Invulnerable: p.IsInvulnerable(),
			Dead:         p.Dead,
			Charge:       p.SpinDashCharge,
			Facing:       p.Facing,
		},
		Platforms:      activeOnly(w.platforms, func(v Platform) bool { return v.Active }),
		Ramps:          append([]physics.Ramp(nil), w.ramps...),
		Pads:           append([]SpeedPad(nil), w.pads...),
		Rings:          activeOnly(w.rings, func(v Ring) bool { return v.Active }),
		Particles:      activeOnly(w.particles, func(v RingParticle) bool { return v.Active }),
		Enemies:        activeOnly(w.enemies, func(v Enemy) bool { return v.Active }),
		Springs:        activeOnly(w.springs, func(v Spring) bool { return v.Active }),
		Monitors:       activeOnly(w.monitors, func(v Monitor) bool { return v.Active }),
		Finish:         w.finish,
		FinishUnlocked: w.finishUnlocked,
	}
	if w.boss != nil && w.boss.Active {
		snap.Boss = &BossView{
			Pos:      w.boss.Pos,
			Size:     w.boss.Size,
			HP:       w.boss.HP,
			Defeated: w.boss.Defeated(),
		}
	}
	return snap
}

func activeOnly[T any](items []T, active func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if active(it) {
			out = append(out, it)
		}
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = hashVec(h, snap.Camera)

	pv := snap.Player
	h = hashVec(h, pv.Pos)
	h = hashVec(h, pv.Vel)
	h = h*31 + uint64(pv.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(pv.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(pv.Rings) //#nosec G115 -- hash computation
	h = h*31 + hashBool(pv.Rolling) + 2*hashBool(pv.Charging) + 4*hashBool(pv.Dead)
	h = h*31 + math.Float64bits(pv.Charge)

	for _, r := range snap.Rings {
		h = hashVec(h, r.Pos)
	}
	for _, rp := range snap.Particles {
		h = hashVec(h, rp.Pos)
		h = hashVec(h, rp.Vel)
	}
	for _, e := range snap.Enemies {
		h = hashVec(h, e.Pos)
	}
	for _, m := range snap.Monitors {
		h = hashVec(h, m.Pos)
	}
	if snap.Boss != nil {
		h = hashVec(h, snap.Boss.Pos)
		h = h*31 + uint64(snap.Boss.HP) //#nosec G115 -- hash computation
	}
	h = h*31 + hashBool(snap.FinishUnlocked)
	return h
}

func hashVec(h uint64, v physics.Vec2) uint64 {
	h = h*31 + math.Float64bits(v.X)
	return h*31 + math.Float64bits(v.Y)
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
