package world

import (
	"math"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// State is the top-level game state.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateLevelCompleted
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StateLevelCompleted:
		return "LevelCompleted"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Config configures a World. Zero fields fall back to defaults.
type Config struct {
	Tuning  Tuning       // Zero value means DefaultTuning()
	Catalog Catalog      // Nil means StandardCatalog
	Random  RandomSource // Nil means NewSimpleRNG(Seed)
	Seed    int64
	ViewW   float64 // Initial viewport; renderers update it with SetViewport
	ViewH   float64
}

// World owns all simulation state for one game. It is not safe for
// concurrent use; a single goroutine drives Update.
type World struct {
	state State
	level LevelID
	tick  uint64

	player *Player
	camera Camera

	platforms []Platform
	ramps     []physics.Ramp
	pads      []SpeedPad
	rings     []Ring
	enemies   []Enemy
	particles []RingParticle
	springs   []Spring
	monitors  []Monitor
	boss      *Boss
	finish    FinishFlag
	spawn     physics.Vec2

	finishUnlocked bool

	tuning  Tuning
	catalog Catalog
	burst   *RingBurst
	events  []Event
}

// NewWorld creates a world at the title screen with Act 1 loaded as backdrop.
func NewWorld(cfg Config) *World {
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = StandardCatalog{}
	}
	if cfg.Random == nil {
		cfg.Random = NewSimpleRNG(cfg.Seed)
	}
	if cfg.ViewW <= 0 || cfg.ViewH <= 0 {
		cfg.ViewW, cfg.ViewH = 960, 540
	}

	w := &World{
		state:   StateTitle,
		tuning:  cfg.Tuning,
		catalog: cfg.Catalog,
		burst:   NewRingBurst(cfg.Random, cfg.Tuning.Burst),
	}
	w.camera.SetViewport(cfg.ViewW, cfg.ViewH)
	w.player = NewPlayer(DefaultSpawn, cfg.Tuning.Level.StartLives, 0, cfg.Tuning.Player)
	_ = w.LoadLevel(Act1)
	return w
}

// NewGame resets lives and score, loads Act 1 and starts playing.
func (w *World) NewGame() error {
	w.player = NewPlayer(DefaultSpawn, w.tuning.Level.StartLives, 0, w.tuning.Player)
	err := w.LoadLevel(Act1)
	w.state = StatePlaying
	return err
}

// LoadLevel rebuilds all level content for id and respawns the player at the
// level's spawn point. Lives and score carry over; rings reset to zero.
//
// Invalid content is pruned and the validation error returned; the level
// remains playable.
func (w *World) LoadLevel(id LevelID) error {
	c := NewLevelContent(w.tuning)
	w.catalog.Build(id, c)
	err := c.Validate()
	if err != nil {
		c.prune()
	}

	w.level = id
	w.platforms = c.Platforms
	w.ramps = c.Ramps
	w.pads = c.Pads
	w.rings = c.Rings
	w.enemies = c.Enemies
	w.springs = c.Springs
	w.monitors = c.Monitors
	w.particles = w.particles[:0]
	w.boss = c.Boss
	w.finish = c.Finish
	w.spawn = c.Spawn
	w.finishUnlocked = w.boss == nil

	lives, score := w.tuning.Level.StartLives, 0
	if w.player != nil {
		lives, score = w.player.Lives, w.player.Score
	}
	w.player = NewPlayer(w.spawn, lives, score, w.tuning.Player)

	w.camera.Unfreeze()
	w.camera.Follow(w.player.Center())

	w.events = append(w.events, Event{Kind: EventLevelLoaded, Level: id, Pos: w.spawn, Err: err})
	return err
}

// SetViewport sets the camera's view size in world units.
func (w *World) SetViewport(width, height float64) {
	w.camera.SetViewport(width, height)
}

// State returns the current game state.
func (w *World) State() State { return w.state }

// Level returns the current act.
func (w *World) Level() LevelID { return w.level }

// FinishUnlocked reports whether touching the finish ends the level.
func (w *World) FinishUnlocked() bool { return w.finishUnlocked }

// Tuning returns the constants this world runs with.
func (w *World) Tuning() Tuning { return w.tuning }

// Events returns what happened during the last Update. The slice is reused
// by the next Update.
func (w *World) Events() []Event { return w.events }

// Update advances the simulation by dt seconds. dt is clamped to
// [0, Level.MaxDelta].
func (w *World) Update(dt float64, in Input) {
	w.events = w.events[:0]
	dt = math.Max(0, math.Min(dt, w.tuning.Level.MaxDelta))
	w.tick++

	if in.Restart {
		w.toTitle()
		return
	}
	switch w.state {
	case StateTitle:
		if !in.Advance {
			return
		}
		// The new game plays this tick.
		_ = w.NewGame()
	case StateLevelCompleted, StateGameOver:
		if in.Advance {
			w.toTitle()
		}
		return
	}

	p := w.player
	p.TickTimers(dt)

	if w.boss != nil && w.boss.Active && !w.boss.Defeated() {
		w.boss.Update(dt)
	}
	for i := range w.enemies {
		if w.enemies[i].Active {
			w.enemies[i].Update(dt)
		}
	}

	w.updateParticles(dt)

	if p.Dead {
		w.updateDeath(dt)
		return
	}

	p.ApplyInput(dt, in)
	p.ApplyGravity(dt)
	w.movePlayer(dt)
	w.attachRamps(dt)

	if p.Pos.Y > w.tuning.Level.WorldBottom {
		w.kill()
		return
	}

	w.applyPads(dt)
	if !p.IsHurtLocked() {
		w.collectPickups()
	}
	w.touchSprings()
	w.touchMonitors()
	w.touchEnemies()
	w.touchBoss()

	if w.finishUnlocked && !p.Dead && p.Bounds().Intersects(w.finish.Bounds()) {
		w.reachFinish()
		return
	}

	w.camera.Follow(p.Center())
}

func (w *World) toTitle() {
	w.state = StateTitle
	w.camera.Unfreeze()
}

func (w *World) updateParticles(dt float64) {
	for i := range w.particles {
		if w.particles[i].Active {
			w.particles[i].Update(dt, w.platforms, w.tuning.Burst)
		}
	}
	w.particles = filter(w.particles, func(rp RingParticle) bool { return rp.Active })
}

func (w *World) updateDeath(dt float64) {
	p := w.player
	p.ApplyGravity(dt)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Pos.Y <= w.camera.Bottom()+w.tuning.Level.DeathFallMargin {
		return
	}

	p.Lives--
	w.emit(EventLifeLost, p.Pos, p.Lives)
	if p.Lives <= 0 {
		w.state = StateGameOver
		w.camera.Unfreeze()
		w.emit(EventGameOver, p.Pos, p.Score)
		return
	}
	_ = w.LoadLevel(w.level)
}

func (w *World) movePlayer(dt float64) {
	p := w.player
	p.OnGround = false

	p.Pos.X += p.Vel.X * dt
	for i := range w.platforms {
		hit := physics.Resolve(p.Bounds(), w.platforms[i].Bounds())
		if hit.Side == physics.HitNone {
			continue
		}
		p.Pos = p.Pos.Add(hit.Correction)
		if hit.Side.Horizontal() {
			p.Vel.X = 0
		}
	}

	p.Pos.Y += p.Vel.Y * dt
	for i := range w.platforms {
		hit := physics.Resolve(p.Bounds(), w.platforms[i].Bounds())
		if hit.Side == physics.HitNone {
			continue
		}
		p.Pos = p.Pos.Add(hit.Correction)
		switch hit.Side {
		case physics.HitTop:
			p.Vel.Y = 0
			p.OnGround = true
		case physics.HitBottom:
			p.Vel.Y = 0
		}
	}
}

func (w *World) attachRamps(dt float64) {
	p := w.player
	if p.Vel.Y < 0 {
		return
	}
	cx := p.Center().X
	for _, r := range w.ramps {
		if !r.ContainsX(cx) {
			continue
		}
		surface := r.SurfaceY(cx)
		if math.Abs(p.Bounds().Bottom()-surface) > w.tuning.Level.RampTolerance {
			continue
		}
		p.Pos.Y = surface - p.Size.Y
		p.Vel.Y = 0
		p.OnGround = true
		p.Vel.X += r.SlopeAccel() * dt
		return
	}
}

func (w *World) applyPads(dt float64) {
	p := w.player
	bound := w.tuning.Level.PadVelocityBound
	for _, pad := range w.pads {
		if !p.Bounds().Intersects(pad.Bounds()) {
			continue
		}
		p.Vel.X = math.Max(-bound, math.Min(bound, p.Vel.X+pad.PushX*dt))
		p.Vel.Y = math.Min(p.Vel.Y, pad.PushY)
	}
}

func (w *World) collectPickups() {
	p := w.player
	pb := p.Bounds()
	for i := range w.rings {
		r := &w.rings[i]
		if !r.Active || !pb.Intersects(r.Bounds()) {
			continue
		}
		r.Active = false
		p.Rings++
		p.Score += r.Value
		w.emit(EventRingCollected, r.Pos, r.Value)
	}
	for i := range w.particles {
		rp := &w.particles[i]
		if !rp.Active || !pb.Intersects(rp.Bounds()) {
			continue
		}
		rp.Active = false
		p.Rings++
		w.emit(EventRingCollected, rp.Pos, 0)
	}
}

func (w *World) touchSprings() {
	p := w.player
	for i := range w.springs {
		s := &w.springs[i]
		if !s.Active || p.Vel.Y < 0 || !p.Bounds().Intersects(s.Bounds()) {
			continue
		}
		p.Vel.Y = -w.tuning.Level.SpringLaunch
		p.OnGround = false
		p.ChargingSpinDash = false
		p.SpinDashCharge = 0
		w.emit(EventSpringLaunched, s.Pos, 0)
		return
	}
}

func (w *World) touchMonitors() {
	p := w.player
	for i := range w.monitors {
		m := &w.monitors[i]
		if !m.Active || !p.Bounds().Intersects(m.Bounds()) {
			continue
		}
		fromAbove := w.stomps(m.Bounds(), w.tuning.Hazard.StompTolerance)
		if !fromAbove && !p.Rolling {
			continue
		}
		m.Active = false
		switch m.Kind {
		case MonitorRings10:
			p.Rings += w.tuning.Level.MonitorRings
		case MonitorOneUp:
			p.Lives++
		}
		if fromAbove {
			p.Vel.Y = w.tuning.Hazard.StompBounce
		}
		w.emit(EventMonitorBroken, m.Pos, int(m.Kind))
	}
}

func (w *World) touchEnemies() {
	p := w.player
	h := w.tuning.Hazard
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Active || !p.Bounds().Intersects(e.Bounds()) {
			continue
		}
		if p.IsInvulnerable() {
			return
		}
		if w.stomps(e.Bounds(), h.StompTolerance) || p.Rolling {
			e.Active = false
			p.Score += h.EnemyScore
			p.Vel.Y = h.StompBounce
			w.emit(EventEnemyDefeated, e.Pos, h.EnemyScore)
			continue
		}
		w.damage(e.Center().X)
		return
	}
}

func (w *World) touchBoss() {
	p, b := w.player, w.boss
	if b == nil || !b.Active || b.Defeated() || p.IsInvulnerable() {
		return
	}
	if !p.Bounds().Intersects(b.Bounds()) {
		return
	}

	bt := w.tuning.Boss
	if !w.stomps(b.Bounds(), bt.StompTolerance) && !p.Rolling {
		w.damage(b.Center().X)
		return
	}

	b.TakeHit()
	p.Score += bt.HitScore
	p.Vel.Y = bt.Bounce
	p.Invulnerable = bt.HitInvulnerability
	w.emit(EventBossHit, b.Pos, b.HP)

	if b.Defeated() {
		w.finishUnlocked = true
		p.Score += bt.DefeatBonus
		w.emit(EventBossDefeated, b.Pos, bt.DefeatBonus)
	}
}

// stomps reports whether the player is falling onto target from above.
func (w *World) stomps(target physics.AABB, tolerance float64) bool {
	p := w.player
	return p.Vel.Y > 0 && p.Bounds().Bottom()-target.Top() < tolerance
}

// damage applies the hazard transition: ring loss with a burst, or death.
func (w *World) damage(hazardX float64) {
	p := w.player
	if p.Rings <= 0 {
		w.kill()
		return
	}
	center := p.Center()
	spent := p.Hurt(hazardX, w.tuning.Hazard)
	w.particles = w.burst.Spawn(w.particles, center, spent)
	w.emit(EventPlayerHurt, center, spent)
}

func (w *World) kill() {
	w.player.Kill()
	w.camera.Freeze()
	w.emit(EventPlayerDied, w.player.Pos, w.player.Lives)
}

func (w *World) reachFinish() {
	next, ok := w.level.Next()
	if !ok {
		w.state = StateLevelCompleted
		w.emit(EventLevelCompleted, w.finish.Pos, w.player.Score)
		return
	}
	from := w.level
	_ = w.LoadLevel(next)
	w.events = append(w.events, Event{Kind: EventLevelAdvanced, Level: next, Value: int(from)})
}
