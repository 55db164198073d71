package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
)

// LevelID identifies an act.
type LevelID int

const (
	Act1 LevelID = iota
	Act2
	Act3Boss
)

// Levels lists every act in play order.
var Levels = []LevelID{Act1, Act2, Act3Boss}

// String returns the act name.
func (id LevelID) String() string {
	switch id {
	case Act1:
		return "Act 1"
	case Act2:
		return "Act 2"
	case Act3Boss:
		return "Act 3 (Boss)"
	default:
		return "Unknown"
	}
}

// Next returns the act that follows id. ok is false for the final act.
func (id LevelID) Next() (next LevelID, ok bool) {
	switch id {
	case Act1:
		return Act2, true
	case Act2:
		return Act3Boss, true
	default:
		return id, false
	}
}

// ErrInvalidLevel is wrapped by every level validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// DefaultSpawn is where the player appears in the stock acts.
var DefaultSpawn = physics.V(80, 200)

// LevelContent is the output of a Catalog build. The add helpers size
// enemies, bosses and rings from the tuning the content was created with.
type LevelContent struct {
	Platforms []Platform
	Ramps     []physics.Ramp
	Pads      []SpeedPad
	Rings     []Ring
	Enemies   []Enemy
	Springs   []Spring
	Monitors  []Monitor
	Boss      *Boss
	Finish    FinishFlag
	Spawn     physics.Vec2

	tuning Tuning
}

// NewLevelContent creates empty content sized by t.
func NewLevelContent(t Tuning) *LevelContent {
	return &LevelContent{Spawn: DefaultSpawn, tuning: t}
}

// AddGround adds a ground platform.
func (c *LevelContent) AddGround(x, y, w, h float64) {
	c.Platforms = append(c.Platforms, NewPlatform(physics.V(x, y), physics.V(w, h), PlatformGround))
}

// AddPlatform adds a floating platform.
func (c *LevelContent) AddPlatform(x, y, w, h float64) {
	c.Platforms = append(c.Platforms, NewPlatform(physics.V(x, y), physics.V(w, h), PlatformFloating))
}

// AddRamp adds a sloped surface.
func (c *LevelContent) AddRamp(r physics.Ramp) {
	c.Ramps = append(c.Ramps, r)
}

// AddPad adds a speed pad.
func (c *LevelContent) AddPad(x, y, w, h, pushX, pushY float64) {
	c.Pads = append(c.Pads, SpeedPad{Pos: physics.V(x, y), Size: physics.V(w, h), PushX: pushX, PushY: pushY})
}

// AddRingRow adds n rings starting at (x, y), spaced dx apart horizontally
// and dy apart vertically.
func (c *LevelContent) AddRingRow(n int, x, y, dx, dy float64) {
	for i := range n {
		pos := physics.V(x+float64(i)*dx, y+float64(i)*dy)
		c.Rings = append(c.Rings, NewRing(pos, c.tuning.Level.RingValue))
	}
}

// AddEnemy adds a patrol enemy bounded by [left, right].
func (c *LevelContent) AddEnemy(x, y, left, right float64) {
	c.Enemies = append(c.Enemies, NewEnemy(physics.V(x, y), left, right, c.tuning.Enemy))
}

// AddSpring adds a spring.
func (c *LevelContent) AddSpring(x, y float64) {
	c.Springs = append(c.Springs, NewSpring(physics.V(x, y)))
}

// AddMonitor adds an item monitor.
func (c *LevelContent) AddMonitor(x, y float64, kind MonitorKind) {
	c.Monitors = append(c.Monitors, NewMonitor(physics.V(x, y), kind))
}

// SetBoss places the boss.
func (c *LevelContent) SetBoss(x, y float64) {
	c.Boss = NewBoss(physics.V(x, y), c.tuning.Boss)
}

// SetFinish places the finish flag.
func (c *LevelContent) SetFinish(x, y float64) {
	c.Finish = NewFinishFlag(physics.V(x, y))
}

// Validate reports degenerate geometry. Every returned error wraps ErrInvalidLevel.
func (c *LevelContent) Validate() error {
	var errs []error
	for i, p := range c.Platforms {
		if p.Size.X <= 0 || p.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("%w: platform %d has size %.1fx%.1f", ErrInvalidLevel, i, p.Size.X, p.Size.Y))
		}
	}
	for i, r := range c.Ramps {
		if r.Width <= 0 {
			errs = append(errs, fmt.Errorf("%w: ramp %d has width %.1f", ErrInvalidLevel, i, r.Width))
		}
	}
	for i, p := range c.Pads {
		if p.Size.X <= 0 || p.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("%w: pad %d has size %.1fx%.1f", ErrInvalidLevel, i, p.Size.X, p.Size.Y))
		}
	}
	for i, e := range c.Enemies {
		if e.RightBound-e.LeftBound < e.Size.X {
			errs = append(errs, fmt.Errorf("%w: enemy %d patrol range [%.1f, %.1f] narrower than its width", ErrInvalidLevel, i, e.LeftBound, e.RightBound))
		}
	}
	return errors.Join(errs...)
}

// prune drops every item Validate would reject.
func (c *LevelContent) prune() {
	c.Platforms = filter(c.Platforms, func(p Platform) bool { return p.Size.X > 0 && p.Size.Y > 0 })
	c.Ramps = filter(c.Ramps, func(r physics.Ramp) bool { return r.Width > 0 })
	c.Pads = filter(c.Pads, func(p SpeedPad) bool { return p.Size.X > 0 && p.Size.Y > 0 })
	c.Enemies = filter(c.Enemies, func(e Enemy) bool { return e.RightBound-e.LeftBound >= e.Size.X })
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Catalog builds level content for an act.
type Catalog interface {
	Build(id LevelID, c *LevelContent)
}

// CatalogFunc adapts a function to Catalog.
type CatalogFunc func(id LevelID, c *LevelContent)

// Build calls f(id, c).
func (f CatalogFunc) Build(id LevelID, c *LevelContent) {
	f(id, c)
}

// StandardCatalog holds the three stock acts. Each act has a lower route that
// is easy to run and an upper route that needs jumps but pays more rings.
type StandardCatalog struct{}

// Build populates c for id. Unknown ids build Act 1.
func (StandardCatalog) Build(id LevelID, c *LevelContent) {
	c.Spawn = DefaultSpawn
	switch id {
	case Act2:
		buildAct2(c)
	case Act3Boss:
		buildAct3Boss(c)
	default:
		buildAct1(c)
	}
}

func buildAct1(c *LevelContent) {
	c.AddGround(0, 460, 4400, 80)

	// Lower route
	c.AddPlatform(400, 420, 400, 20)
	c.AddPlatform(900, 400, 600, 20)
	c.AddPlatform(1700, 430, 500, 20)
	c.AddPlatform(2400, 410, 800, 20)

	// Upper route
	c.AddPlatform(350, 320, 220, 20)
	c.AddPlatform(650, 280, 220, 20)
	c.AddPlatform(980, 250, 260, 20)
	c.AddPlatform(1360, 260, 260, 20)
	c.AddPlatform(1780, 240, 260, 20)
	c.AddPlatform(2200, 270, 260, 20)
	c.AddPlatform(2620, 250, 280, 20)
	c.AddPlatform(3100, 290, 300, 20)

	// Connectors between the routes
	c.AddPlatform(1200, 340, 140, 20)
	c.AddPlatform(2000, 330, 140, 20)
	c.AddPlatform(2900, 360, 160, 20)

	// Hill before the finish
	c.AddRamp(physics.NewAscendingRamp(physics.V(3500, 460), 200, 60))
	c.AddRamp(physics.NewDescendingRamp(physics.V(3700, 460), 200, 60))

	c.AddPad(2450, 370, 120, 40, 900, 0)
	c.AddSpring(220, 442)
	c.AddMonitor(1290, 314, MonitorRings10)
	c.AddMonitor(3160, 264, MonitorOneUp)

	c.AddRingRow(20, 380, 290, 30, 0)
	c.AddRingRow(16, 1050, 220, 30, 0)
	c.AddRingRow(12, 950, 370, 30, 0)
	c.AddRingRow(5, 226, 380, 0, -40)
	c.AddRingRow(6, 3520, 410, 30, -9)

	c.AddEnemy(980, 380, 900, 1500)
	c.AddEnemy(1900, 410, 1700, 2200)
	c.AddEnemy(2800, 390, 2400, 3200)

	c.SetFinish(4100, 396)
}

func buildAct2(c *LevelContent) {
	c.AddGround(0, 460, 5400, 80)

	// Lower route
	c.AddPlatform(500, 430, 450, 20)
	c.AddPlatform(1100, 420, 550, 20)
	c.AddPlatform(1850, 440, 600, 20)
	c.AddPlatform(2700, 420, 700, 20)
	c.AddPlatform(3700, 440, 700, 20)

	// Upper route: staggered islands
	x, y := 600.0, 320.0
	for i := range 12 {
		c.AddPlatform(x, y, 180, 18)
		x += 240
		if i%3 == 0 {
			y -= 35
		} else {
			y += 25
		}
		y = max(200, min(360, y))
	}

	// Middle route
	c.AddPlatform(1600, 330, 260, 18)
	c.AddPlatform(2000, 300, 260, 18)
	c.AddPlatform(2400, 320, 260, 18)
	c.AddPlatform(2900, 300, 320, 18)
	c.AddPlatform(3400, 320, 320, 18)

	// Hill after the lower route
	c.AddRamp(physics.NewAscendingRamp(physics.V(4550, 460), 200, 60))
	c.AddRamp(physics.NewDescendingRamp(physics.V(4750, 460), 200, 60))

	c.AddPad(1900, 400, 120, 40, 900, 0)
	c.AddPad(3800, 400, 120, 40, 700, -260)
	c.AddSpring(4480, 442)
	c.AddMonitor(2050, 274, MonitorRings10)
	c.AddMonitor(3000, 274, MonitorOneUp)

	c.AddRingRow(28, 650, 260, 35, 0)
	c.AddRingRow(14, 1650, 300, 30, 0)
	c.AddRingRow(6, 4570, 400, 30, -9)

	c.AddEnemy(1250, 400, 1100, 1650)
	c.AddEnemy(3000, 400, 2700, 3400)
	c.AddEnemy(4100, 420, 3700, 4400)

	c.SetFinish(5100, 396)
}

func buildAct3Boss(c *LevelContent) {
	c.AddGround(0, 460, 3800, 80)

	// Approach
	c.AddPlatform(400, 410, 450, 20)
	c.AddPlatform(950, 360, 250, 20)
	c.AddPlatform(1250, 320, 250, 20)
	c.AddPlatform(1650, 360, 350, 20)
	c.AddPlatform(2200, 410, 500, 20)

	// Upper branch
	c.AddPlatform(900, 250, 220, 18)
	c.AddPlatform(1180, 220, 220, 18)
	c.AddPlatform(1500, 240, 220, 18)
	c.AddPlatform(1820, 220, 220, 18)

	// Arena floor and walls
	c.AddGround(2900, 420, 800, 20)
	c.AddGround(2880, 260, 20, 200)
	c.AddGround(3700, 260, 20, 200)

	c.AddPad(250, 420, 120, 40, 900, 0)
	c.AddSpring(2800, 442)
	c.AddMonitor(2300, 384, MonitorRings10)

	c.AddRingRow(18, 950, 190, 35, 0)
	c.AddRingRow(10, 2250, 380, 40, 0)

	c.SetBoss(3300, 350)
	c.SetFinish(3600, 356)
}
