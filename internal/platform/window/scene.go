package window

import (
	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

// Sprite is a filled rectangle in view coordinates.
type Sprite struct {
	X, Y, W, H float32
	Color      core.Color
}

const (
	rampStep  = 8.0 // Width of the strips a ramp is drawn with
	grassH    = 4.0
	flagPoleW = 4.0
)

// Scene flattens a snapshot into sprites relative to the camera, back to
// front. Anything outside the view is dropped.
func Scene(snap world.Snapshot) []Sprite {
	view := physics.Box(snap.Camera, physics.V(snap.ViewW, snap.ViewH))
	out := make([]Sprite, 0, 64)
	add := func(b physics.AABB, c core.Color) {
		if b.Size.X <= 0 || b.Size.Y <= 0 || !b.Intersects(view) {
			return
		}
		out = append(out, Sprite{
			X:     float32(b.Pos.X - snap.Camera.X),
			Y:     float32(b.Pos.Y - snap.Camera.Y),
			W:     float32(b.Size.X),
			H:     float32(b.Size.Y),
			Color: c,
		})
	}

	for _, r := range snap.Ramps {
		end := r.Start.X + r.Width
		for x := r.Start.X; x < end; x += rampStep {
			w := min(rampStep, end-x)
			top := r.SurfaceY(x + w/2)
			add(physics.Box(physics.V(x, top), physics.V(w, r.Start.Y-top)), core.ColorGreen)
		}
	}
	for _, p := range snap.Platforms {
		b := p.Bounds()
		if p.Kind == world.PlatformFloating {
			add(b, core.ColorGray)
			continue
		}
		add(b, core.ColorBrown)
		add(physics.Box(b.Pos, physics.V(b.Size.X, min(grassH, b.Size.Y))), core.ColorGreen)
	}
	for _, p := range snap.Pads {
		add(p.Bounds(), core.ColorCyan)
	}
	for _, s := range snap.Springs {
		add(s.Bounds(), core.ColorRed)
	}
	for _, m := range snap.Monitors {
		c := core.ColorBrightBlue
		if m.Kind == world.MonitorOneUp {
			c = core.ColorGreen
		}
		add(m.Bounds(), c)
	}
	for _, r := range snap.Rings {
		add(r.Bounds(), core.ColorBrightYellow)
	}
	for _, rp := range snap.Particles {
		add(rp.Bounds(), core.ColorYellow)
	}
	for _, e := range snap.Enemies {
		add(e.Bounds(), core.ColorRed)
	}
	if snap.Boss != nil {
		c := core.ColorMagenta
		if snap.Boss.Defeated {
			c = core.ColorGray
		}
		add(physics.Box(snap.Boss.Pos, snap.Boss.Size), c)
	}

	flag := snap.Finish.Bounds()
	flagColor := core.ColorGray
	if snap.FinishUnlocked {
		flagColor = core.ColorGreen
	}
	add(physics.Box(flag.Pos, physics.V(flagPoleW, flag.Size.Y)), core.ColorWhite)
	add(physics.Box(physics.V(flag.Pos.X+flagPoleW, flag.Pos.Y), physics.V(flag.Size.X-flagPoleW, flag.Size.Y/3)), flagColor)

	pv := snap.Player
	_, playerColor := hedgehog.PlayerGlyph(pv, snap.Tick)
	add(physics.Box(pv.Pos, pv.Size), playerColor)

	return out
}
