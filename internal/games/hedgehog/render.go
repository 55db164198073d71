package hedgehog

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/physics"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

// hudRows is the number of rows reserved above the play area.
const hudRows = 1

// Visual characters for rendering
const (
	GroundTopChar  = '▀'
	GroundChar     = '█'
	PlatformChar   = '═'
	RampUpChar     = '/'
	RampDownChar   = '\\'
	PadRightChar   = '»'
	PadLeftChar    = '«'
	SpringChar     = '^'
	MonitorChar    = '▣'
	RingChar       = 'o'
	ParticleChar   = '°'
	EnemyChar      = '◆'
	BossChar       = '▓'
	FlagChar       = '⚑'
	FlagPoleChar   = '│'
	PlayerRollChar = '●'
	PlayerDashChar = '◎'
	PlayerDeadChar = 'x'
)

// Render draws the world around the camera with a one-row HUD on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	g.resizeView(dst.Width(), dst.Height())

	snap := g.world.Snapshot()
	proj := core.Projection{
		OriginX: snap.Camera.X,
		OriginY: snap.Camera.Y - hudRows*g.cfg.Render.CellHeight,
		CellW:   g.cfg.Render.CellWidth,
		CellH:   g.cfg.Render.CellHeight,
	}

	for _, r := range snap.Ramps {
		drawRamp(dst, proj, r)
	}
	for _, p := range snap.Platforms {
		drawPlatform(dst, proj, p)
	}
	for _, p := range snap.Pads {
		glyph := PadRightChar
		if p.PushX < 0 {
			glyph = PadLeftChar
		}
		dst.DrawRect(projectBox(proj, p.Bounds()), glyph, core.ColorCyan)
	}
	for _, s := range snap.Springs {
		dst.DrawRect(projectBox(proj, s.Bounds()), SpringChar, core.ColorRed)
	}
	for _, m := range snap.Monitors {
		c := core.ColorBrightBlue
		if m.Kind == world.MonitorOneUp {
			c = core.ColorGreen
		}
		dst.DrawRect(projectBox(proj, m.Bounds()), MonitorChar, c)
	}
	for _, r := range snap.Rings {
		drawPoint(dst, proj, r.Center(), RingChar, core.ColorBrightYellow)
	}
	for _, rp := range snap.Particles {
		drawPoint(dst, proj, rp.Center(), ParticleChar, core.ColorYellow)
	}
	for _, e := range snap.Enemies {
		dst.DrawRect(projectBox(proj, e.Bounds()), EnemyChar, core.ColorRed)
	}
	if snap.Boss != nil {
		c := core.ColorMagenta
		if snap.Boss.Defeated {
			c = core.ColorGray
		}
		dst.DrawRect(projectBox(proj, physics.Box(snap.Boss.Pos, snap.Boss.Size)), BossChar, c)
	}
	drawFinish(dst, proj, snap)
	drawPlayer(dst, proj, snap)

	g.drawHUD(dst, snap)
	g.drawOverlay(dst, snap)
}

func projectBox(p core.Projection, b physics.AABB) core.Rect {
	return p.Rect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

func drawPoint(dst *core.Screen, p core.Projection, at physics.Vec2, r rune, c core.Color) {
	x, y := p.Cell(at.X, at.Y)
	dst.SetColored(x, y, r, c)
}

func drawPlatform(dst *core.Screen, p core.Projection, pl world.Platform) {
	rect := projectBox(p, pl.Bounds())
	if pl.Kind == world.PlatformFloating {
		dst.DrawRect(rect, PlatformChar, core.ColorGray)
		return
	}
	dst.DrawRect(rect, GroundChar, core.ColorBrown)
	dst.DrawHLine(rect.X, rect.Y, rect.W, GroundTopChar, core.ColorGreen)
}

// drawRamp samples the surface at each column center and fills the ground
// below it down to the ramp's low edge.
func drawRamp(dst *core.Screen, p core.Projection, r physics.Ramp) {
	glyph := RampUpChar
	if !r.Ascending {
		glyph = RampDownChar
	}
	span := projectBox(p, r.Bounds())
	_, baseRow := p.Cell(r.Start.X, r.Start.Y-1)
	for col := span.X; col < span.Right(); col++ {
		x := p.OriginX + (float64(col)+0.5)*p.CellW
		x = core.ClampF(x, r.Start.X, r.Start.X+r.Width)
		_, row := p.Cell(x, r.SurfaceY(x))
		dst.SetColored(col, row, glyph, core.ColorGreen)
		for fill := row + 1; fill <= baseRow; fill++ {
			dst.SetColored(col, fill, GroundChar, core.ColorBrown)
		}
	}
}

func drawFinish(dst *core.Screen, p core.Projection, snap world.Snapshot) {
	rect := projectBox(p, snap.Finish.Bounds())
	c := core.ColorGray
	if snap.FinishUnlocked {
		c = core.ColorGreen
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		dst.SetColored(rect.X, y, FlagPoleChar, core.ColorWhite)
	}
	dst.SetColored(rect.X+1, rect.Y, FlagChar, c)
}

func drawPlayer(dst *core.Screen, p core.Projection, snap world.Snapshot) {
	pv := snap.Player
	glyph, c := PlayerGlyph(pv, snap.Tick)
	dst.DrawRect(p.Rect(pv.Pos.X, pv.Pos.Y, pv.Size.X, pv.Size.Y), glyph, c)
}

// PlayerGlyph picks the player's glyph and color. Invulnerability blinks
// every 8 ticks. Pixel frontends use the color alone.
func PlayerGlyph(pv world.PlayerView, tick uint64) (rune, core.Color) {
	switch {
	case pv.Dead:
		return PlayerDeadChar, core.ColorRed
	case pv.Charging:
		return PlayerDashChar, core.ColorCyan
	}

	glyph := '►'
	if pv.Facing < 0 {
		glyph = '◄'
	}
	if pv.Rolling {
		glyph = PlayerRollChar
	}
	if pv.Invulnerable && tick%8 < 4 {
		return glyph, core.ColorWhite
	}
	return glyph, core.ColorBlue
}

func (g *Game) drawHUD(dst *core.Screen, snap world.Snapshot) {
	pv := snap.Player
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	x := 1
	put := func(label, value string, c core.Color) {
		dst.DrawText(x, 0, label, core.ColorGray)
		x += len(label)
		dst.DrawText(x, 0, value, c)
		x += len([]rune(value)) + 2
	}

	put("SCORE ", fmt.Sprintf("%d", pv.Score), core.ColorWhite)
	ringColor := core.ColorBrightYellow
	if pv.Rings == 0 {
		ringColor = core.ColorRed
	}
	put("RINGS ", fmt.Sprintf("%d", pv.Rings), ringColor)
	put("LIVES ", fmt.Sprintf("%d", pv.Lives), core.ColorGreen)
	put("", snap.Level.String(), core.ColorCyan)
	put("VX ", fmt.Sprintf("%.0f", pv.Vel.X), core.ColorWhite)

	if pv.Charging {
		filled := int(math.Round(pv.Charge * 8))
		put("DASH ", "["+strings.Repeat("#", filled)+strings.Repeat(" ", 8-filled)+"]", core.ColorOrange)
	}
	if snap.Boss != nil {
		hp := max(snap.Boss.HP, 0)
		full := g.cfg.Boss.HP
		put("BOSS ", strings.Repeat("■", hp)+strings.Repeat("□", max(full-hp, 0)), core.ColorMagenta)
	}
}

// Banner is a centered message shown over the playfield.
type Banner struct {
	Title    string
	Subtitle string
	Color    core.Color
}

// BannerFor returns the banner for the current state, if one is shown.
func BannerFor(snap world.Snapshot, paused bool) (Banner, bool) {
	switch {
	case snap.State == world.StateTitle:
		return Banner{"TURBO HEDGEHOG", "Enter: start  |  arrows: run  |  space: jump  |  down: roll", core.ColorBrightBlue}, true
	case snap.State == world.StateGameOver:
		return Banner{"GAME OVER", fmt.Sprintf("Score: %d  |  Enter: title", snap.Player.Score), core.ColorRed}, true
	case snap.State == world.StateLevelCompleted:
		return Banner{"ALL ACTS CLEAR", fmt.Sprintf("Score: %d  |  Enter: title", snap.Player.Score), core.ColorGreen}, true
	case paused:
		return Banner{"PAUSED", "Press P to resume", core.ColorYellow}, true
	}
	return Banner{}, false
}

func (g *Game) drawOverlay(dst *core.Screen, snap world.Snapshot) {
	if b, ok := BannerFor(snap, g.paused); ok {
		drawCenteredMessage(dst, b.Title, b.Subtitle, b.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleW, subW := len([]rune(title)), len([]rune(subtitle))
	boxW := min(max(titleW, subW)+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(box.X+(boxW-titleW)/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-subW)/2, box.Y+3, subtitle, core.ColorWhite)
}
