// Package window runs the hedgehog game in a desktop window with Ebiten.
// It draws the world snapshot as flat rectangles and reads real key state,
// so held input needs no emulation.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/platform/runlog"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

var (
	skyColor    = color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff}
	bannerShade = color.RGBA{A: 0xb0}
)

// Options configures a window session.
type Options struct {
	Runtime  core.RuntimeConfig
	Store    *storage.Store // Nil disables score recording
	Settings *SettingsStore // Nil keeps defaults in memory
	Logger   *log.Logger    // Nil discards output
}

// Window adapts a hedgehog game to ebiten.Game.
type Window struct {
	game     *hedgehog.Game
	runtime  core.RuntimeConfig
	settings *SettingsStore
	runs     *runlog.Recorder
	logger   *log.Logger
	state    core.GameState

	width, height  int
	prevFullscreen bool
	pressed        func(ebiten.Key) bool
	now            func() time.Time
}

// New creates a window for game. The logical size comes from the game's
// render config.
func New(game *hedgehog.Game, opts Options) *Window {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Settings == nil {
		opts.Settings = NewSettingsStore(nil)
	}

	w := &Window{
		game:     game,
		runtime:  opts.Runtime,
		settings: opts.Settings,
		runs:     runlog.NewRecorder(opts.Store, game.ID(), opts.Runtime.Seed, opts.Logger),
		logger:   opts.Logger,
		pressed:  ebiten.IsKeyPressed,
		now:      time.Now,
	}
	game.Reset(opts.Runtime)

	rc := game.Config().Render
	w.width, w.height = rc.WindowWidth, rc.WindowHeight
	game.SetPixelViewport(float64(w.width), float64(w.height))
	return w
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if w.pressed(quitKey) {
		w.runs.Abandon(w.state, w.now())
		return ebiten.Termination
	}

	fs := w.pressed(fullscreenKey)
	if fs && !w.prevFullscreen {
		w.toggleFullscreen()
	}
	w.prevFullscreen = fs

	prev := w.state
	w.state = w.game.Step(readFrame(w.pressed, 1/float64(ebiten.TPS()))).State
	w.runs.Observe(prev, w.state, w.now())
	return nil
}

func (w *Window) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	w.settings.SetFullscreen(on)
	if err := w.settings.Save(); err != nil {
		w.logger.Warn("could not save window settings", "error", err)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	wd := w.game.World()
	if wd == nil {
		return
	}
	snap := wd.Snapshot()
	for _, s := range Scene(snap) {
		vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color.RGBA(), false)
	}

	ebitenutil.DebugPrintAt(screen, hudText(snap, w.game.Config().Boss.HP), 8, 4)

	if b, ok := hedgehog.BannerFor(snap, w.game.Paused()); ok {
		bw, bh := float32(w.width), float32(56)
		by := (float32(w.height) - bh) / 2
		vector.DrawFilledRect(screen, 0, by, bw, bh, bannerShade, false)
		ebitenutil.DebugPrintAt(screen, b.Title, textX(b.Title, w.width), int(by)+10)
		ebitenutil.DebugPrintAt(screen, b.Subtitle, textX(b.Subtitle, w.width), int(by)+30)
	}
}

// Layout keeps a fixed logical resolution; Ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// debugCharW is the advance of Ebiten's debug font.
const debugCharW = 6

func textX(s string, width int) int {
	return max((width-len([]rune(s))*debugCharW)/2, 0)
}

// hudText is the one-line status shown in the top-left corner.
func hudText(snap world.Snapshot, bossHP int) string {
	pv := snap.Player
	s := fmt.Sprintf("SCORE %d  RINGS %d  LIVES %d  %s  VX %.0f", pv.Score, pv.Rings, pv.Lives, snap.Level, pv.Vel.X)
	if pv.Charging {
		s += fmt.Sprintf("  DASH %3.0f%%", pv.Charge*100)
	}
	if snap.Boss != nil {
		s += fmt.Sprintf("  BOSS %d/%d", max(snap.Boss.HP, 0), bossHP)
	}
	return s
}

// Run opens the window and blocks until it is closed.
func Run(game *hedgehog.Game, opts Options) error {
	w := New(game, opts)
	st := w.settings.Settings()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(w.width)*st.Scale), int(float64(w.height)*st.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(st.Fullscreen)
	ebiten.SetTPS(w.runtime.TickRate)

	w.logger.Debug("window opened", "width", w.width, "height", w.height, "scale", st.Scale, "seed", w.runtime.Seed)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
