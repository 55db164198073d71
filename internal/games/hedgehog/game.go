// Package hedgehog adapts the platformer world to the registry.Game
// contract. It loads tuning from the YAML config, turns held actions into
// world input, draws a terminal view, and logs world events.
package hedgehog

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turbo-hedgehog/internal/config"
	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/registry"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

// ID is the registry and score-storage key.
const ID = "hedgehog"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are rejected
// and leave the current preset unchanged.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger used for world events and config warnings.
// A nil logger silences output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game runs one world and keeps the frontend-facing state around it.
type Game struct {
	world   *world.World
	cfg     config.HedgehogConfig
	runtime core.RuntimeConfig
	catalog world.Catalog
	preset  config.DifficultyPreset
	paused  bool

	// Previous held state for edge-triggered actions.
	prevConfirm bool
	prevRestart bool
	prevPause   bool

	viewCols, viewRows int
}

// New creates a game over the stock acts.
func New() *Game {
	return &Game{}
}

// NewWithCatalog creates a game over custom level content.
func NewWithCatalog(cat world.Catalog) *Game {
	return &Game{catalog: cat}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Turbo Hedgehog"
}

// SetDifficulty overrides the package-wide preset for this instance.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// Reset loads config and builds a fresh world at the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHedgehog(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyHedgehogPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.world = world.NewWorld(world.Config{
		Tuning:  TuningFromConfig(cfg),
		Catalog: g.catalog,
		Seed:    runtime.Seed,
	})
	g.viewCols, g.viewRows = 0, 0
	g.resizeView(runtime.ScreenW, runtime.ScreenH)

	g.paused = false
	g.prevConfirm, g.prevRestart, g.prevPause = false, false, false
	g.logEvents()
}

// Step advances the world by one frame of held input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	pause := in.Has(core.ActionPause)
	if pause && !g.prevPause && g.world.State() == world.StatePlaying {
		g.paused = !g.paused
		logger.Debug("pause toggled", "paused", g.paused)
	}
	g.prevPause = pause

	confirm := in.Has(core.ActionConfirm)
	restart := in.Has(core.ActionRestart)
	wi := world.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Crouch:  in.Has(core.ActionDuck),
		Jump:    in.Has(core.ActionJump),
		Restart: restart && !g.prevRestart,
		Advance: confirm && !g.prevConfirm,
	}
	g.prevConfirm, g.prevRestart = confirm, restart

	if wi.Restart {
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Delta
	if dt <= 0 {
		dt = g.runtime.TickDelta()
	}
	g.world.Update(dt, wi)
	g.logEvents()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	snap := g.world.Snapshot()
	st := core.GameState{
		Score:    snap.Player.Score,
		GameOver: snap.State == world.StateGameOver,
		Won:      snap.State == world.StateLevelCompleted,
		Paused:   g.paused,
		Playing:  snap.State == world.StatePlaying,
		Rings:    snap.Player.Rings,
		Lives:    snap.Player.Lives,
	}
	if snap.State != world.StateTitle {
		st.Level = snap.Level.String()
	}
	return st
}

// World exposes the simulation for frontends that draw the snapshot
// themselves.
func (g *Game) World() *world.World {
	return g.world
}

// Config returns the configuration the current world was built from.
func (g *Game) Config() config.HedgehogConfig {
	return g.cfg
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPixelViewport sets the world viewport directly, for pixel frontends.
func (g *Game) SetPixelViewport(w, h float64) {
	if g.world != nil {
		g.world.SetViewport(w, h)
	}
}

// resizeView keeps the world viewport equal to the terminal area below the HUD.
func (g *Game) resizeView(cols, rows int) {
	if cols == g.viewCols && rows == g.viewRows {
		return
	}
	g.viewCols, g.viewRows = cols, rows
	playRows := max(rows-hudRows, 1)
	g.world.SetViewport(float64(max(cols, 1))*g.cfg.Render.CellWidth, float64(playRows)*g.cfg.Render.CellHeight)
}

func (g *Game) logEvents() {
	for _, ev := range g.world.Events() {
		switch ev.Kind {
		case world.EventLevelLoaded:
			if ev.Err != nil {
				logger.Warn("level content pruned", "level", ev.Level, "err", ev.Err)
			}
			logger.Debug(ev.Kind.String(), "level", ev.Level)
		case world.EventGameOver, world.EventLevelCompleted:
			logger.Info(ev.Kind.String(), "level", ev.Level, "score", ev.Value)
		case world.EventLevelAdvanced:
			logger.Info(ev.Kind.String(), "from", world.LevelID(ev.Value), "to", ev.Level)
		default:
			logger.Debug(ev.Kind.String(), "level", ev.Level, "x", ev.Pos.X, "y", ev.Pos.Y, "value", ev.Value)
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
