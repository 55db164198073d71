package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/platform/tui"
	"github.com/vovakirdan/turbo-hedgehog/internal/registry"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Jump
  Down/S            - Duck; hold while standing to charge a spin dash
  Enter             - Start / next act
  P/Esc             - Pause
  R                 - Back to title (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Terminals only report key presses, so a tapped direction keeps running
for about half a second.

Difficulty options:
  easy   - 5 lives, slow enemies
  normal - 3 lives
  hard   - 2 lives, fast enemies

Examples:
  hedgehog play
  hedgehog play --difficulty easy
  hedgehog play --config ./my-hedgehog.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// configureGame applies --config and --difficulty before a game is created.
func configureGame() error {
	hedgehog.SetConfigPath(flagConfig)
	if flagDifficulty == "" {
		return nil
	}
	return hedgehog.SetDifficultyPreset(flagDifficulty)
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal; stderr logs would tear the screen.
	if flagLogFile == "" {
		logger = log.New(io.Discard)
		hedgehog.SetLogger(logger)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(hedgehog.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
