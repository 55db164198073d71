package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/platform/window"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
)

var (
	flagScale      float64
	flagFullscreen bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. Held keys are read directly,
so movement stops as soon as a key is released.

Controls are the same as in the terminal. F11 toggles fullscreen and Q
closes the window. Scale and fullscreen are remembered between runs;
passing --scale or --fullscreen saves the new value.

Examples:
  hedgehog window
  hedgehog window --scale 2
  hedgehog window --fullscreen --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale (0.5 to 4)")
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runWindow(cmd *cobra.Command, args []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := window.OpenSettings(window.AppName)
	if err != nil {
		logger.Warn("window settings unavailable", "error", err)
	}
	changed := false
	if cmd.Flags().Changed("scale") {
		settings.SetScale(flagScale)
		changed = true
	}
	if cmd.Flags().Changed("fullscreen") {
		settings.SetFullscreen(flagFullscreen)
		changed = true
	}
	if changed {
		if err := settings.Save(); err != nil {
			logger.Warn("could not save window settings", "error", err)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := window.Run(hedgehog.New(), window.Options{
		Runtime:  core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Store:    store,
		Settings: settings,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
