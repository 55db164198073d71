// hedgehog is a side-scrolling platformer that runs in the terminal, in a
// desktop window, over SSH, or headless.
//
// Usage:
//
//	hedgehog play            - Play in the terminal
//	hedgehog window          - Play in a desktop window
//	hedgehog serve           - Start SSH server for remote play
//	hedgehog scores          - Show high scores and recent runs
//	hedgehog levels          - List the acts
//	hedgehog sim             - Run a scripted game without a frontend
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hedgehog/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger is built before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is the --log-file handle, closed after the command finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hedgehog",
	Short: "Turbo Hedgehog - a fast side-scrolling platformer",
	Long: `Turbo Hedgehog is a side-scrolling platformer. Run through three acts,
collect rings, stomp enemies and defeat the boss guarding the last flag.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  levels   - List the acts
  sim      - Run a scripted game headless

Examples:
  hedgehog play
  hedgehog play --difficulty hard
  hedgehog window --scale 2
  hedgehog serve --ssh :2222
  hedgehog sim --seed 7 --ticks 3600`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel, flagLogFile)
		if err != nil {
			return err
		}
		logger = l
		hedgehog.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		closeLogFile()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hedgehog/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the root logger. An empty path logs to stderr.
func newLogger(level, path string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		closeLogFile()
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hedgehog",
		Level:           lvl,
	}), nil
}

// closeLogFile releases the --log-file handle, if any.
func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
	logFile = nil
}
