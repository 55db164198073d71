package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/platform/tui"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
)

var (
	flagRuns  bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the high scores. With --runs, recent runs are listed instead.

In a terminal the scoreboard opens as an interactive table; tab switches
between high scores and recent runs. Use --plain, or pipe the output, to
print a text listing.

Examples:
  hedgehog scores
  hedgehog scores --runs --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "List recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, hedgehog.ID, "Turbo Hedgehog", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRuns {
		err = printRuns(os.Stdout, store)
	} else {
		err = printScores(os.Stdout, store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(w io.Writer, store *storage.Store) error {
	scores, err := store.TopScores(hedgehog.ID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Turbo Hedgehog")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'hedgehog play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(hedgehog.ID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Average: %.0f  Cleared: %d\n", stats.HighScore, stats.AvgScore, stats.Completed)
	}
	return nil
}

func printRuns(w io.Writer, store *storage.Store) error {
	runs, err := store.RecentRuns(hedgehog.ID, 20)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent Runs - Turbo Hedgehog")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-9s  %-12s  %-8s  %-5s  %s\n", "Date", "Outcome", "Act", "Score", "Rings", "Time")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-9s  %-12s  %-8d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Level, r.Score, r.Rings,
			r.Duration.Round(time.Second))
	}
	return nil
}
