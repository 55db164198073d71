// Package tui provides the Bubble Tea frontend for the hedgehog game.
// It handles the terminal UI loop, input mapping, score recording, and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, falling back to the
// nominal step on the first tick or a clock that went backwards.
func frameDelta(last, now time.Time, nominal float64) float64 {
	if last.IsZero() || !now.After(last) {
		return nominal
	}
	return now.Sub(last).Seconds()
}
