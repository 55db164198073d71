// Package runlog turns the stream of game states a frontend sees into
// high-score and run-history rows. Each run is written once, when it ends.
package runlog

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
)

// End describes a run that just ended.
type End struct {
	Outcome  storage.Outcome
	State    core.GameState
	Duration time.Duration
}

// Tracker watches successive game states and reports each run once.
type Tracker struct {
	start    time.Time
	recorded bool
}

// Observe updates the tracker with the state after a step. prev is the
// state before the step; it describes a run abandoned for the title screen.
func (t *Tracker) Observe(prev, cur core.GameState, now time.Time) (End, bool) {
	switch {
	case cur.Playing:
		if t.start.IsZero() {
			t.start = now
			t.recorded = false
		}
	case cur.Finished():
		if t.start.IsZero() || t.recorded {
			return End{}, false
		}
		t.recorded = true
		outcome := storage.OutcomeGameOver
		if cur.Won {
			outcome = storage.OutcomeCompleted
		}
		return End{Outcome: outcome, State: cur, Duration: now.Sub(t.start)}, true
	default:
		// Back on the title screen.
		end, ok := t.Abandon(prev, now)
		t.start = time.Time{}
		t.recorded = false
		return end, ok
	}
	return End{}, false
}

// Abandon reports an in-progress run as quit.
func (t *Tracker) Abandon(last core.GameState, now time.Time) (End, bool) {
	if t.start.IsZero() || t.recorded {
		return End{}, false
	}
	t.recorded = true
	return End{Outcome: storage.OutcomeQuit, State: last, Duration: now.Sub(t.start)}, true
}

// Recorder pairs a Tracker with the store it writes to.
// A nil store keeps the logging and drops the rows.
type Recorder struct {
	store   *storage.Store
	gameID  string
	seed    int64
	logger  *log.Logger
	tracker Tracker
}

// NewRecorder creates a recorder for one game session.
func NewRecorder(store *storage.Store, gameID string, seed int64, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, gameID: gameID, seed: seed, logger: logger}
}

// Observe feeds one step's states and saves the run if it ended.
func (r *Recorder) Observe(prev, cur core.GameState, now time.Time) {
	if end, ok := r.tracker.Observe(prev, cur, now); ok {
		r.save(end)
	}
}

// Abandon saves the run in progress, if any, as quit.
func (r *Recorder) Abandon(last core.GameState, now time.Time) {
	if end, ok := r.tracker.Abandon(last, now); ok {
		r.save(end)
	}
}

// save writes the score and the run history row. Quit runs do not enter
// the score table. Failures are logged and otherwise ignored.
func (r *Recorder) save(end End) {
	r.logger.Info("run ended",
		"outcome", end.Outcome,
		"level", end.State.Level,
		"score", end.State.Score,
		"duration", end.Duration.Round(time.Second),
	)
	if r.store == nil {
		return
	}

	if end.Outcome != storage.OutcomeQuit && end.State.Score > 0 {
		if _, err := r.store.SaveScore(r.gameID, end.State.Score); err != nil {
			r.logger.Warn("could not save score", "error", err)
		}
	}

	_, err := r.store.RecordRun(storage.RunRecord{
		GameID:   r.gameID,
		Outcome:  end.Outcome,
		Level:    end.State.Level,
		Score:    end.State.Score,
		Rings:    end.State.Rings,
		Lives:    end.State.Lives,
		Seed:     r.seed,
		Duration: end.Duration,
	})
	if err != nil {
		r.logger.Warn("could not record run", "error", err)
	}
}
