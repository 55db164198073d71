package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/turbo-hedgehog/internal/core"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
)

var (
	title   = core.GameState{}
	playing = core.GameState{Playing: true, Level: "Act 1", Score: 100, Rings: 3, Lives: 3}
	over    = core.GameState{GameOver: true, Level: "Act 2", Score: 700, Lives: 0}
	won     = core.GameState{Won: true, Level: "Act 3", Score: 5000, Rings: 20, Lives: 1}
)

func TestTrackerReportsEachEndOnce(t *testing.T) {
	var tr Tracker
	t0 := time.Unix(100, 0)

	if _, ok := tr.Observe(title, playing, t0); ok {
		t.Fatal("starting a run should not report")
	}
	end, ok := tr.Observe(playing, over, t0.Add(30*time.Second))
	if !ok {
		t.Fatal("game over should report")
	}
	if end.Outcome != storage.OutcomeGameOver || end.Duration != 30*time.Second || end.State != over {
		t.Errorf("end = %+v, expected game over after 30s", end)
	}
	if _, ok := tr.Observe(over, over, t0.Add(31*time.Second)); ok {
		t.Error("a finished run should report once")
	}
	if _, ok := tr.Observe(over, title, t0.Add(32*time.Second)); ok {
		t.Error("returning to title after a recorded run should not report")
	}

	tr.Observe(title, playing, t0.Add(40*time.Second))
	end, ok = tr.Observe(playing, won, t0.Add(100*time.Second))
	if !ok || end.Outcome != storage.OutcomeCompleted || end.Duration != time.Minute {
		t.Errorf("second run end = %+v (ok=%v), expected completed after 1m", end, ok)
	}
}

func TestTrackerAbandon(t *testing.T) {
	var tr Tracker
	t0 := time.Unix(100, 0)

	if _, ok := tr.Abandon(title, t0); ok {
		t.Error("Abandon() without a run should not report")
	}

	tr.Observe(title, playing, t0)
	end, ok := tr.Observe(playing, title, t0.Add(5*time.Second))
	if !ok || end.Outcome != storage.OutcomeQuit || end.State != playing {
		t.Errorf("restart mid-run = %+v (ok=%v), expected quit with last playing state", end, ok)
	}

	tr.Observe(title, playing, t0.Add(10*time.Second))
	if _, ok := tr.Abandon(playing, t0.Add(12*time.Second)); !ok {
		t.Error("Abandon() during a run should report")
	}
	if _, ok := tr.Abandon(playing, t0.Add(13*time.Second)); ok {
		t.Error("Abandon() should report once")
	}
}

func TestTrackerIgnoresFinishWithoutStart(t *testing.T) {
	var tr Tracker
	if _, ok := tr.Observe(title, over, time.Now()); ok {
		t.Error("Observe() reported a run that never started")
	}
}

func TestRecorderWritesStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	r := NewRecorder(store, "hedgehog", 42, nil)
	t0 := time.Unix(100, 0)

	r.Observe(title, playing, t0)
	r.Observe(playing, over, t0.Add(10*time.Second))
	r.Observe(over, title, t0.Add(11*time.Second))
	r.Observe(title, playing, t0.Add(12*time.Second))
	r.Abandon(playing, t0.Add(15*time.Second))

	runs, err := store.RecentRuns("hedgehog", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() = %d runs, expected 2", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeQuit || runs[1].Outcome != storage.OutcomeGameOver {
		t.Errorf("outcomes = %s, %s, expected quit then game_over (newest first)", runs[0].Outcome, runs[1].Outcome)
	}
	if runs[1].Seed != 42 || runs[1].Score != 700 || runs[1].Duration != 10*time.Second {
		t.Errorf("game over run = %+v", runs[1])
	}

	scores, err := store.TopScores("hedgehog", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 {
		t.Errorf("TopScores() = %+v, expected only the game-over score", scores)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(nil, "hedgehog", 1, nil)
	t0 := time.Unix(100, 0)
	r.Observe(title, playing, t0)
	r.Observe(playing, over, t0.Add(time.Second))
}
