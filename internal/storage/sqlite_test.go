package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("hedgehog", 1200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("hedgehog")
	if err != nil || high != 1200 {
		t.Errorf("HighScore() after reopen = %d, %v, expected 1200", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("hedgehog", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("hedgehog", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "hedgehog" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("hedgehog", (i+1)*100)
	}

	scores, err := store.TopScores("hedgehog", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for range 10 {
		store.SaveScore("hedgehog", 1)
	}
	scores, _ = store.TopScores("hedgehog", 0)
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d, expected 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hedgehog")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("hedgehog", 100)
	store.SaveScore("hedgehog", 300)
	store.SaveScore("hedgehog", 200)

	high, _ = store.HighScore("hedgehog")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	first := RunRecord{
		GameID:   "hedgehog",
		Outcome:  OutcomeGameOver,
		Level:    "Act 2",
		Score:    1400,
		Rings:    0,
		Lives:    0,
		Seed:     42,
		Duration: 95 * time.Second,
	}
	second := RunRecord{
		GameID:   "hedgehog",
		Outcome:  OutcomeCompleted,
		Level:    "Act 3 (Boss)",
		Score:    5200,
		Rings:    31,
		Lives:    2,
		Seed:     -7,
		Duration: 4*time.Minute + 1500*time.Millisecond,
	}
	for _, r := range []RunRecord{first, second} {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("hedgehog", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	got := runs[0]
	if got.Outcome != OutcomeCompleted || got.Level != "Act 3 (Boss)" || got.Score != 5200 {
		t.Errorf("newest run = %+v, expected the completed one", got)
	}
	if got.Rings != 31 || got.Lives != 2 || got.Seed != -7 {
		t.Errorf("run counters = rings %d lives %d seed %d", got.Rings, got.Lives, got.Seed)
	}
	if got.Duration != second.Duration {
		t.Errorf("Duration = %v, expected %v", got.Duration, second.Duration)
	}
	if runs[1].Outcome != OutcomeGameOver {
		t.Errorf("older run outcome = %q", runs[1].Outcome)
	}

	limited, _ := store.RecentRuns("hedgehog", 1)
	if len(limited) != 1 {
		t.Errorf("RecentRuns(1) returned %d runs", len(limited))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hedgehog", 100)
	store.SaveScore("other", 300)
	store.RecordRun(RunRecord{GameID: "hedgehog", Outcome: OutcomeQuit, Level: "Act 1"})

	if err := store.ClearScores("hedgehog"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("hedgehog", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("hedgehog", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other game scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("hedgehog")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("hedgehog", 100)
	store.SaveScore("hedgehog", 300)
	store.RecordRun(RunRecord{GameID: "hedgehog", Outcome: OutcomeCompleted, Level: "Act 3 (Boss)"})
	store.RecordRun(RunRecord{GameID: "hedgehog", Outcome: OutcomeGameOver, Level: "Act 1"})

	stats, err := store.GetGameStats("hedgehog")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, expected 1", stats.Completed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time) = %v", got)
	}
	if got := parseTime("2024-05-01 12:30:00"); !got.Equal(now) {
		t.Errorf("parseTime(string) = %v, expected %v", got, now)
	}
	if got := parseTime(42); !got.IsZero() {
		t.Errorf("parseTime(int) = %v, expected zero", got)
	}
}
