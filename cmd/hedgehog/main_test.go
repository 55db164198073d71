package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/turbo-hedgehog/internal/games/hedgehog"
	"github.com/vovakirdan/turbo-hedgehog/internal/storage"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

func TestSimulateIsDeterministic(t *testing.T) {
	opts := simOptions{Script: hedgehog.DefaultScript(), Ticks: 900, Act: 1, Seed: 7, FPS: 60}

	a, err := simulate(opts)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	b, err := simulate(opts)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if a != b {
		t.Errorf("simulate() = %+v, expected %+v", b, a)
	}
	if a.State == world.StateTitle {
		t.Error("default script should start a game")
	}
}

func TestSimulateTickLimit(t *testing.T) {
	res, err := simulate(simOptions{Script: hedgehog.DefaultScript(), Ticks: 10, Act: 1, Seed: 1})
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if res.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", res.Ticks)
	}
}

func TestSimulateStartAct(t *testing.T) {
	res, err := simulate(simOptions{Script: hedgehog.DefaultScript(), Ticks: 30, Act: 3, Seed: 1})
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if res.Level != world.Act3Boss {
		t.Errorf("Level = %v, expected %v", res.Level, world.Act3Boss)
	}
	if res.State != world.StatePlaying {
		t.Errorf("State = %v, expected %v", res.State, world.StatePlaying)
	}
}

func TestSimulateRejectsBadAct(t *testing.T) {
	for _, act := range []int{0, 4, -1} {
		if _, err := simulate(simOptions{Act: act}); !errors.Is(err, errBadAct) {
			t.Errorf("simulate(act=%d) error = %v, expected errBadAct", act, err)
		}
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, hedgehog.RunResult{Ticks: 5, State: world.StateGameOver, Level: world.Act2, Score: 300, Hash: 0xabc})

	out := buf.String()
	for _, want := range []string{"ticks:  5", "state:  GameOver", "act:    Act 2", "score:  300", "hash:   0000000000000abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintLevels(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, world.StandardCatalog{}, world.DefaultTuning())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4+len(world.Levels) {
		t.Fatalf("got %d lines, expected %d:\n%s", len(lines), 4+len(world.Levels), buf.String())
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "Act 3 (Boss)") || !strings.Contains(last, "yes") {
		t.Errorf("last act line = %q, expected the boss act", last)
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printScores(&buf, store); err != nil {
		t.Fatalf("printScores() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty store output = %q", buf.String())
	}

	for _, s := range []int{120, 940} {
		if _, err := store.SaveScore(hedgehog.ID, s); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}
	buf.Reset()
	if err := printScores(&buf, store); err != nil {
		t.Fatalf("printScores() error = %v", err)
	}
	out := buf.String()
	first := strings.Index(out, "940")
	second := strings.Index(out, "120")
	if first < 0 || second < 0 || first > second {
		t.Errorf("scores not listed best first:\n%s", out)
	}
	if !strings.Contains(out, "Best: 940") {
		t.Errorf("output missing best score:\n%s", out)
	}
}

func TestPrintRuns(t *testing.T) {
	store := openTestStore(t)
	_, err := store.RecordRun(storage.RunRecord{
		GameID:  hedgehog.ID,
		Outcome: storage.OutcomeCompleted,
		Level:   world.Act3Boss.String(),
		Score:   2100,
		Rings:   33,
	})
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	var buf bytes.Buffer
	if err := printRuns(&buf, store); err != nil {
		t.Fatalf("printRuns() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"completed", "Act 3 (Boss)", "2100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLogger("loud", ""); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
	l, err := newLogger("debug", filepath.Join(t.TempDir(), "hedgehog.log"))
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	l.Debug("hello")
	closeLogFile()
}

func TestCloseLogFileReleasesHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedgehog.log")
	l, err := newLogger("info", path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logFile == nil {
		t.Fatal("newLogger() should keep the log file handle")
	}
	f := logFile
	l.Info("written")

	closeLogFile()
	if logFile != nil {
		t.Error("closeLogFile() should clear the handle")
	}
	if err := f.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Close() after closeLogFile() = %v, expected %v", err, os.ErrClosed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("log file = %q, expected the logged message", data)
	}

	closeLogFile()
}

func TestNewLoggerStderrKeepsNoHandle(t *testing.T) {
	if _, err := newLogger("warn", ""); err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logFile != nil {
		t.Error("logging to stderr should not hold a file handle")
	}
}
