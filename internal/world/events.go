package world

import "github.com/vovakirdan/turbo-hedgehog/internal/physics"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLevelLoaded EventKind = iota
	EventRingCollected
	EventPlayerHurt
	EventPlayerDied
	EventLifeLost
	EventGameOver
	EventEnemyDefeated
	EventBossHit
	EventBossDefeated
	EventLevelAdvanced
	EventLevelCompleted
	EventSpringLaunched
	EventMonitorBroken
)

var eventNames = [...]string{
	EventLevelLoaded:    "level loaded",
	EventRingCollected:  "ring collected",
	EventPlayerHurt:     "player hurt",
	EventPlayerDied:     "player died",
	EventLifeLost:       "life lost",
	EventGameOver:       "game over",
	EventEnemyDefeated:  "enemy defeated",
	EventBossHit:        "boss hit",
	EventBossDefeated:   "boss defeated",
	EventLevelAdvanced:  "level advanced",
	EventLevelCompleted: "level completed",
	EventSpringLaunched: "spring launched",
	EventMonitorBroken:  "monitor broken",
}

// String returns a short lowercase description.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event records one occurrence. Value carries a kind-specific count:
// rings spent for EventPlayerHurt, remaining HP for EventBossHit, lives left
// for EventLifeLost, and the score award where one applies.
type Event struct {
	Kind  EventKind
	Level LevelID
	Pos   physics.Vec2
	Value int
	Err   error // Validation problems for EventLevelLoaded
}

func (w *World) emit(kind EventKind, pos physics.Vec2, value int) {
	w.events = append(w.events, Event{Kind: kind, Level: w.level, Pos: pos, Value: value})
}
