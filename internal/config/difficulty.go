package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, or hard)", s)
	}
}

// presetValues holds the knobs a preset turns.
type presetValues struct {
	lives              int
	hitInvulnerability float64
	burstMax           int
	enemySpeed         float64
}

var presetTable = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {lives: 5, hitInvulnerability: 3.0, burstMax: 24, enemySpeed: 45},
	DifficultyNormal: {lives: 3, hitInvulnerability: 2.0, burstMax: 20, enemySpeed: 60},
	DifficultyHard:   {lives: 2, hitInvulnerability: 1.5, burstMax: 16, enemySpeed: 80},
}

// ApplyHedgehogPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyHedgehogPreset(cfg *HedgehogConfig, preset DifficultyPreset) {
	v, ok := presetTable[preset]
	if !ok {
		return
	}
	cfg.World.StartLives = v.lives
	cfg.Hazard.HitInvulnerability = v.hitInvulnerability
	cfg.RingBurst.Max = v.burstMax
	cfg.Hazard.EnemySpeed = v.enemySpeed
}
