package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHedgehogConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultHedgehogConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultHedgehogConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadHedgehogCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "player:\n  gravity: 2000\nworld:\n  start_lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadHedgehog(path)
	if err != nil {
		t.Fatalf("LoadHedgehog() error = %v", err)
	}
	if cfg.Player.Gravity != 2000 {
		t.Errorf("Player.Gravity = %v, expected 2000", cfg.Player.Gravity)
	}
	if cfg.World.StartLives != 7 {
		t.Errorf("World.StartLives = %d, expected 7", cfg.World.StartLives)
	}
	if cfg.Player.JumpSpeed != 560 {
		t.Errorf("Player.JumpSpeed = %v, expected default 560", cfg.Player.JumpSpeed)
	}
}

func TestLoadHedgehogCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		want    string
	}{
		{name: "missing file", create: false, want: "failed to read config"},
		{name: "malformed yaml", content: "player: [1, 2", create: true, want: "failed to parse config"},
		{name: "invalid values", content: "player:\n  gravity: -1\n", create: true, want: "player.gravity"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if tc.create {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatalf("WriteFile() error = %v", err)
				}
			}
			cfg, err := LoadHedgehog(path)
			if err == nil {
				t.Fatal("LoadHedgehog() error = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadHedgehog() error = %q, expected it to contain %q", err, tc.want)
			}
			if !reflect.DeepEqual(cfg, DefaultHedgehogConfig()) {
				t.Error("LoadHedgehog() on error should return defaults")
			}
		})
	}
}

func TestLoadHedgehogSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadHedgehog("")
	if err != nil {
		t.Fatalf("LoadHedgehog() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHedgehogConfig()) {
		t.Error("LoadHedgehog() without files should return embedded defaults")
	}

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(local, ConfigFile), []byte("boss:\n  hp: 4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, _ = LoadHedgehog("")
	if cfg.Boss.HP != 4 {
		t.Errorf("local config Boss.HP = %d, expected 4", cfg.Boss.HP)
	}

	user := filepath.Join(home, ".hedgehog", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(user, ConfigFile), []byte("boss:\n  hp: 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, _ = LoadHedgehog("")
	if cfg.Boss.HP != 12 {
		t.Errorf("user config Boss.HP = %d, expected 12 (user dir wins over local)", cfg.Boss.HP)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *HedgehogConfig)
		field  string
	}{
		{"zero gravity", func(c *HedgehogConfig) { c.Player.Gravity = 0 }, "player.gravity"},
		{"negative width", func(c *HedgehogConfig) { c.Player.Width = -3 }, "player.width"},
		{"zero period", func(c *HedgehogConfig) { c.Boss.Period = 0 }, "boss.period"},
		{"no lives", func(c *HedgehogConfig) { c.World.StartLives = 0 }, "world.start_lives"},
		{"no boss hp", func(c *HedgehogConfig) { c.Boss.HP = 0 }, "boss.hp"},
		{"negative burst", func(c *HedgehogConfig) { c.RingBurst.Max = -1 }, "ring_burst.max"},
		{"inverted speeds", func(c *HedgehogConfig) { c.RingBurst.MaxSpeed = 10 }, "ring_burst.max_speed"},
		{"inverted arena", func(c *HedgehogConfig) { c.Boss.ArenaRight = 0 }, "boss.arena_right"},
		{"zero charge step", func(c *HedgehogConfig) { c.SpinDash.ChargeStep = 0 }, "spin_dash.charge_step"},
		{"negative charge step", func(c *HedgehogConfig) { c.SpinDash.ChargeStep = -0.25 }, "spin_dash.charge_step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHedgehogConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %q, expected mention of %s", err, tc.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"NORMAL", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestApplyHedgehogPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		invuln     float64
		burstMax   int
		enemySpeed float64
	}{
		{DifficultyEasy, 5, 3.0, 24, 45},
		{DifficultyNormal, 3, 2.0, 20, 60},
		{DifficultyHard, 2, 1.5, 16, 80},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultHedgehogConfig()
			ApplyHedgehogPreset(&cfg, tc.preset)
			if cfg.World.StartLives != tc.lives {
				t.Errorf("StartLives = %d, expected %d", cfg.World.StartLives, tc.lives)
			}
			if cfg.Hazard.HitInvulnerability != tc.invuln {
				t.Errorf("HitInvulnerability = %v, expected %v", cfg.Hazard.HitInvulnerability, tc.invuln)
			}
			if cfg.RingBurst.Max != tc.burstMax {
				t.Errorf("RingBurst.Max = %d, expected %d", cfg.RingBurst.Max, tc.burstMax)
			}
			if cfg.Hazard.EnemySpeed != tc.enemySpeed {
				t.Errorf("EnemySpeed = %v, expected %v", cfg.Hazard.EnemySpeed, tc.enemySpeed)
			}
		})
	}

	cfg := DefaultHedgehogConfig()
	ApplyHedgehogPreset(&cfg, "bogus")
	if !reflect.DeepEqual(cfg, DefaultHedgehogConfig()) {
		t.Error("ApplyHedgehogPreset() with unknown preset changed the config")
	}
}
