package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "hedgehog.yaml"

// LoadHedgehog loads the game configuration.
// Search order: customPath -> ~/.hedgehog/configs/hedgehog.yaml -> ./configs/hedgehog.yaml -> embedded default
//
// Files are layered over the hardcoded defaults, so a file only needs the
// keys it changes.
func LoadHedgehog(customPath string) (HedgehogConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHedgehogConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultHedgehogConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultHedgehogYAML)
	if err != nil {
		return DefaultHedgehogConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (HedgehogConfig, error) {
	cfg := DefaultHedgehogConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hedgehog", "configs", filename)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c HedgehogConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("player.gravity", c.Player.Gravity)
	positive("player.max_fall_speed", c.Player.MaxFallSpeed)
	positive("player.max_run_speed", c.Player.MaxRunSpeed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("spin_dash.charge_step", c.SpinDash.ChargeStep)
	positive("hazard.enemy_width", c.Hazard.EnemyWidth)
	positive("hazard.enemy_height", c.Hazard.EnemyHeight)
	positive("boss.width", c.Boss.Width)
	positive("boss.height", c.Boss.Height)
	positive("boss.period", c.Boss.Period)
	positive("ring_burst.size", c.RingBurst.Size)
	positive("ring_burst.life", c.RingBurst.Life)
	positive("world.max_delta", c.World.MaxDelta)
	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	if c.Boss.HP < 1 {
		errs = append(errs, fmt.Errorf("%w: boss.hp must be at least 1, got %d", ErrInvalidConfig, c.Boss.HP))
	}
	if c.World.StartLives < 1 {
		errs = append(errs, fmt.Errorf("%w: world.start_lives must be at least 1, got %d", ErrInvalidConfig, c.World.StartLives))
	}
	if c.RingBurst.Max < 0 {
		errs = append(errs, fmt.Errorf("%w: ring_burst.max must not be negative, got %d", ErrInvalidConfig, c.RingBurst.Max))
	}
	if c.RingBurst.MaxSpeed < c.RingBurst.MinSpeed {
		errs = append(errs, fmt.Errorf("%w: ring_burst.max_speed %v below min_speed %v", ErrInvalidConfig, c.RingBurst.MaxSpeed, c.RingBurst.MinSpeed))
	}
	if c.Boss.ArenaRight < c.Boss.ArenaLeft {
		errs = append(errs, fmt.Errorf("%w: boss.arena_right %v left of arena_left %v", ErrInvalidConfig, c.Boss.ArenaRight, c.Boss.ArenaLeft))
	}
	return errors.Join(errs...)
}
