// Package config provides YAML-based tuning for the hedgehog simulation,
// with embedded defaults, a user/local search path, and difficulty presets.
package config

// HedgehogConfig contains all tunable constants of the game.
type HedgehogConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	SpinDash  SpinDashConfig  `yaml:"spin_dash"`
	Hazard    HazardConfig    `yaml:"hazard"`
	Boss      BossConfig      `yaml:"boss"`
	RingBurst RingBurstConfig `yaml:"ring_burst"`
	World     WorldConfig     `yaml:"world"`
	Render    RenderConfig    `yaml:"render"`
}

// PlayerConfig defines player movement physics.
type PlayerConfig struct {
	Accel                float64 `yaml:"accel"`
	Decel                float64 `yaml:"decel"`
	Friction             float64 `yaml:"friction"`
	AirFrictionFactor    float64 `yaml:"air_friction_factor"`
	MaxRunSpeed          float64 `yaml:"max_run_speed"`
	JumpSpeed            float64 `yaml:"jump_speed"`
	Gravity              float64 `yaml:"gravity"`
	MaxFallSpeed         float64 `yaml:"max_fall_speed"`
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	DeathPopSpeed        float64 `yaml:"death_pop_speed"`
	DeathInvulnerability float64 `yaml:"death_invulnerability"`
	RollBlocksControl    bool    `yaml:"roll_blocks_control"`
	KeepOverspeed        bool    `yaml:"keep_overspeed"`
}

// SpinDashConfig defines the charge-and-release dash.
type SpinDashConfig struct {
	StopThreshold float64 `yaml:"stop_threshold"` // Max |vx| that still starts a charge
	ChargeStep    float64 `yaml:"charge_step"`
	BaseLaunch    float64 `yaml:"base_launch"`
	ChargeScale   float64 `yaml:"charge_scale"`
}

// HazardConfig defines enemies and what touching them does.
type HazardConfig struct {
	EnemySpeed         float64 `yaml:"enemy_speed"`
	EnemyWidth         float64 `yaml:"enemy_width"`
	EnemyHeight        float64 `yaml:"enemy_height"`
	StompTolerance     float64 `yaml:"stomp_tolerance"`
	StompBounce        float64 `yaml:"stomp_bounce"`
	EnemyScore         int     `yaml:"enemy_score"`
	HitInvulnerability float64 `yaml:"hit_invulnerability"`
	HurtLock           float64 `yaml:"hurt_lock"`
	KnockbackX         float64 `yaml:"knockback_x"`
	KnockbackY         float64 `yaml:"knockback_y"`
}

// BossConfig defines the boss and its arena.
type BossConfig struct {
	HP                 int     `yaml:"hp"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	FastSpeed          float64 `yaml:"fast_speed"`
	SlowSpeed          float64 `yaml:"slow_speed"`
	FastPhase          float64 `yaml:"fast_phase"`
	Period             float64 `yaml:"period"`
	ArenaLeft          float64 `yaml:"arena_left"`
	ArenaRight         float64 `yaml:"arena_right"`
	StompTolerance     float64 `yaml:"stomp_tolerance"`
	HitScore           int     `yaml:"hit_score"`
	DefeatBonus        int     `yaml:"defeat_bonus"`
	Bounce             float64 `yaml:"bounce"`
	HitInvulnerability float64 `yaml:"hit_invulnerability"`
}

// RingBurstConfig defines the rings scattered on damage.
type RingBurstConfig struct {
	Max           int     `yaml:"max"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	UpwardBias    float64 `yaml:"upward_bias"`
	Jitter        float64 `yaml:"jitter"` // Radians
	Gravity       float64 `yaml:"gravity"`
	BounceDamping float64 `yaml:"bounce_damping"`
	FrictionX     float64 `yaml:"friction_x"`
	RestThreshold float64 `yaml:"rest_threshold"`
	Life          float64 `yaml:"life"`
	Size          float64 `yaml:"size"`
}

// WorldConfig defines level-wide rules.
type WorldConfig struct {
	MaxDelta         float64 `yaml:"max_delta"`
	WorldBottom      float64 `yaml:"world_bottom"`
	DeathFallMargin  float64 `yaml:"death_fall_margin"`
	RampTolerance    float64 `yaml:"ramp_tolerance"`
	PadVelocityBound float64 `yaml:"pad_velocity_bound"`
	SpringLaunch     float64 `yaml:"spring_launch"`
	MonitorRings     int     `yaml:"monitor_rings"`
	StartLives       int     `yaml:"start_lives"`
	RingValue        int     `yaml:"ring_value"`
}

// RenderConfig defines how world pixels map onto frontends.
type RenderConfig struct {
	CellWidth    float64 `yaml:"cell_width"`  // World pixels per terminal column
	CellHeight   float64 `yaml:"cell_height"` // World pixels per terminal row
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
}
