package config

import (
	_ "embed"
)

//go:embed defaults/hedgehog.yaml
var defaultHedgehogYAML []byte

// DefaultHedgehogConfig returns the hardcoded default configuration.
func DefaultHedgehogConfig() HedgehogConfig {
	return HedgehogConfig{
		Player: PlayerConfig{
			Accel:                1400,
			Decel:                1800,
			Friction:             2200,
			AirFrictionFactor:    0.25,
			MaxRunSpeed:          420,
			JumpSpeed:            560,
			Gravity:              1800,
			MaxFallSpeed:         1200,
			Width:                26,
			Height:               34,
			DeathPopSpeed:        -620,
			DeathInvulnerability: 1e6,
			RollBlocksControl:    false,
			KeepOverspeed:        false,
		},
		SpinDash: SpinDashConfig{
			StopThreshold: 30,
			ChargeStep:    0.25,
			BaseLaunch:    480,
			ChargeScale:   420,
		},
		Hazard: HazardConfig{
			EnemySpeed:         60,
			EnemyWidth:         28,
			EnemyHeight:        20,
			StompTolerance:     14,
			StompBounce:        -340,
			EnemyScore:         100,
			HitInvulnerability: 2.0,
			HurtLock:           0.6,
			KnockbackX:         220,
			KnockbackY:         -360,
		},
		Boss: BossConfig{
			HP:                 8,
			Width:              64,
			Height:             48,
			FastSpeed:          190,
			SlowSpeed:          90,
			FastPhase:          0.8,
			Period:             3.2,
			ArenaLeft:          2940,
			ArenaRight:         3620,
			StompTolerance:     24,
			HitScore:           200,
			DefeatBonus:        1000,
			Bounce:             -420,
			HitInvulnerability: 0.6,
		},
		RingBurst: RingBurstConfig{
			Max:           20,
			MinSpeed:      180,
			MaxSpeed:      320,
			UpwardBias:    -200,
			Jitter:        0.35,
			Gravity:       1500,
			BounceDamping: 0.6,
			FrictionX:     0.85,
			RestThreshold: 40,
			Life:          2.5,
			Size:          14,
		},
		World: WorldConfig{
			MaxDelta:         0.05,
			WorldBottom:      900,
			DeathFallMargin:  120,
			RampTolerance:    12,
			PadVelocityBound: 900,
			SpringLaunch:     920,
			MonitorRings:     10,
			StartLives:       3,
			RingValue:        10,
		},
		Render: RenderConfig{
			CellWidth:    16,
			CellHeight:   32,
			WindowWidth:  960,
			WindowHeight: 540,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHedgehogYAML
}
