package hedgehog

import (
	"github.com/vovakirdan/turbo-hedgehog/internal/config"
	"github.com/vovakirdan/turbo-hedgehog/internal/world"
)

// TuningFromConfig maps the YAML sections onto the simulation's tuning.
func TuningFromConfig(c config.HedgehogConfig) world.Tuning {
	return world.Tuning{
		Player: world.PlayerTuning{
			Accel:                 c.Player.Accel,
			Decel:                 c.Player.Decel,
			Friction:              c.Player.Friction,
			AirFrictionFactor:     c.Player.AirFrictionFactor,
			MaxRunSpeed:           c.Player.MaxRunSpeed,
			JumpSpeed:             c.Player.JumpSpeed,
			Gravity:               c.Player.Gravity,
			MaxFallSpeed:          c.Player.MaxFallSpeed,
			Width:                 c.Player.Width,
			Height:                c.Player.Height,
			SpinDashStopThreshold: c.SpinDash.StopThreshold,
			SpinDashChargeStep:    c.SpinDash.ChargeStep,
			SpinDashBaseLaunch:    c.SpinDash.BaseLaunch,
			SpinDashChargeScale:   c.SpinDash.ChargeScale,
			DeathPopSpeed:         c.Player.DeathPopSpeed,
			DeathInvulnerability:  c.Player.DeathInvulnerability,
			RollBlocksControl:     c.Player.RollBlocksControl,
			KeepOverspeed:         c.Player.KeepOverspeed,
		},
		Enemy: world.EnemyTuning{
			Width:  c.Hazard.EnemyWidth,
			Height: c.Hazard.EnemyHeight,
			Speed:  c.Hazard.EnemySpeed,
		},
		Boss: world.BossTuning{
			Width:              c.Boss.Width,
			Height:             c.Boss.Height,
			HP:                 c.Boss.HP,
			FastSpeed:          c.Boss.FastSpeed,
			SlowSpeed:          c.Boss.SlowSpeed,
			FastPhase:          c.Boss.FastPhase,
			Period:             c.Boss.Period,
			ArenaLeft:          c.Boss.ArenaLeft,
			ArenaRight:         c.Boss.ArenaRight,
			StompTolerance:     c.Boss.StompTolerance,
			HitScore:           c.Boss.HitScore,
			DefeatBonus:        c.Boss.DefeatBonus,
			Bounce:             c.Boss.Bounce,
			HitInvulnerability: c.Boss.HitInvulnerability,
		},
		Hazard: world.HazardTuning{
			StompTolerance:     c.Hazard.StompTolerance,
			StompBounce:        c.Hazard.StompBounce,
			EnemyScore:         c.Hazard.EnemyScore,
			HitInvulnerability: c.Hazard.HitInvulnerability,
			HurtLock:           c.Hazard.HurtLock,
			KnockbackX:         c.Hazard.KnockbackX,
			KnockbackY:         c.Hazard.KnockbackY,
		},
		Burst: world.BurstTuning{
			Max:           c.RingBurst.Max,
			MinSpeed:      c.RingBurst.MinSpeed,
			MaxSpeed:      c.RingBurst.MaxSpeed,
			UpwardBias:    c.RingBurst.UpwardBias,
			Jitter:        c.RingBurst.Jitter,
			Gravity:       c.RingBurst.Gravity,
			BounceDamping: c.RingBurst.BounceDamping,
			FrictionX:     c.RingBurst.FrictionX,
			RestThreshold: c.RingBurst.RestThreshold,
			Life:          c.RingBurst.Life,
			Size:          c.RingBurst.Size,
		},
		Level: world.LevelTuning{
			MaxDelta:         c.World.MaxDelta,
			WorldBottom:      c.World.WorldBottom,
			DeathFallMargin:  c.World.DeathFallMargin,
			RampTolerance:    c.World.RampTolerance,
			PadVelocityBound: c.World.PadVelocityBound,
			SpringLaunch:     c.World.SpringLaunch,
			MonitorRings:     c.World.MonitorRings,
			StartLives:       c.World.StartLives,
			RingValue:        c.World.RingValue,
		},
	}
}
