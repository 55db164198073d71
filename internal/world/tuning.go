package world

// PlayerTuning holds the player's movement constants. Values are fixed for the
// lifetime of a Player; units are pixels and seconds.
type PlayerTuning struct {
	Accel             float64 // Lateral acceleration while a direction is held
	Decel             float64 // Extra braking when the held direction opposes motion
	Friction          float64 // Ground friction with no direction held
	AirFrictionFactor float64 // Multiplier on Friction while airborne
	MaxRunSpeed       float64
	JumpSpeed         float64
	Gravity           float64
	MaxFallSpeed      float64
	Width             float64
	Height            float64

	SpinDashStopThreshold float64 // |vx| below which crouching starts a charge
	SpinDashChargeStep    float64 // Charge added per fresh jump press
	SpinDashBaseLaunch    float64
	SpinDashChargeScale   float64

	DeathPopSpeed        float64 // Upward speed applied on death (negative is up)
	DeathInvulnerability float64

	// RollBlocksControl disables lateral input while rolling at speed.
	// Charging always blocks it.
	RollBlocksControl bool

	// KeepOverspeed lets speed above MaxRunSpeed survive a held direction.
	// By default holding a direction clamps to MaxRunSpeed.
	KeepOverspeed bool
}

// EnemyTuning holds patrol enemy constants.
type EnemyTuning struct {
	Width  float64
	Height float64
	Speed  float64
}

// BossTuning holds boss constants.
type BossTuning struct {
	Width      float64
	Height     float64
	HP         int
	FastSpeed  float64
	SlowSpeed  float64
	FastPhase  float64 // Seconds of fast movement at the start of each period
	Period     float64
	ArenaLeft  float64
	ArenaRight float64

	StompTolerance     float64
	HitScore           int
	DefeatBonus        int
	Bounce             float64
	HitInvulnerability float64
}

// HazardTuning controls enemy contact and the damage transition.
type HazardTuning struct {
	StompTolerance     float64
	StompBounce        float64
	EnemyScore         int
	HitInvulnerability float64
	HurtLock           float64
	KnockbackX         float64
	KnockbackY         float64
}

// BurstTuning controls the radial ring burst spawned on damage.
type BurstTuning struct {
	Max           int
	MinSpeed      float64
	MaxSpeed      float64
	UpwardBias    float64
	Jitter        float64 // Max angular jitter in radians, centered on each slot
	Gravity       float64
	BounceDamping float64 // Vertical restitution on a floor hit
	FrictionX     float64 // Horizontal multiplier on a floor hit
	RestThreshold float64 // |vy| below this snaps to zero after a bounce
	Life          float64
	Size          float64
}

// LevelTuning holds world-level constants.
type LevelTuning struct {
	MaxDelta         float64
	WorldBottom      float64
	DeathFallMargin  float64
	RampTolerance    float64
	PadVelocityBound float64
	SpringLaunch     float64
	MonitorRings     int
	StartLives       int
	RingValue        int
}

// Tuning aggregates every constant the simulation reads.
type Tuning struct {
	Player PlayerTuning
	Enemy  EnemyTuning
	Boss   BossTuning
	Hazard HazardTuning
	Burst  BurstTuning
	Level  LevelTuning
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Accel:                 1400,
			Decel:                 1800,
			Friction:              2200,
			AirFrictionFactor:     0.25,
			MaxRunSpeed:           420,
			JumpSpeed:             560,
			Gravity:               1800,
			MaxFallSpeed:          1200,
			Width:                 26,
			Height:                34,
			SpinDashStopThreshold: 30,
			SpinDashChargeStep:    0.25,
			SpinDashBaseLaunch:    480,
			SpinDashChargeScale:   420,
			DeathPopSpeed:         -620,
			DeathInvulnerability:  1e6,
		},
		Enemy: EnemyTuning{
			Width:  28,
			Height: 20,
			Speed:  60,
		},
		Boss: BossTuning{
			Width:              64,
			Height:             48,
			HP:                 8,
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
		Hazard: HazardTuning{
			StompTolerance:     14,
			StompBounce:        -340,
			EnemyScore:         100,
			HitInvulnerability: 2.0,
			HurtLock:           0.6,
			KnockbackX:         220,
			KnockbackY:         -360,
		},
		Burst: BurstTuning{
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
		Level: LevelTuning{
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
	}
}
