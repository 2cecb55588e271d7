package engine

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"

// Tuning is the read-only match configuration, copied from parameter at startup
type Tuning struct {
	ScreenHeight float64

	// Horizontal travel limits shared by ship, horde and boss
	LimitLeft  float64
	LimitRight float64

	ShipSpeedRegular     float64
	ShipSpeedBoosted     float64
	ShipFireDelayRegular float64
	ShipFireDelayBoosted float64

	BossSpeed      float64
	BossFireDelay  float64
	BossSleepTime  float64
	BossRightEdge  float64
	BossDropChance int

	HordeInitialSpeed  float64
	HordeSpeedIncrease float64
	HordeStepY         float64
	AlienFireOdds      int
	AlienFireRange     int
	AlienDropChance    int

	BulletSpeed     float64
	PowerupSpeed    float64
	PowerupDuration float64
}

// DefaultTuning returns the fixed game constants
func DefaultTuning() Tuning {
	return Tuning{
		ScreenHeight: parameter.ScreenHeight,

		LimitLeft:  parameter.PlayLimitLeft,
		LimitRight: parameter.PlayLimitRight,

		ShipSpeedRegular:     parameter.ShipSpeedRegular,
		ShipSpeedBoosted:     parameter.ShipSpeedBoosted,
		ShipFireDelayRegular: parameter.ShipFireDelayRegular,
		ShipFireDelayBoosted: parameter.ShipFireDelayBoosted,

		BossSpeed:      parameter.BossSpeed,
		BossFireDelay:  parameter.BossFireDelay,
		BossSleepTime:  parameter.BossSleepTime,
		BossRightEdge:  parameter.BossPatrolRightEdge,
		BossDropChance: parameter.BossDropChance,

		HordeInitialSpeed:  parameter.HordeInitialSpeed,
		HordeSpeedIncrease: parameter.HordeSpeedIncrease,
		HordeStepY:         parameter.HordeStepY,
		AlienFireOdds:      parameter.AlienFireOdds,
		AlienFireRange:     parameter.AlienFireRange,
		AlienDropChance:    parameter.AlienDropChance,

		BulletSpeed:     parameter.ProjectileSpeed,
		PowerupSpeed:    parameter.ProjectileSpeed,
		PowerupDuration: parameter.PowerupDuration,
	}
}
