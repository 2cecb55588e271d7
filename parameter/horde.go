package parameter

// Horde Formation
const (
	HordeColumns = 11
	HordeRows    = 5
	HordeSize    = HordeColumns * HordeRows

	AlienWidth  = 32.0
	AlienHeight = 32.0
	AlienGapX   = 15.0
	AlienGapY   = 20.0

	// HordeOffsetX centers the formation horizontally
	HordeOffsetX = ScreenWidth/2 - (AlienWidth*HordeColumns+AlienGapX*(HordeColumns-1))/2
	HordeOffsetY = AlienHeight * 3

	// HordeTier1Rows and HordeTier2Rows are the row thresholds for sprite tiers, remaining rows are tier 3
	HordeTier1Rows = 2
	HordeTier2Rows = 3
)

// Horde Movement
const (
	HordeInitialSpeed  = 150.0
	HordeSpeedIncrease = 45.0
	HordeStepY         = 50.0

	// AlienFireOdds out of AlienFireRange is the per-alien per-tick chance to fire
	AlienFireOdds  = 10
	AlienFireRange = 100000

	// AlienDropChance is the percent chance a destroyed alien drops a powerup
	AlienDropChance = 100
)
