package parameter

// Player Ship
const (
	ShipWidth  = 96.0
	ShipHeight = 72.0
	ShipStartX = 912.0
	ShipStartY = 900.0

	// ShipSpeedRegular and ShipSpeedBoosted are horizontal speeds in units/sec, boosted while fast-move is active
	ShipSpeedRegular = 300.0
	ShipSpeedBoosted = 450.0

	// ShipFireDelayRegular and ShipFireDelayBoosted are seconds between shots, boosted while fast-shot is active
	ShipFireDelayRegular = 0.5
	ShipFireDelayBoosted = 0.1
)

// Boss Ship
const (
	BossWidth  = 64.0
	BossHeight = 40.0
	BossStartX = 1920.0
	BossStartY = 50.0

	BossSpeed     = 450.0
	BossFireDelay = 0.25

	// BossSleepTime is the dormancy countdown in seconds, both at match start and after each patrol
	BossSleepTime = 4.0

	// BossPatrolRightEdge is where a patrol ends and the boss goes dormant
	BossPatrolRightEdge = 1920.0

	// BossDropChance is the percent chance a defeated boss drops a powerup
	BossDropChance = 15
)
