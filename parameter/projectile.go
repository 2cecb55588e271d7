package parameter

// Projectiles
const (
	BulletWidth  = 4.0
	BulletHeight = 32.0

	PowerupSize = 25.0

	// ProjectileSpeed applies to bullets and falling powerups, units/sec
	ProjectileSpeed = 600.0
)

// Powerups
const (
	// PowerupDuration is the effect duration in seconds, refreshed on every pickup
	PowerupDuration = 60.0

	// PowerupKindRange and PowerupFastMoveBelow split drops: draws below the threshold are fast-move, the rest fast-shot
	PowerupKindRange     = 100
	PowerupFastMoveBelow = 50

	// DropRollRange is the range drop chances are rolled against
	DropRollRange = 100
)
