package parameter

// System Execution Priorities (lower runs first)
// Collisions resolve against last frame's positions before anything moves
const (
	PriorityCollision = 10
	PriorityShip      = 20
	PriorityHorde     = 30
	PriorityBoss      = 40
	PriorityBullets   = 50 // After every shooter, so new shots move on their first frame
	PriorityPowerups  = 60
)
