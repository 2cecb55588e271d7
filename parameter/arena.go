package parameter

import "time"

// Logical screen, all entity boxes use these coordinates
const (
	ScreenWidth  = 1920.0
	ScreenHeight = 1080.0

	// PlayLimitLeft and PlayLimitRight bound ship, horde and boss horizontal travel
	PlayLimitLeft  = 250.0
	PlayLimitRight = 1670.0
)

// Frame pacing for the outer loops
const (
	FrameUpdateInterval = 16 * time.Millisecond
)
