package engine

import "time"

// System is one phase of the per-frame simulation step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(g *Game, dt time.Duration)
}
