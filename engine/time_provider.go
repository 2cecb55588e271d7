package engine

import "time"

// Clock is the single source of wall-clock time for the simulation and input tracking
type Clock interface {
	Now() time.Time
}

// TimeProvider is the production Clock
// time.Now carries a monotonic reading, so frame deltas survive wall-clock jumps
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (*TimeProvider) Now() time.Time {
	return time.Now()
}
