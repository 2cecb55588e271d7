// Package status collects session statistics written by the simulation and read by the frontends.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter names
const (
	ShotsFired        = "shots_fired"
	AliensDestroyed   = "aliens_destroyed"
	BossesDestroyed   = "bosses_destroyed"
	PowerupsCollected = "powerups_collected"
	RoundsWon         = "rounds_won"
	RoundsLost        = "rounds_lost"
)

// Gauge names
const (
	FrameMillis = "frame_ms"
)

// Registry holds counters and gauges for one session; it survives restarts
type Registry struct {
	Counters *Table[atomic.Int64]
	Gauges   *Table[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewTable[atomic.Int64](),
		Gauges:   NewTable[Gauge](),
	}
}

// Inc bumps a counter by one
func (r *Registry) Inc(name string) {
	r.Counters.Entry(name).Add(1)
}

// Count reads a counter, zero if never written
func (r *Registry) Count(name string) int64 {
	return r.Counters.Entry(name).Load()
}

// Set writes a gauge
func (r *Registry) Set(name string, v float64) {
	r.Gauges.Entry(name).Set(v)
}

// Summary renders all counters as "name=value" pairs in name order
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Counters.Each(func(name string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", name, v.Load())
	})
	return b.String()
}
