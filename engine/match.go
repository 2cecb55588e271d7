package engine

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
)

// Effect is a timed powerup buff
type Effect struct {
	Remaining float64 // Seconds
	Active    bool
}

// Activate (re)starts the effect with the full duration
func (e *Effect) Activate(duration float64) {
	e.Remaining = duration
	e.Active = true
}

// Tick consumes dt seconds, deactivating once nothing remains
func (e *Effect) Tick(dt float64) {
	if !e.Active {
		return
	}
	e.Remaining -= dt
	if e.Remaining <= 0 {
		e.Active = false
	}
}

// Timers holds the per-match wall-clock state
type Timers struct {
	ShipLastShot time.Time // Zero until the first shot
	BossLastShot time.Time
	BossDormancy float64 // Seconds until the boss wakes

	FastMove Effect
	FastShot Effect
}

// Match owns every entity and timer of one round
// Nothing outside a Match holds entity pointers across frames
type Match struct {
	Ship *entity.Entity
	Boss *entity.Entity

	Horde    *entity.List
	Bullets  *entity.List // Fired by any side, direction disambiguates
	Powerups *entity.List

	// LastAlive tracks the back of the horde; it must change in the same step as horde removals
	LastAlive *entity.Entity

	// HordeSpeed is signed, positive moves right
	HordeSpeed float64

	BossActive    bool
	BossDefeated  bool
	BossGoingLeft bool

	Timers Timers
}

// NewMatch builds the start-of-round state
func NewMatch(t Tuning) *Match {
	horde, last := entity.NewHorde()
	return &Match{
		Ship:          entity.NewPlayerShip(),
		Boss:          entity.NewBossShip(),
		Horde:         horde,
		Bullets:       entity.NewList(),
		Powerups:      entity.NewList(),
		LastAlive:     last,
		HordeSpeed:    t.HordeInitialSpeed,
		BossGoingLeft: true,
		Timers: Timers{
			BossDormancy: t.BossSleepTime,
		},
	}
}

// Teardown releases every container; the match is unusable afterwards
func (m *Match) Teardown() {
	m.Horde.Destroy()
	m.Bullets.Destroy()
	m.Powerups.Destroy()
	m.LastAlive = nil
	m.Ship = nil
	m.Boss = nil
}

// BossPatrolling reports whether the boss is on screen and can act
func (m *Match) BossPatrolling() bool {
	return m.BossActive && !m.BossDefeated
}
