package system

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/status"
)

// ShipSystem ticks powerup timers, moves the player ship and handles fire requests
type ShipSystem struct{}

// NewShipSystem creates the player ship system
func NewShipSystem() engine.System {
	return &ShipSystem{}
}

func (s *ShipSystem) Name() string { return "ship" }

func (s *ShipSystem) Priority() int { return parameter.PriorityShip }

func (s *ShipSystem) Update(g *engine.Game, dt time.Duration) {
	m := g.Match
	t := g.Tuning
	sec := dt.Seconds()
	in := g.Input()

	m.Timers.FastShot.Tick(sec)
	m.Timers.FastMove.Tick(sec)

	speed := t.ShipSpeedRegular
	if m.Timers.FastMove.Active {
		speed = t.ShipSpeedBoosted
	}
	step := speed * sec
	ship := m.Ship

	if in.Right {
		if ship.Right()+step >= t.LimitRight {
			ship.X = t.LimitRight - ship.Width
		} else {
			ship.X += step
		}
	}
	if in.Left {
		if ship.X-step <= t.LimitLeft {
			ship.X = t.LimitLeft
		} else {
			ship.X -= step
		}
	}

	if in.Fire {
		s.fire(g)
	}
}

// fire spawns an upward bullet unless the cooldown since the last shot is still running
func (s *ShipSystem) fire(g *engine.Game) {
	m := g.Match
	delay := g.Tuning.ShipFireDelayRegular
	if m.Timers.FastShot.Active {
		delay = g.Tuning.ShipFireDelayBoosted
	}

	now := g.Now()
	if now.Sub(m.Timers.ShipLastShot).Seconds() <= delay {
		return
	}

	entity.SpawnBullet(m.Bullets, m.Ship.CenterX(), m.Ship.Y, true)
	m.Timers.ShipLastShot = now
	g.Audio.Play(engine.CueShipFire)
	g.Stats.Inc(status.ShotsFired)
}
