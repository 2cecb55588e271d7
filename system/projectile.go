package system

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

// ProjectileSystem moves every entity of one container vertically and prunes those that left the screen
// The same routine serves bullets and powerups
type ProjectileSystem struct {
	name     string
	priority int
	list     func(m *engine.Match) *entity.List
	speed    func(t engine.Tuning) float64
}

// NewBulletSystem moves bullets in their travel direction
func NewBulletSystem() engine.System {
	return &ProjectileSystem{
		name:     "bullets",
		priority: parameter.PriorityBullets,
		list:     func(m *engine.Match) *entity.List { return m.Bullets },
		speed:    func(t engine.Tuning) float64 { return t.BulletSpeed },
	}
}

// NewPowerupSystem makes dropped powerups fall
func NewPowerupSystem() engine.System {
	return &ProjectileSystem{
		name:     "powerups",
		priority: parameter.PriorityPowerups,
		list:     func(m *engine.Match) *entity.List { return m.Powerups },
		speed:    func(t engine.Tuning) float64 { return t.PowerupSpeed },
	}
}

func (s *ProjectileSystem) Name() string { return s.name }

func (s *ProjectileSystem) Priority() int { return s.priority }

func (s *ProjectileSystem) Update(g *engine.Game, dt time.Duration) {
	l := s.list(g.Match)
	step := s.speed(g.Tuning) * dt.Seconds()
	bottom := g.Tuning.ScreenHeight

	for e := l.Front(); e != nil; {
		next := e.Next()

		if e.MovingUp {
			e.Y -= step
		} else {
			e.Y += step
		}

		// Below the bottom edge or fully above the top edge
		if e.Y > bottom || e.Bottom() < 0 {
			l.Remove(e)
		}

		e = next
	}
}
