package system

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

// HordeSystem moves the formation as one rigid body and rolls alien fire
// Reaching a play limit clamps the move to the edge, reverses and speeds up the horde, and steps it down
type HordeSystem struct{}

// NewHordeSystem creates the horde system
func NewHordeSystem() engine.System {
	return &HordeSystem{}
}

func (s *HordeSystem) Name() string { return "horde" }

func (s *HordeSystem) Priority() int { return parameter.PriorityHorde }

func (s *HordeSystem) Update(g *engine.Game, dt time.Duration) {
	m := g.Match
	t := g.Tuning

	front := m.Horde.Front()
	if front == nil {
		return
	}

	move, flipped := s.displacement(m, t, front, dt.Seconds())

	for a := front; a != nil; a = a.Next() {
		if g.Rand.Intn(t.AlienFireRange) < t.AlienFireOdds {
			entity.SpawnBullet(m.Bullets, a.CenterX(), a.Bottom(), false)
			g.Audio.Play(engine.CueAlienFire)
		}

		a.X += move
		if flipped {
			a.Y += t.HordeStepY
		}
	}
}

// displacement computes this frame's shared x offset and applies any reversal to the horde speed
func (s *HordeSystem) displacement(m *engine.Match, t engine.Tuning, front *entity.Entity, sec float64) (float64, bool) {
	step := m.HordeSpeed * sec

	if m.HordeSpeed > 0 {
		rightmost := front
		for a := front.Next(); a != nil; a = a.Next() {
			if a.X > rightmost.X {
				rightmost = a
			}
		}
		if rightmost.Right()+step >= t.LimitRight {
			m.HordeSpeed = -(m.HordeSpeed + t.HordeSpeedIncrease)
			return t.LimitRight - rightmost.Right(), true
		}
		return step, false
	}

	leftmost := front
	for a := front.Next(); a != nil; a = a.Next() {
		if a.X < leftmost.X {
			leftmost = a
		}
	}
	if leftmost.X+step <= t.LimitLeft {
		m.HordeSpeed = -m.HordeSpeed + t.HordeSpeedIncrease
		return t.LimitLeft - leftmost.X, true
	}
	return step, false
}
