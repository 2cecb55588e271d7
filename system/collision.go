package system

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/physics"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/status"
)

// CollisionSystem resolves bullet and powerup overlaps before movement
// Bullets are swept first, then powerups; a round-ending hit stops the sweep
type CollisionSystem struct{}

// NewCollisionSystem creates the collision sweep
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

// Update runs one sweep over bullets then powerups
func (s *CollisionSystem) Update(g *engine.Game, _ time.Duration) {
	if !s.sweepBullets(g) {
		return
	}
	s.sweepPowerups(g)
}

// sweepBullets returns false when the round ended mid-sweep
func (s *CollisionSystem) sweepBullets(g *engine.Game) bool {
	m := g.Match

	for b := m.Bullets.Front(); b != nil; {
		next := b.Next()

		if b.MovingUp {
			if alien := firstHit(m.Horde, b); alien != nil {
				if s.destroyAlien(g, b, alien) {
					return false
				}
			} else if m.BossPatrolling() && physics.Hits(b, m.Boss) {
				// A dormant or defeated boss keeps its box; without the gate it would soak up shots
				s.destroyBoss(g, b)
			}
		} else if physics.Hits(m.Ship, b) {
			m.Bullets.Remove(b)
			g.Audio.Play(engine.CueShipExplosion)
			g.Lose()
			return false
		}

		b = next
	}

	return true
}

// firstHit returns the first alien in traversal order overlapping b
func firstHit(horde *entity.List, b *entity.Entity) *entity.Entity {
	for a := horde.Front(); a != nil; a = a.Next() {
		if physics.Hits(b, a) {
			return a
		}
	}
	return nil
}

// destroyAlien removes both entities and reports whether the horde is gone
func (s *CollisionSystem) destroyAlien(g *engine.Game, bullet, alien *entity.Entity) bool {
	m := g.Match
	t := g.Tuning

	dropRoll := g.Rand.Intn(parameter.DropRollRange)

	cleared := false
	if alien == m.LastAlive {
		m.LastAlive = alien.Prev()
		cleared = m.LastAlive == nil
	}

	dropX, dropY := alien.CenterX(), alien.Bottom()
	m.Bullets.Remove(bullet)
	m.Horde.Remove(alien)
	g.Audio.Play(engine.CueAlienExplosion)
	g.Stats.Inc(status.AliensDestroyed)

	if cleared {
		g.Win()
		return true
	}

	if dropRoll < t.AlienDropChance {
		entity.SpawnPowerup(m.Powerups, dropX, dropY, g.Rand)
	}
	return false
}

func (s *CollisionSystem) destroyBoss(g *engine.Game, bullet *entity.Entity) {
	m := g.Match

	if g.Rand.Intn(parameter.DropRollRange) < g.Tuning.BossDropChance {
		entity.SpawnPowerup(m.Powerups, m.Boss.CenterX(), m.Boss.Bottom(), g.Rand)
	}

	m.BossActive = false
	m.BossDefeated = true
	m.Bullets.Remove(bullet)

	g.Audio.StopLoop(engine.LoopBoss)
	g.Audio.Play(engine.CueShipExplosion)
	g.Stats.Inc(status.BossesDestroyed)
}

func (s *CollisionSystem) sweepPowerups(g *engine.Game) {
	m := g.Match

	for p := m.Powerups.Front(); p != nil; {
		next := p.Next()

		if physics.Hits(m.Ship, p) {
			switch p.Kind() {
			case entity.KindFastShot:
				m.Timers.FastShot.Activate(g.Tuning.PowerupDuration)
			case entity.KindFastMove:
				m.Timers.FastMove.Activate(g.Tuning.PowerupDuration)
			}
			m.Powerups.Remove(p)
			g.Audio.Play(engine.CuePowerup)
			g.Stats.Inc(status.PowerupsCollected)
		}

		p = next
	}
}
