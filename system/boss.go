package system

import (
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

// BossSystem runs the boss ship's dormancy countdown and patrol
// A patrol starts moving left from past the right edge, bounces off the left limit, and ends back at the right edge
type BossSystem struct{}

// NewBossSystem creates the boss ship system
func NewBossSystem() engine.System {
	return &BossSystem{}
}

func (s *BossSystem) Name() string { return "boss" }

func (s *BossSystem) Priority() int { return parameter.PriorityBoss }

func (s *BossSystem) Update(g *engine.Game, dt time.Duration) {
	m := g.Match
	t := g.Tuning
	sec := dt.Seconds()

	if m.BossDefeated {
		return
	}

	if !m.BossActive {
		m.Timers.BossDormancy -= sec
		if m.Timers.BossDormancy <= 0 {
			m.BossActive = true
			g.Audio.StartLoop(engine.LoopBoss)
		}
		return
	}

	s.fire(g)

	boss := m.Boss
	move := t.BossSpeed * sec

	if m.BossGoingLeft {
		if boss.X-move <= t.LimitLeft {
			boss.X = t.LimitLeft
			m.BossGoingLeft = false
		} else {
			boss.X -= move
		}
		return
	}

	if boss.X+move >= t.BossRightEdge {
		boss.X = t.BossRightEdge
		m.BossGoingLeft = true
		m.BossActive = false
		m.Timers.BossDormancy = t.BossSleepTime
		g.Audio.StopLoop(engine.LoopBoss)
	} else {
		boss.X += move
	}
}

func (s *BossSystem) fire(g *engine.Game) {
	m := g.Match
	now := g.Now()
	if now.Sub(m.Timers.BossLastShot).Seconds() <= g.Tuning.BossFireDelay {
		return
	}

	entity.SpawnBullet(m.Bullets, m.Boss.CenterX(), m.Boss.Bottom(), false)
	m.Timers.BossLastShot = now
	g.Audio.Play(engine.CueBossFire)
}
