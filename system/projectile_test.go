package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

func TestBulletsMoveAndPrune(t *testing.T) {
	h := newPlaying(t, NewBulletSystem())
	m := h.g.Match

	up := entity.SpawnBullet(m.Bullets, 500, 100, true)
	down := entity.SpawnBullet(m.Bullets, 600, 100, false)
	offBottom := entity.SpawnBullet(m.Bullets, 700, parameter.ScreenHeight-5, false)
	offTop := entity.SpawnBullet(m.Bullets, 800, 20, true)
	partlyAbove := entity.SpawnBullet(m.Bullets, 900, 40, true)

	h.step(100*time.Millisecond, engine.Input{})

	assert.InDelta(t, 40, up.Y, 1e-6)
	assert.InDelta(t, 160, down.Y, 1e-6)
	assert.False(t, offBottom.Linked())
	assert.False(t, offTop.Linked())
	assert.True(t, partlyAbove.Linked())
	assert.Equal(t, 3, m.Bullets.Len())
}

func TestPowerupsFall(t *testing.T) {
	h := newPlaying(t, NewPowerupSystem())
	m := h.g.Match

	p := entity.SpawnPowerup(m.Powerups, 500, 100, h.rng)
	h.step(time.Second, engine.Input{})
	assert.InDelta(t, 100+parameter.ProjectileSpeed, p.Y, 1e-6)

	h.step(time.Second, engine.Input{})
	assert.False(t, p.Linked())
	assert.Equal(t, 0, m.Powerups.Len())
}

// TestAlienShotKillsShip runs the full pipeline until a falling bullet reaches the ship
func TestAlienShotKillsShip(t *testing.T) {
	g, clock, audio, _ := engine.NewTestGame()
	RegisterAll(g)
	g.Tick(engine.Input{Select: true})

	m := g.Match
	entity.SpawnBullet(m.Bullets, m.Ship.CenterX(), m.Ship.Y-40, false)

	for i := 0; i < 10 && g.State() == engine.StatePlaying; i++ {
		clock.Advance(100 * time.Millisecond)
		g.Tick(engine.Input{})
	}

	assert.Equal(t, engine.StateLose, g.State())
	assert.Equal(t, 1, audio.Count(engine.CueShipExplosion))
	assert.False(t, audio.Looping(engine.LoopBackground))
}
