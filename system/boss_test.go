package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

func TestBossPatrolCycle(t *testing.T) {
	h := newPlaying(t, NewBossSystem())
	m := h.g.Match

	h.step(3*time.Second, engine.Input{})
	require.False(t, m.BossActive)

	h.step(time.Second, engine.Input{})
	require.True(t, m.BossActive)
	assert.True(t, h.audio.Looping(engine.LoopBoss))
	assert.Equal(t, float64(parameter.BossStartX), m.Boss.X)

	// Fires before the first move, then travels left
	h.step(100*time.Millisecond, engine.Input{})
	assert.Equal(t, 1, m.Bullets.Len())
	assert.Equal(t, 1, h.audio.Count(engine.CueBossFire))
	assert.InDelta(t, parameter.BossStartX-parameter.BossSpeed*0.1, m.Boss.X, 1e-6)

	h.step(100*time.Millisecond, engine.Input{})
	assert.Equal(t, 1, m.Bullets.Len(), "fired inside the cooldown")

	m.Boss.X = parameter.PlayLimitLeft + 10
	h.step(100*time.Millisecond, engine.Input{})
	assert.Equal(t, float64(parameter.PlayLimitLeft), m.Boss.X)
	assert.False(t, m.BossGoingLeft)

	m.Boss.X = parameter.BossPatrolRightEdge - 10
	h.step(100*time.Millisecond, engine.Input{})
	assert.Equal(t, float64(parameter.BossPatrolRightEdge), m.Boss.X)
	assert.True(t, m.BossGoingLeft)
	assert.False(t, m.BossActive)
	assert.False(t, h.audio.Looping(engine.LoopBoss))
	assert.Equal(t, float64(parameter.BossSleepTime), m.Timers.BossDormancy)
}

func TestDefeatedBossStaysDown(t *testing.T) {
	h := newPlaying(t, NewBossSystem())
	m := h.g.Match
	m.BossDefeated = true

	h.step(10*time.Second, engine.Input{})
	assert.False(t, m.BossActive)
	assert.Equal(t, 0, m.Bullets.Len())
	assert.False(t, h.g.Snapshot().BossVisible)
}
