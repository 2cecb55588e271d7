package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
)

type harness struct {
	g     *engine.Game
	clock *engine.MockTimeProvider
	audio *engine.RecordingAudio
	rng   *engine.ScriptedRand
}

// newPlaying builds a game with the given systems and enters play on a zero-length frame
func newPlaying(t *testing.T, systems ...engine.System) *harness {
	t.Helper()

	g, clock, audio, rng := engine.NewTestGame()
	for _, s := range systems {
		g.AddSystem(s)
	}
	g.Tick(engine.Input{Select: true})
	require.Equal(t, engine.StatePlaying, g.State())

	return &harness{g: g, clock: clock, audio: audio, rng: rng}
}

// step advances the clock and runs one frame
func (h *harness) step(d time.Duration, in engine.Input) {
	h.clock.Advance(d)
	h.g.Tick(in)
}

func alienAt(l *entity.List, idx int) *entity.Entity {
	e := l.Front()
	for i := 0; i < idx && e != nil; i++ {
		e = e.Next()
	}
	return e
}

// shootAt places an upward bullet covering target's top edge
func shootAt(m *engine.Match, target *entity.Entity) *entity.Entity {
	return entity.SpawnBullet(m.Bullets, target.CenterX(), target.Y, true)
}
