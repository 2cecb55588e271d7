package system

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
)

func shiftHorde(l *entity.List, dx float64) {
	for a := l.Front(); a != nil; a = a.Next() {
		a.X += dx
	}
}

func hordeBounds(l *entity.List) (minX, maxRight float64) {
	minX, maxRight = l.Front().X, l.Front().Right()
	for a := l.Front(); a != nil; a = a.Next() {
		minX = min(minX, a.X)
		maxRight = max(maxRight, a.Right())
	}
	return minX, maxRight
}

func positions(l *entity.List) []entity.Box {
	var out []entity.Box
	for a := l.Front(); a != nil; a = a.Next() {
		out = append(out, a.Box)
	}
	return out
}

func TestHordeMovesAsOneBody(t *testing.T) {
	h := newPlaying(t, NewHordeSystem())
	m := h.g.Match
	before := positions(m.Horde)

	h.step(100*time.Millisecond, engine.Input{})

	after := positions(m.Horde)
	for i := range before {
		assert.InDelta(t, before[i].X+parameter.HordeInitialSpeed*0.1, after[i].X, 1e-6)
		assert.Equal(t, before[i].Y, after[i].Y)
	}
}

func TestHordeReversesAtRightLimit(t *testing.T) {
	h := newPlaying(t, NewHordeSystem())
	m := h.g.Match

	_, right := hordeBounds(m.Horde)
	shiftHorde(m.Horde, parameter.PlayLimitRight-10-right)
	before := positions(m.Horde)

	h.step(100*time.Millisecond, engine.Input{})

	_, right = hordeBounds(m.Horde)
	assert.InDelta(t, parameter.PlayLimitRight, right, 1e-6)
	assert.Equal(t, -(parameter.HordeInitialSpeed + parameter.HordeSpeedIncrease), m.HordeSpeed)

	after := positions(m.Horde)
	for i := range before {
		assert.InDelta(t, before[i].X+10, after[i].X, 1e-6)
		assert.Equal(t, before[i].Y+parameter.HordeStepY, after[i].Y)
	}
}

func TestHordeReversesAtLeftLimit(t *testing.T) {
	h := newPlaying(t, NewHordeSystem())
	m := h.g.Match
	m.HordeSpeed = -195

	left, _ := hordeBounds(m.Horde)
	shiftHorde(m.Horde, parameter.PlayLimitLeft+5-left)
	y := m.Horde.Front().Y

	h.step(100*time.Millisecond, engine.Input{})

	left, _ = hordeBounds(m.Horde)
	assert.InDelta(t, parameter.PlayLimitLeft, left, 1e-6)
	assert.Equal(t, 195.0+parameter.HordeSpeedIncrease, m.HordeSpeed)
	assert.Equal(t, y+parameter.HordeStepY, m.Horde.Front().Y)
}

// TestHordeStaysInBounds runs random frame lengths and checks the formation never leaves the play area
func TestHordeStaysInBounds(t *testing.T) {
	h := newPlaying(t, NewHordeSystem())
	m := h.g.Match
	r := rand.New(rand.NewSource(7))

	first := m.Horde.Front()
	offsets := make([]float64, 0, m.Horde.Len())
	for a := first; a != nil; a = a.Next() {
		offsets = append(offsets, a.X-first.X)
	}

	flips := 0
	for i := 0; i < 500; i++ {
		speed := m.HordeSpeed
		h.step(time.Duration(1+r.Intn(50))*time.Millisecond, engine.Input{})
		if (speed > 0) != (m.HordeSpeed > 0) {
			flips++
			assert.Greater(t, math.Abs(m.HordeSpeed), math.Abs(speed))
		}

		left, right := hordeBounds(m.Horde)
		require.GreaterOrEqual(t, left, parameter.PlayLimitLeft-1e-6)
		require.LessOrEqual(t, right, parameter.PlayLimitRight+1e-6)

		j := 0
		for a := first; a != nil; a = a.Next() {
			require.InDelta(t, offsets[j], a.X-first.X, 1e-6)
			j++
		}
	}
	assert.Greater(t, flips, 0)
}

func TestAlienFireRollsPerAlien(t *testing.T) {
	h := newPlaying(t, NewHordeSystem())
	m := h.g.Match

	// Only the third alien fires
	h.rng.Draws = []int{parameter.AlienFireOdds, parameter.AlienFireOdds, parameter.AlienFireOdds - 1}
	shooter := alienAt(m.Horde, 2)
	cx, bottom := shooter.CenterX(), shooter.Bottom()

	h.step(16*time.Millisecond, engine.Input{})

	require.Equal(t, 1, m.Bullets.Len())
	b := m.Bullets.Front()
	assert.False(t, b.MovingUp)
	assert.InDelta(t, cx, b.CenterX(), 1e-9)
	assert.Equal(t, bottom, b.Y)
	assert.Equal(t, 1, h.audio.Count(engine.CueAlienFire))
}
