package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
)

func TestOverlapsCases(t *testing.T) {
	tests := []struct {
		name string
		a, b entity.Box
		want bool
	}{
		{"identical", entity.Box{X: 10, Y: 10, Width: 5, Height: 5}, entity.Box{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"contained", entity.Box{X: 0, Y: 0, Width: 100, Height: 100}, entity.Box{X: 40, Y: 40, Width: 4, Height: 4}, true},
		{"touching right edge", entity.Box{X: 0, Y: 0, Width: 10, Height: 10}, entity.Box{X: 10, Y: 0, Width: 10, Height: 10}, true},
		{"touching bottom edge", entity.Box{X: 0, Y: 0, Width: 10, Height: 10}, entity.Box{X: 0, Y: 10, Width: 10, Height: 10}, true},
		{"gap on x", entity.Box{X: 0, Y: 0, Width: 10, Height: 10}, entity.Box{X: 10.5, Y: 0, Width: 10, Height: 10}, false},
		{"gap on y", entity.Box{X: 0, Y: 0, Width: 10, Height: 10}, entity.Box{X: 0, Y: 10.5, Width: 10, Height: 10}, false},
		// A wide-short box below a narrow-tall box: the tall box's own height reaches it
		{"narrow tall reaches wide short", entity.Box{X: 0, Y: 0, Width: 4, Height: 32}, entity.Box{X: -50, Y: 30, Width: 100, Height: 2}, true},
		{"wide short misses below", entity.Box{X: 0, Y: 0, Width: 100, Height: 2}, entity.Box{X: 10, Y: 40, Width: 4, Height: 32}, false},
		// Using the other box's width as its vertical extent would wrongly report a hit here
		{"wide short misses above", entity.Box{X: 10, Y: 40, Width: 4, Height: 32}, entity.Box{X: 0, Y: 0, Width: 100, Height: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}

func randomBox(rng *rand.Rand) entity.Box {
	return entity.Box{
		X:      rng.Float64()*200 - 100,
		Y:      rng.Float64()*200 - 100,
		Width:  rng.Float64() * 60,
		Height: rng.Float64() * 60,
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		a, b := randomBox(rng), randomBox(rng)
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%+v b=%+v", a, b)
	}
}

func TestOverlapsSelfAndSeparated(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		a := randomBox(rng)
		assert.True(t, Overlaps(a, a), "box must overlap itself: %+v", a)

		// Separated on x by more than the sum of widths
		b := a
		b.X = a.X + a.Width + b.Width + 1
		assert.False(t, Overlaps(a, b))

		// Separated on y by more than the sum of heights
		c := a
		c.Y = a.Y - a.Height - c.Height - 1
		assert.False(t, Overlaps(a, c))
	}
}

func TestHitsUsesEntityBoxes(t *testing.T) {
	ship := entity.NewPlayerShip()
	bullet := entity.New(entity.KindBullet, ship.Box)
	assert.True(t, Hits(ship, bullet))

	bullet.Y = ship.Bottom() + 1
	assert.False(t, Hits(ship, bullet))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(1, 5, 10))
	assert.Equal(t, 10.0, Clamp(11, 5, 10))
	assert.Equal(t, 7.0, Clamp(7, 5, 10))
}
