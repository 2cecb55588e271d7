// Package physics holds the stateless geometry tests used by the collision sweep.
package physics

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"

// Overlaps reports whether two boxes intersect on both axes
// Touching edges count as a hit; each box uses its own width and height for its own extent
func Overlaps(a, b entity.Box) bool {
	return a.X <= b.X+b.Width &&
		a.X+a.Width >= b.X &&
		a.Y <= b.Y+b.Height &&
		a.Y+a.Height >= b.Y
}

// Hits is Overlaps for two linked or standalone entities
func Hits(a, b *entity.Entity) bool {
	return Overlaps(a.Box, b.Box)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
