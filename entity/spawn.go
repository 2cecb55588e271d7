package entity

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"

// Rand is the random source consumed by spawners and drop rolls
type Rand interface {
	Intn(n int) int
}

// SpawnProjectile links a generic projectile at the container front
// x is the horizontal center; the stored box is corner-anchored
func SpawnProjectile(l *List, height, width, x, y float64, movingUp bool) *Entity {
	e := &Entity{
		Box: Box{
			X:      x - width/2,
			Y:      y,
			Width:  width,
			Height: height,
		},
		MovingUp: movingUp,
	}
	return l.PushFront(e)
}

// SpawnBullet spawns a bullet centered on x
func SpawnBullet(l *List, x, y float64, movingUp bool) *Entity {
	e := SpawnProjectile(l, parameter.BulletHeight, parameter.BulletWidth, x, y, movingUp)
	e.kind = KindBullet
	return e
}

// SpawnPowerup spawns a falling powerup centered on x, kind drawn from rng
func SpawnPowerup(l *List, x, y float64, rng Rand) *Entity {
	draw := rng.Intn(parameter.PowerupKindRange)

	e := SpawnProjectile(l, parameter.PowerupSize, parameter.PowerupSize, x, y, false)
	e.kind = PowerupKind(draw)
	return e
}

// PowerupKind maps a draw in [0, PowerupKindRange) to a powerup kind
func PowerupKind(draw int) Kind {
	if draw < parameter.PowerupFastMoveBelow {
		return KindFastMove
	}
	return KindFastShot
}
