package engine

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"

// Sprite is a read-only copy of one entity for presentation
type Sprite struct {
	Kind     entity.Kind
	Tier     entity.Tier
	Box      entity.Box
	MovingUp bool
}

// Snapshot is everything a presenter needs to draw one frame
// It shares no memory with the simulation
type Snapshot struct {
	State     State
	Selection MenuSelection

	Ship        Sprite
	ShipVisible bool
	Boss        Sprite
	BossVisible bool

	Aliens   []Sprite
	Bullets  []Sprite
	Powerups []Sprite

	FastMove Effect
	FastShot Effect
}

// Snapshot copies the current frame state
func (g *Game) Snapshot() Snapshot {
	m := g.Match
	s := Snapshot{
		State:       g.State(),
		Selection:   g.Selection,
		Ship:        spriteOf(m.Ship),
		ShipVisible: g.State() != StateLose,
		Boss:        spriteOf(m.Boss),
		BossVisible: m.BossPatrolling(),
		Aliens:      collect(m.Horde),
		Bullets:     collect(m.Bullets),
		Powerups:    collect(m.Powerups),
		FastMove:    m.Timers.FastMove,
		FastShot:    m.Timers.FastShot,
	}
	return s
}

func spriteOf(e *entity.Entity) Sprite {
	return Sprite{Kind: e.Kind(), Tier: e.Tier, Box: e.Box, MovingUp: e.MovingUp}
}

func collect(l *entity.List) []Sprite {
	out := make([]Sprite, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, spriteOf(e))
	}
	return out
}
