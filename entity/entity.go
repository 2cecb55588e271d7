// Package entity holds the simulated objects of a match and the sentinel-bounded
// containers that own them.
package entity

// Kind discriminates what an entity is
type Kind uint8

const (
	// KindNone marks a generic projectile that has not been specialized yet
	KindNone Kind = iota
	KindPlayerShip
	KindBossShip
	KindAlien
	KindBullet
	KindFastMove // Powerup: boosted ship speed
	KindFastShot // Powerup: shorter fire cooldown
	KindSentinel
)

var kindNames = [...]string{
	KindNone:       "none",
	KindPlayerShip: "player-ship",
	KindBossShip:   "boss-ship",
	KindAlien:      "alien",
	KindBullet:     "bullet",
	KindFastMove:   "fast-move",
	KindFastShot:   "fast-shot",
	KindSentinel:   "sentinel",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPowerup reports whether k is one of the pickup kinds
func (k Kind) IsPowerup() bool {
	return k == KindFastMove || k == KindFastShot
}

// Tier selects the alien sprite, it has no effect on behavior
type Tier uint8

const (
	TierNone Tier = iota
	Tier1
	Tier2
	Tier3
)

// Box is an axis-aligned bounding box anchored at its top-left corner
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (b Box) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge
func (b Box) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center
func (b Box) CenterX() float64 { return b.X + b.Width/2 }

// Entity is one simulated object
// Kind is fixed at construction; only the spawner retags a freshly linked projectile
type Entity struct {
	Box
	Tier     Tier // Aliens only
	MovingUp bool // Projectiles only, true travels toward decreasing y

	kind       Kind
	next, prev *Entity
	list       *List // Owning container, nil when unlinked
}

// New creates an unlinked entity of the given kind
func New(kind Kind, box Box) *Entity {
	return &Entity{Box: box, kind: kind}
}

// Kind returns the entity discriminator
func (e *Entity) Kind() Kind { return e.kind }

// IsSentinel reports whether e is a container boundary node
func (e *Entity) IsSentinel() bool { return e.kind == KindSentinel }

// Next returns the following content entity or nil at the end of the container
func (e *Entity) Next() *Entity {
	if e.list == nil || e.next == nil || e.next.IsSentinel() {
		return nil
	}
	return e.next
}

// Prev returns the preceding content entity or nil at the start of the container
func (e *Entity) Prev() *Entity {
	if e.list == nil || e.prev == nil || e.prev.IsSentinel() {
		return nil
	}
	return e.prev
}

// Linked reports whether e currently belongs to a container
func (e *Entity) Linked() bool { return e.list != nil }
