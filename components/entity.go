package components

import (
	"ebiten-shooter/ecs"
)

// Kind discriminates the entity variants
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindHostile
	kindCount
)

// KindCount is the number of entity variants
const KindCount = int(kindCount)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindHostile:
		return "hostile"
	}
	return "unknown"
}

// Vec2 is a position in pixels or a velocity in pixels per millisecond
type Vec2 struct {
	X, Y float64
}

// Size is the extent of an entity's bounding box
type Size struct {
	W, H float64
}

// Entity is one member of the active set. Exactly one of the variant
// pointers matching Kind is non-nil.
type Entity struct {
	ID   ecs.EntityID // render handle
	Kind Kind

	Pos  Vec2
	Vel  Vec2
	Size Size

	Alive     bool
	Bounded   bool // clamp into the viewport instead of leaving it
	DeadIfOut bool // leaving the viewport kills the entity

	Player     *PlayerData
	Projectile *ProjectileData
	Hostile    *HostileData
}

// Bounds returns the axis-aligned box anchored at the entity's top-left position
func (e *Entity) Bounds() Rect {
	return Rect{
		Top:    e.Pos.Y,
		Left:   e.Pos.X,
		Bottom: e.Pos.Y + e.Size.H,
		Right:  e.Pos.X + e.Size.W,
	}
}

// PlayerData is the craft-specific state
type PlayerData struct {
	BirthTime  float64 // elapsed time when the craft was shown
	LastLaunch float64 // elapsed time of the last projectile, -1 before the first
	CanDie     bool    // false during the grace period
	Shown      bool
}

// ProjectileData is the projectile-specific state
type ProjectileData struct {
	Hits int // hostiles this projectile has struck
}

// HostileData is the hostile-specific state
type HostileData struct {
	Phase float64 // fixed sway offset chosen at creation
	Drawn bool    // set on the first successful draw
}

// RemoveDead filters the slice in place, keeping only live entities
func RemoveDead(entities []*Entity) []*Entity {
	live := entities[:0]
	for _, e := range entities {
		if e.Alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(entities); i++ {
		entities[i] = nil
	}
	return live
}

// CountKind returns how many live entities of the given kind are in the slice
func CountKind(entities []*Entity, kind Kind) int {
	n := 0
	for _, e := range entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}
