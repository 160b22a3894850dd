package systems

import (
	"ebiten-shooter/ecs"
)

// Event type constants
const (
	EventHostileKilled   ecs.EventType = "hostile_killed"
	EventHostileEscaped  ecs.EventType = "hostile_escaped"
	EventHostileSpawned  ecs.EventType = "hostile_spawned"
	EventPlayerKilled    ecs.EventType = "player_killed"
	EventPlayerSpawned   ecs.EventType = "player_spawned"
	EventProjectileFired ecs.EventType = "projectile_fired"
)

// HostileKilledEvent is emitted when a projectile strikes a hostile
type HostileKilledEvent struct {
	HostileID    ecs.EntityID // Hostile that died
	ProjectileID ecs.EntityID // Projectile that hit it
	X, Y         float64      // Hostile position at the moment of the hit
	Elapsed      float64
}

// Type returns the event type
func (e HostileKilledEvent) Type() ecs.EventType {
	return EventHostileKilled
}

// HostileEscapedEvent is emitted when a hostile falls past the bottom edge
type HostileEscapedEvent struct {
	HostileID ecs.EntityID
	Elapsed   float64
}

// Type returns the event type
func (e HostileEscapedEvent) Type() ecs.EventType {
	return EventHostileEscaped
}

// HostileSpawnedEvent is emitted when the world processor adds a hostile
type HostileSpawnedEvent struct {
	HostileID ecs.EntityID
	X         float64
	Elapsed   float64
}

// Type returns the event type
func (e HostileSpawnedEvent) Type() ecs.EventType {
	return EventHostileSpawned
}

// PlayerKilledEvent is emitted when a hostile reaches a vulnerable craft
type PlayerKilledEvent struct {
	PlayerID  ecs.EntityID // Craft that died
	HostileID ecs.EntityID // Hostile that hit it
	Elapsed   float64
}

// Type returns the event type
func (e PlayerKilledEvent) Type() ecs.EventType {
	return EventPlayerKilled
}

// PlayerSpawnedEvent is emitted when a craft is shown, at start and after every respawn
type PlayerSpawnedEvent struct {
	PlayerID ecs.EntityID
	Elapsed  float64
}

// Type returns the event type
func (e PlayerSpawnedEvent) Type() ecs.EventType {
	return EventPlayerSpawned
}

// ProjectileFiredEvent is emitted when the craft launches a projectile
type ProjectileFiredEvent struct {
	ProjectileID ecs.EntityID
	X, Y         float64
	Elapsed      float64
}

// Type returns the event type
func (e ProjectileFiredEvent) Type() ecs.EventType {
	return EventProjectileFired
}
