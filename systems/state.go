package systems

import (
	"ebiten-shooter/components"
	"ebiten-shooter/ecs"
	"ebiten-shooter/spawners"
)

// SimState is the simulation-wide state threaded through every tick
type SimState struct {
	PlayerAlive bool
	DeathTime   float64 // elapsed time of the last player death, 0 before the first
	Kills       int
	Deaths      int
}

// NewSimState returns the state at simulation start: the first craft is alive
func NewSimState() SimState {
	return SimState{PlayerAlive: true}
}

// RespawnPending reports whether a new craft is still owed to the player
func (s SimState) RespawnPending() bool {
	return !s.PlayerAlive
}

// Frame is the timing and viewport of one tick
type Frame struct {
	Dt      float64 // milliseconds since the previous tick
	Elapsed float64 // accumulated milliseconds since the first tick
	Height  float64
	Width   float64
}

// tickContext is everything an entity behavior may touch during one tick
type tickContext struct {
	Frame
	state    *SimState
	spawner  *spawners.EntitySpawner
	renderer components.Renderer
	input    components.InputProvider
	events   *ecs.EventManager
}
