package systems

import (
	"ebiten-shooter/components"
	"ebiten-shooter/config"
	"ebiten-shooter/ecs"
	"ebiten-shooter/spawners"
)

// SpawnProbability is the per-tick chance of a new hostile, n milliseconds
// after the player's last death. It is 0 at n = 0 and approaches
// SpawnAsymptote from below.
func SpawnProbability(n float64) float64 {
	if n <= 0 {
		return 0
	}
	return config.SpawnAsymptote * (n / (n + config.SpawnDenominator))
}

// WorldProcessor runs one simulation tick over the active set
type WorldProcessor struct {
	spawner *spawners.EntitySpawner
	input   components.InputProvider
	events  *ecs.EventManager
	roll    func() float64
}

// NewWorldProcessor creates a processor. A nil input behaves as if no key is held.
func NewWorldProcessor(spawner *spawners.EntitySpawner, input components.InputProvider, events *ecs.EventManager) *WorldProcessor {
	if input == nil {
		input = components.StaticInput{}
	}
	return &WorldProcessor{
		spawner: spawner,
		input:   input,
		events:  events,
		roll:    spawner.Rand().Float64,
	}
}

// Process executes one tick: collisions, movement, hostile spawning and
// player respawn. The input slice is left untouched; the returned slice is the
// active set for the next tick and the returned state replaces state.
func (p *WorldProcessor) Process(state SimState, active []*components.Entity, frame Frame) ([]*components.Entity, SimState) {
	ctx := &tickContext{
		Frame:    frame,
		state:    &state,
		spawner:  p.spawner,
		renderer: p.spawner.Renderer(),
		input:    p.input,
		events:   p.events,
	}

	playerWasAlive := state.PlayerAlive
	for _, e := range active {
		checkCollision(e, active, ctx)
	}

	live := make([]*components.Entity, 0, len(active)+1)
	for _, e := range active {
		if e.Alive {
			live = append(live, e)
		}
	}

	if playerWasAlive && !state.PlayerAlive {
		state.DeathTime = frame.Elapsed
	}

	var spawned []*components.Entity
	for _, e := range live {
		spawned = append(spawned, process(e, ctx)...)
	}
	live = components.RemoveDead(live)
	live = append(live, spawned...)

	if p.roll() > 1-SpawnProbability(frame.Elapsed-state.DeathTime) {
		hostile := p.spawner.CreateHostile(p.spawner.HostileSpawnX(frame.Width))
		live = append(live, hostile)
		p.events.Emit(HostileSpawnedEvent{HostileID: hostile.ID, X: hostile.Pos.X, Elapsed: frame.Elapsed})
	}

	if !state.PlayerAlive && frame.Elapsed >= state.DeathTime+config.RespawnDelay {
		player := p.spawner.CreatePlayer(frame.Width, frame.Height)
		ShowPlayer(player, frame.Elapsed, ctx.renderer, p.events)
		live = append(live, player)
		state.PlayerAlive = true
	}

	return live, state
}
