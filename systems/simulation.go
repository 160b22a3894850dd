package systems

import (
	"math/rand"

	"ebiten-shooter/components"
	"ebiten-shooter/data"
	"ebiten-shooter/ecs"
	"ebiten-shooter/spawners"
)

// SimulationConfig collects the collaborators of a simulation
type SimulationConfig struct {
	Renderer  components.Renderer
	Input     components.InputProvider
	Surface   Surface
	Events    *ecs.EventManager
	Templates *data.SpriteTemplateManager
	Rand      *rand.Rand
	Log       func(string)
}

// NewSimulation builds the spawner and processor and shows the first craft at time 0
func NewSimulation(cfg SimulationConfig) *Clock {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	spawner := spawners.NewEntitySpawner(cfg.Renderer, cfg.Templates, rng, cfg.Log)
	processor := NewWorldProcessor(spawner, cfg.Input, cfg.Events)

	width, height := cfg.Surface.ViewportSize()
	player := spawner.CreatePlayer(width, height)
	ShowPlayer(player, 0, spawner.Renderer(), cfg.Events)

	return NewClock(processor, cfg.Surface, []*components.Entity{player}, NewSimState())
}

// Session defers NewSimulation to the first Tick, so the first craft is
// placed against the surface size the host has laid out by then.
type Session struct {
	cfg   SimulationConfig
	clock *Clock
}

// NewSession creates a session that has not started yet
func NewSession(cfg SimulationConfig) *Session {
	return &Session{cfg: cfg}
}

// Tick builds the simulation if needed and runs one frame
func (s *Session) Tick(timestamp float64) bool {
	if s.clock == nil {
		s.clock = NewSimulation(s.cfg)
	}
	return s.clock.Tick(timestamp)
}

// Started reports whether the first frame has run
func (s *Session) Started() bool {
	return s.clock != nil
}
