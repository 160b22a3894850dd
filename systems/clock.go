package systems

import (
	"ebiten-shooter/components"
)

// Surface reports the current viewport size of the host
type Surface interface {
	ViewportSize() (width, height float64)
}

// Clock drives the world processor from a frame timing source. The host
// calls Tick once per frame with a monotonically increasing timestamp.
type Clock struct {
	processor *WorldProcessor
	surface   Surface

	active  []*components.Entity
	state   SimState
	prevTS  float64
	started bool
	elapsed float64
	running bool
}

// NewClock creates a clock owning the initial active set and state
func NewClock(processor *WorldProcessor, surface Surface, initial []*components.Entity, state SimState) *Clock {
	return &Clock{
		processor: processor,
		surface:   surface,
		active:    initial,
		state:     state,
		running:   true,
	}
}

// Tick runs one simulation step for the frame at timestamp (milliseconds) and
// reports whether another frame should be requested. The loop continues while
// the live set is non-empty or a craft is waiting to respawn.
func (c *Clock) Tick(timestamp float64) bool {
	if !c.running {
		return false
	}

	width, height := c.surface.ViewportSize()

	var dt float64
	if c.started {
		dt = timestamp - c.prevTS
	}
	c.started = true
	c.prevTS = timestamp
	c.elapsed += dt

	c.active, c.state = c.processor.Process(c.state, c.active, Frame{
		Dt:      dt,
		Elapsed: c.elapsed,
		Height:  height,
		Width:   width,
	})

	c.running = len(c.active) > 0 || c.state.RespawnPending()
	return c.running
}

// Running reports whether the clock still wants frames
func (c *Clock) Running() bool {
	return c.running
}

// Active returns the current active set. Callers must not modify it.
func (c *Clock) Active() []*components.Entity {
	return c.active
}

// State returns the current simulation state
func (c *Clock) State() SimState {
	return c.state
}

// Elapsed returns the accumulated simulation time in milliseconds
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
