package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-shooter/config"
	"ebiten-shooter/data"
	"ebiten-shooter/ecs"
	"ebiten-shooter/systems"
)

// Host runs the simulation on a terminal screen. All of its methods must be
// called from one goroutine; Loop funnels terminal events onto it.
type Host struct {
	screen   tcell.Screen
	renderer *CellRenderer
	input    *KeyInput
	board    *systems.Scoreboard
	events   *ecs.EventManager
	timer    *systems.FrameTimer
	clock    *systems.Clock
}

// NewHost wires a fresh simulation to screen. sound may be nil and now
// defaults to time.Now.
func NewHost(screen tcell.Screen, templates *data.SpriteTemplateManager, sound *Sound, now func() time.Time) *Host {
	h := &Host{
		screen:   screen,
		renderer: NewCellRenderer(screen, templates),
		input:    NewKeyInput(),
		board:    systems.NewScoreboard(),
		events:   ecs.NewEventManager(),
		timer:    systems.NewFrameTimer(now),
	}

	h.board.Subscribe(h.events)
	systems.GetMessageLog().Subscribe(h.events)
	if sound != nil {
		sound.Subscribe(h.events)
	}

	h.clock = systems.NewSimulation(systems.SimulationConfig{
		Renderer:  h.renderer,
		Input:     h.input,
		Surface:   h,
		Events:    h.events,
		Templates: templates,
		Log:       systems.GetMessageLog().Add,
	})
	return h
}

// ViewportSize implements systems.Surface in playfield pixels
func (h *Host) ViewportSize() (float64, float64) {
	cols, rows := h.screen.Size()
	rows -= hudRows
	if rows < 0 {
		rows = 0
	}
	return float64(cols * config.CellWidth), float64(rows * config.CellHeight)
}

// Scoreboard returns the running tally
func (h *Host) Scoreboard() *systems.Scoreboard {
	return h.board
}

// HandleEvent applies one terminal event and reports whether to keep running
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P') {
			h.togglePause()
			return true
		}
		if !h.timer.Paused() {
			h.input.HandleKey(ev)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) togglePause() {
	if h.timer.Paused() {
		h.timer.Resume()
		return
	}
	h.timer.Pause()
	h.input.Reset()
}

// Step advances the simulation one frame and redraws. It reports whether the
// clock wants another frame.
func (h *Host) Step() bool {
	running := true
	status := "PAUSED"
	if !h.timer.Paused() {
		running = h.clock.Tick(h.timer.Timestamp())
		status = ""
	}
	if !running {
		status = "GAME OVER"
	}
	h.renderer.Draw(h.board, status)
	return running
}

// Loop ticks at config.TicksPerSecond until ctx ends, the player quits or the
// clock stops.
func (h *Host) Loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !h.Step() {
				return nil
			}
		}
	}
}

// Run opens the terminal, plays until quit and restores the terminal.
func Run(ctx context.Context, spriteDir string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	templates := data.NewSpriteTemplateManager()
	if err := templates.LoadTemplatesFromDirectory(spriteDir); err != nil {
		systems.GetMessageLog().AddTyped("Using built-in sprites: "+err.Error(), systems.MessageTypeSystem)
	}

	// Non-fatal, game can run without sound
	sound, err := NewSound()
	if err != nil {
		systems.GetMessageLog().AddTyped("Audio initialization failed: "+err.Error(), systems.MessageTypeSystem)
	}
	defer sound.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return NewHost(screen, templates, sound, nil).Loop(ctx, eventChan)
}
