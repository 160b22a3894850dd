package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ebiten-shooter/ecs"
	"ebiten-shooter/systems"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     int
	duration time.Duration
}

var (
	fireTone  = tone{freq: 880, duration: 30 * time.Millisecond}
	killTone  = tone{freq: 440, duration: 80 * time.Millisecond}
	deathTone = tone{freq: 110, duration: 300 * time.Millisecond}
	spawnTone = tone{freq: 660, duration: 100 * time.Millisecond}
)

// Sound plays short sine tones through the system speaker. The zero value is
// a muted Sound.
type Sound struct {
	enabled bool
}

// NewSound initializes the speaker. On error a muted Sound is still returned.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{enabled: true}, nil
}

// Subscribe plays tones for simulation events
func (s *Sound) Subscribe(em *ecs.EventManager) {
	em.Subscribe(systems.EventProjectileFired, func(ecs.Event) { s.play(fireTone) })
	em.Subscribe(systems.EventHostileKilled, func(ecs.Event) { s.play(killTone) })
	em.Subscribe(systems.EventPlayerKilled, func(ecs.Event) { s.play(deathTone) })
	em.Subscribe(systems.EventPlayerSpawned, func(ecs.Event) { s.play(spawnTone) })
}

func (s *Sound) play(t tone) {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(t.freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

// Close releases the speaker
func (s *Sound) Close() {
	if s != nil && s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
