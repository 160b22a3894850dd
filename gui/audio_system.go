package gui

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"ebiten-shooter/ecs"
	"ebiten-shooter/systems"
)

const audioSampleRate = 44100

// SoundEffect names one of the generated effect tones
type SoundEffect int

const (
	SoundFire SoundEffect = iota
	SoundHostileKilled
	SoundPlayerKilled
	SoundPlayerSpawned
)

type toneSpec struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var effectTones = map[SoundEffect]toneSpec{
	SoundFire:          {freq: 1320, duration: 25 * time.Millisecond, volume: 0.15},
	SoundHostileKilled: {freq: 440, duration: 90 * time.Millisecond, volume: 0.35},
	SoundPlayerKilled:  {freq: 110, duration: 400 * time.Millisecond, volume: 0.5},
	SoundPlayerSpawned: {freq: 660, duration: 150 * time.Millisecond, volume: 0.3},
}

// AudioSystem handles all audio playback
type AudioSystem struct {
	audioContext *audio.Context
	bgmPlayer    *audio.Player
	bgmStream    io.ReadSeeker
	bgmFile      *os.File
	volume       float64
	sampleRate   int
	effects      map[SoundEffect][]byte
}

// NewAudioSystem creates a new audio system. The ebiten audio context is
// process-wide, so an existing one is reused.
func NewAudioSystem() *AudioSystem {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(audioSampleRate)
	}
	s := &AudioSystem{
		audioContext: ctx,
		volume:       1.0, // Default volume
		sampleRate:   ctx.SampleRate(),
		effects:      make(map[SoundEffect][]byte, len(effectTones)),
	}
	for effect, spec := range effectTones {
		s.effects[effect] = SineTonePCM(s.sampleRate, spec.freq, spec.duration, spec.volume)
	}
	return s
}

// SineTonePCM renders a fading sine tone as 16-bit little-endian stereo PCM
func SineTonePCM(sampleRate int, freq float64, duration time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		envelope := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * envelope
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], sample)
		binary.LittleEndian.PutUint16(buf[4*i+2:], sample)
	}
	return buf
}

// Subscribe plays effects for simulation events
func (s *AudioSystem) Subscribe(em *ecs.EventManager) {
	em.Subscribe(systems.EventProjectileFired, func(ecs.Event) { s.PlayEffect(SoundFire) })
	em.Subscribe(systems.EventHostileKilled, func(ecs.Event) { s.PlayEffect(SoundHostileKilled) })
	em.Subscribe(systems.EventPlayerKilled, func(ecs.Event) { s.PlayEffect(SoundPlayerKilled) })
	em.Subscribe(systems.EventPlayerSpawned, func(ecs.Event) { s.PlayEffect(SoundPlayerSpawned) })
}

// PlayEffect starts a one-shot effect tone
func (s *AudioSystem) PlayEffect(effect SoundEffect) {
	pcm, ok := s.effects[effect]
	if !ok || s.volume == 0 {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}

// PlayBGM starts playing background music
func (s *AudioSystem) PlayBGM(path string) error {
	// Stop any currently playing BGM
	s.StopBGM()

	// Open the audio file
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	var stream io.ReadSeeker

	// Determine file type and create appropriate stream
	switch ext := extension(path); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(s.sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(s.sampleRate, file)
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	var src io.Reader = stream
	if n := lengthOf(stream); n > 0 {
		src = audio.NewInfiniteLoop(stream, n)
	}
	player, err := s.audioContext.NewPlayer(src)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}

	s.bgmStream = stream
	s.bgmFile = file

	s.bgmPlayer = player
	s.bgmPlayer.SetVolume(s.volume)
	s.bgmPlayer.Play()
	return nil
}

func extension(path string) string {
	if len(path) < 4 {
		return ""
	}
	return path[len(path)-4:]
}

func lengthOf(stream io.ReadSeeker) int64 {
	if l, ok := stream.(interface{ Length() int64 }); ok {
		return l.Length()
	}
	return 0
}

// StopBGM stops the background music
func (s *AudioSystem) StopBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Close()
		s.bgmPlayer = nil
	}
	if s.bgmStream != nil {
		if closer, ok := s.bgmStream.(io.Closer); ok {
			closer.Close()
		}
		s.bgmStream = nil
	}
	if s.bgmFile != nil {
		s.bgmFile.Close()
		s.bgmFile = nil
	}
}

// ResumeBGM resumes the background music
func (s *AudioSystem) ResumeBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Play()
	}
}

// PauseBGM pauses the background music without releasing it
func (s *AudioSystem) PauseBGM() {
	if s.bgmPlayer != nil {
		s.bgmPlayer.Pause()
	}
}

// IsBGMPlaying returns whether background music is currently playing
func (s *AudioSystem) IsBGMPlaying() bool {
	return s.bgmPlayer != nil && s.bgmPlayer.IsPlaying()
}

func (s *AudioSystem) Close() {
	s.StopBGM()
}
