package systems

import (
	"fmt"
	"math"
	"strconv"

	"ebiten-shooter/config"
	"ebiten-shooter/ecs"
)

// Ratio placeholders
const (
	RatioNoDeaths = "YES!"
	RatioNoKills  = "ARE YOU KIDDING?"
)

// Scoreboard counts kills and deaths and derives the HUD values
type Scoreboard struct {
	HostileKills int
	PlayerDeaths int
}

// NewScoreboard creates an empty scoreboard
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Subscribe wires the scoreboard to the kill and death events
func (s *Scoreboard) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventHostileKilled, func(ecs.Event) { s.OnHostileKilled() })
	em.Subscribe(EventPlayerKilled, func(ecs.Event) { s.OnPlayerKilled() })
}

// OnHostileKilled records one hostile kill
func (s *Scoreboard) OnHostileKilled() {
	s.HostileKills++
}

// OnPlayerKilled records one player death
func (s *Scoreboard) OnPlayerKilled() {
	s.PlayerDeaths++
}

// Score is the points earned from kills
func (s *Scoreboard) Score() int {
	return s.HostileKills * config.HostileValue
}

// LivesLost is the points lost to deaths
func (s *Scoreboard) LivesLost() int {
	return s.PlayerDeaths * config.PlayerValue
}

// Ratio is the kill:death ratio weighted by the hostile and player values, as a percentage
func (s *Scoreboard) Ratio() string {
	if s.PlayerDeaths == 0 {
		return RatioNoDeaths
	}
	if s.HostileKills == 0 {
		return RatioNoKills
	}
	weight := float64(config.HostileValue) / float64(config.PlayerValue) * 100
	pct := math.Round(float64(s.HostileKills) / float64(s.PlayerDeaths) * weight)
	return strconv.FormatFloat(pct, 'f', 0, 64) + "%"
}

// Summary is the one-line HUD text
func (s *Scoreboard) Summary() string {
	return fmt.Sprintf("SCORE %d   LIVES LOST %d   RATIO %s", s.Score(), s.LivesLost(), s.Ratio())
}
