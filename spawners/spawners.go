package spawners

import (
	"fmt"
	"math/rand"

	"ebiten-shooter/components"
	"ebiten-shooter/config"
	"ebiten-shooter/data"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	renderer        components.Renderer
	templateManager *data.SpriteTemplateManager
	rng             *rand.Rand
	logMessage      func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner. A nil renderer discards
// render calls and a nil template manager falls back to the default sprites.
func NewEntitySpawner(renderer components.Renderer, templateManager *data.SpriteTemplateManager, rng *rand.Rand, logFunc func(string)) *EntitySpawner {
	if renderer == nil {
		renderer = components.NopRenderer{}
	}
	if templateManager == nil {
		templateManager = data.NewSpriteTemplateManager()
	}
	return &EntitySpawner{
		renderer:        renderer,
		templateManager: templateManager,
		rng:             rng,
		logMessage:      logFunc,
	}
}

// Renderer returns the render collaborator entities are registered with
func (s *EntitySpawner) Renderer() components.Renderer {
	return s.renderer
}

// Rand returns the random source shared by the spawner and the world processor
func (s *EntitySpawner) Rand() *rand.Rand {
	return s.rng
}

func (s *EntitySpawner) newEntity(kind components.Kind, pos, vel components.Vec2) *components.Entity {
	return &components.Entity{
		ID:    s.renderer.Create(kind),
		Kind:  kind,
		Pos:   pos,
		Vel:   vel,
		Size:  s.templateManager.GetTemplate(kind).Size(),
		Alive: true,
	}
}

// CreatePlayer creates a hidden craft at the horizontal center, PlayerSpawnDepth
// down the viewport. It stays hidden until shown.
func (s *EntitySpawner) CreatePlayer(frameWidth, frameHeight float64) *components.Entity {
	player := s.newEntity(components.KindPlayer,
		components.Vec2{X: frameWidth / 2, Y: frameHeight * config.PlayerSpawnDepth},
		components.Vec2{})
	player.Bounded = true
	player.Player = &components.PlayerData{LastLaunch: -1}
	s.renderer.SetVisible(player.ID, false)

	s.log(fmt.Sprintf("Fighter created at %.0f,%.0f", player.Pos.X, player.Pos.Y))
	return player
}

// CreateProjectile creates a projectile travelling up from pos
func (s *EntitySpawner) CreateProjectile(pos components.Vec2) *components.Entity {
	projectile := s.newEntity(components.KindProjectile, pos, components.Vec2{X: 0, Y: -config.ProjectileSpeed})
	projectile.DeadIfOut = true
	projectile.Projectile = &components.ProjectileData{}
	s.renderer.SetPosition(projectile.ID, pos.X, pos.Y)
	return projectile
}

// CreateHostile creates a hidden hostile at the top edge with a random
// falling speed and sway phase
func (s *EntitySpawner) CreateHostile(x float64) *components.Entity {
	speed := s.rng.Float64()*config.HostileSpeedRange + config.HostileMinSpeed
	hostile := s.newEntity(components.KindHostile, components.Vec2{X: x, Y: 0}, components.Vec2{X: 0, Y: speed})
	hostile.Hostile = &components.HostileData{
		Phase: s.rng.Float64() * config.HostileCycle,
	}
	s.renderer.SetVisible(hostile.ID, false)
	return hostile
}

// HostileSpawnX picks a horizontal spawn position inside the middle SpawnBand of the width
func (s *EntitySpawner) HostileSpawnX(frameWidth float64) float64 {
	margin := (1 - config.SpawnBand) / 2
	return s.rng.Float64()*frameWidth*config.SpawnBand + frameWidth*margin
}

func (s *EntitySpawner) log(msg string) {
	if s.logMessage != nil {
		s.logMessage(msg)
	}
}
