package systems

import (
	"math/rand"
	"testing"

	"ebiten-shooter/components"
	"ebiten-shooter/config"
	"ebiten-shooter/ecs"
)

func TestSessionPlacesFirstCraftAtLaidOutSize(t *testing.T) {
	store := NewSpriteStore()
	surface := &fixedSurface{width: 800, height: 600}
	session := NewSession(SimulationConfig{
		Renderer: store,
		Surface:  surface,
		Events:   ecs.NewEventManager(),
		Rand:     rand.New(rand.NewSource(1)),
	})
	if session.Started() {
		t.Fatal("session must not build the simulation before its first tick")
	}
	if store.Len() != 0 {
		t.Fatalf("no sprite should exist before the first tick, got %d", store.Len())
	}

	// the host lays out its real size between construction and the first frame
	surface.width, surface.height = 1024, 748

	if !session.Tick(0) {
		t.Fatal("first tick should keep running")
	}
	sprites := store.VisibleSprites()
	if len(sprites) != 1 || sprites[0].Kind != components.KindPlayer {
		t.Fatalf("want exactly the first craft visible, got %+v", sprites)
	}
	wantY := surface.height * config.PlayerSpawnDepth
	if sprites[0].X != 512 || sprites[0].Y != wantY {
		t.Errorf("craft at (%v, %v), want (512, %v)", sprites[0].X, sprites[0].Y, wantY)
	}
}
