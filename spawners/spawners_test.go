package spawners_test

import (
	"math/rand"
	"testing"

	"ebiten-shooter/components"
	"ebiten-shooter/spawners"
	"ebiten-shooter/systems"
)

func newSpawner(seed int64) (*spawners.EntitySpawner, *systems.SpriteStore, *[]string) {
	store := systems.NewSpriteStore()
	var logged []string
	s := spawners.NewEntitySpawner(store, nil, rand.New(rand.NewSource(seed)), func(msg string) {
		logged = append(logged, msg)
	})
	return s, store, &logged
}

func TestCreatePlayer(t *testing.T) {
	s, store, logged := newSpawner(1)

	player := s.CreatePlayer(800, 600)

	if player.Pos != (components.Vec2{X: 400, Y: 510}) {
		t.Errorf("position = %+v, want (400, 510)", player.Pos)
	}
	if !player.Bounded || player.DeadIfOut {
		t.Errorf("craft flags bounded=%v deadIfOut=%v, want true/false", player.Bounded, player.DeadIfOut)
	}
	if player.Player == nil || player.Player.LastLaunch != -1 {
		t.Fatalf("craft data = %+v, want LastLaunch -1", player.Player)
	}
	if player.Player.Shown || player.Player.CanDie {
		t.Error("a created craft is neither shown nor vulnerable")
	}
	sp, ok := store.Sprite(player.ID)
	if !ok || sp.Visible || sp.Kind != components.KindPlayer {
		t.Errorf("sprite = %+v (ok=%v), want hidden player sprite", sp, ok)
	}
	if player.Size.W == 0 || player.Size.H == 0 {
		t.Error("craft should take its size from the sprite template")
	}
	if len(*logged) != 1 {
		t.Errorf("logged %d messages, want 1", len(*logged))
	}
}

func TestCreateProjectile(t *testing.T) {
	s, store, _ := newSpawner(1)

	p := s.CreateProjectile(components.Vec2{X: 12, Y: 34})

	if p.Vel != (components.Vec2{X: 0, Y: -1}) {
		t.Errorf("velocity = %+v, want (0, -1)", p.Vel)
	}
	if !p.DeadIfOut || p.Bounded {
		t.Errorf("projectile flags bounded=%v deadIfOut=%v, want false/true", p.Bounded, p.DeadIfOut)
	}
	sp, _ := store.Sprite(p.ID)
	if sp.X != 12 || sp.Y != 34 {
		t.Errorf("sprite at (%v, %v), want (12, 34)", sp.X, sp.Y)
	}
}

func TestCreateHostileRanges(t *testing.T) {
	s, store, _ := newSpawner(42)

	for i := 0; i < 500; i++ {
		h := s.CreateHostile(100)
		if h.Pos != (components.Vec2{X: 100, Y: 0}) {
			t.Fatalf("position = %+v, want (100, 0)", h.Pos)
		}
		if h.Vel.Y < 0.2 || h.Vel.Y >= 1.2 {
			t.Fatalf("vertical speed %v outside [0.2, 1.2)", h.Vel.Y)
		}
		if h.Hostile.Phase < 0 || h.Hostile.Phase >= 200 {
			t.Fatalf("phase %v outside [0, 200)", h.Hostile.Phase)
		}
		if h.Bounded || h.DeadIfOut {
			t.Fatal("hostiles use their own vertical death rule")
		}
		if sp, _ := store.Sprite(h.ID); sp.Visible {
			t.Fatal("hostile should be hidden until first drawn")
		}
	}
}

func TestHostileSpawnXStaysInMiddleBand(t *testing.T) {
	s, _, _ := newSpawner(7)

	for i := 0; i < 1000; i++ {
		x := s.HostileSpawnX(1000)
		if x < 100 || x >= 900 {
			t.Fatalf("spawn x %v outside [100, 900)", x)
		}
	}
}

func TestNilCollaboratorsFallBack(t *testing.T) {
	s := spawners.NewEntitySpawner(nil, nil, rand.New(rand.NewSource(1)), nil)

	player := s.CreatePlayer(100, 100)
	if player == nil || player.Size.W == 0 {
		t.Fatal("spawner with nil collaborators should still build sized entities")
	}
	if _, ok := s.Renderer().(components.NopRenderer); !ok {
		t.Errorf("renderer = %T, want components.NopRenderer", s.Renderer())
	}
}
