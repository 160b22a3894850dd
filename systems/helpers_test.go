package systems

import (
	"math/rand"

	"ebiten-shooter/components"
	"ebiten-shooter/ecs"
	"ebiten-shooter/spawners"
)

// recordingRenderer keeps the last state pushed for every handle
type recordingRenderer struct {
	alloc       ecs.IDAllocator
	kinds       map[ecs.EntityID]components.Kind
	visible     map[ecs.EntityID]bool
	positions   map[ecs.EntityID]components.Vec2
	destroyed   map[ecs.EntityID]int
	highlighted map[ecs.EntityID]bool
	showCalls   map[ecs.EntityID]int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		kinds:       map[ecs.EntityID]components.Kind{},
		visible:     map[ecs.EntityID]bool{},
		positions:   map[ecs.EntityID]components.Vec2{},
		destroyed:   map[ecs.EntityID]int{},
		highlighted: map[ecs.EntityID]bool{},
		showCalls:   map[ecs.EntityID]int{},
	}
}

func (r *recordingRenderer) Create(kind components.Kind) ecs.EntityID {
	id := r.alloc.Next()
	r.kinds[id] = kind
	return id
}

func (r *recordingRenderer) SetVisible(id ecs.EntityID, visible bool) {
	r.visible[id] = visible
	if visible {
		r.showCalls[id]++
	}
}

func (r *recordingRenderer) SetPosition(id ecs.EntityID, x, y float64) {
	r.positions[id] = components.Vec2{X: x, Y: y}
}

func (r *recordingRenderer) Destroy(id ecs.EntityID) {
	r.destroyed[id]++
}

func (r *recordingRenderer) SetHighlight(id ecs.EntityID, on bool) {
	r.highlighted[id] = on
}

type fixedSurface struct {
	width, height float64
}

func (s *fixedSurface) ViewportSize() (float64, float64) {
	return s.width, s.height
}

// newTestProcessor builds a processor whose spawn roll never spawns a hostile
func newTestProcessor(input components.InputProvider) (*WorldProcessor, *recordingRenderer, *ecs.EventManager) {
	r := newRecordingRenderer()
	em := ecs.NewEventManager()
	spawner := spawners.NewEntitySpawner(r, nil, rand.New(rand.NewSource(1)), nil)
	p := NewWorldProcessor(spawner, input, em)
	p.roll = func() float64 { return 0 }
	return p, r, em
}

func newHostileAt(p *WorldProcessor, x, y float64) *components.Entity {
	h := p.spawner.CreateHostile(x)
	h.Pos.Y = y
	return h
}

func countKind(entities []*components.Entity, kind components.Kind) int {
	return components.CountKind(entities, kind)
}

func firstOfKind(entities []*components.Entity, kind components.Kind) *components.Entity {
	for _, e := range entities {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}
