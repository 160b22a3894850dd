package systems

import (
	"slices"

	"ebiten-shooter/components"
	"ebiten-shooter/ecs"
)

// Sprite is the render-side record of one entity
type Sprite struct {
	ID          ecs.EntityID
	Kind        components.Kind
	Visible     bool
	Highlighted bool
	X, Y        float64
}

// SpriteStore is the bookkeeping half of a render collaborator. Host
// renderers embed it and only add drawing.
type SpriteStore struct {
	ids     ecs.IDAllocator
	sprites map[ecs.EntityID]*Sprite
}

// NewSpriteStore creates an empty store
func NewSpriteStore() *SpriteStore {
	return &SpriteStore{sprites: make(map[ecs.EntityID]*Sprite)}
}

// Create implements components.Renderer
func (s *SpriteStore) Create(kind components.Kind) ecs.EntityID {
	id := s.ids.Next()
	s.sprites[id] = &Sprite{ID: id, Kind: kind, Visible: true}
	return id
}

// SetVisible implements components.Renderer
func (s *SpriteStore) SetVisible(id ecs.EntityID, visible bool) {
	if sp, ok := s.sprites[id]; ok {
		sp.Visible = visible
	}
}

// SetPosition implements components.Renderer
func (s *SpriteStore) SetPosition(id ecs.EntityID, x, y float64) {
	if sp, ok := s.sprites[id]; ok {
		sp.X, sp.Y = x, y
	}
}

// Destroy implements components.Renderer
func (s *SpriteStore) Destroy(id ecs.EntityID) {
	delete(s.sprites, id)
}

// SetHighlight implements components.Highlighter
func (s *SpriteStore) SetHighlight(id ecs.EntityID, on bool) {
	if sp, ok := s.sprites[id]; ok {
		sp.Highlighted = on
	}
}

// Sprite returns the record for a handle
func (s *SpriteStore) Sprite(id ecs.EntityID) (Sprite, bool) {
	sp, ok := s.sprites[id]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Len is the number of live sprites, visible or not
func (s *SpriteStore) Len() int {
	return len(s.sprites)
}

// VisibleSprites returns the visible sprites in creation order
func (s *SpriteStore) VisibleSprites() []Sprite {
	out := make([]Sprite, 0, len(s.sprites))
	for _, sp := range s.sprites {
		if sp.Visible {
			out = append(out, *sp)
		}
	}
	slices.SortFunc(out, func(a, b Sprite) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}
