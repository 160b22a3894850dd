package components

import "ebiten-shooter/ecs"

// Renderer is the render collaborator. The simulation calls Create when an
// entity is built, SetVisible when it first appears, SetPosition after every
// in-bounds move and Destroy when it dies.
type Renderer interface {
	Create(kind Kind) ecs.EntityID
	SetVisible(id ecs.EntityID, visible bool)
	SetPosition(id ecs.EntityID, x, y float64)
	Destroy(id ecs.EntityID)
}

// Direction is the horizontal intent of the player
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// InputState is one sample of the input collaborator
type InputState struct {
	Direction Direction
	Fire      bool
}

// InputProvider is sampled once per tick while the craft moves
type InputProvider interface {
	Sample() InputState
}

// NopRenderer issues handles and discards every other render call
type NopRenderer struct{}

func (NopRenderer) Create(Kind) ecs.EntityID                   { return ecs.NewEntityID() }
func (NopRenderer) SetVisible(ecs.EntityID, bool)              {}
func (NopRenderer) SetPosition(ecs.EntityID, float64, float64) {}
func (NopRenderer) Destroy(ecs.EntityID)                       {}

// StaticInput always reports the same state
type StaticInput InputState

// Sample implements InputProvider
func (s StaticInput) Sample() InputState { return InputState(s) }

// Highlighter is implemented by renderers that mark a craft still inside its
// grace period
type Highlighter interface {
	SetHighlight(id ecs.EntityID, on bool)
}
