package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-shooter/components"
)

type keyBinding struct {
	key       ebiten.Key
	direction components.Direction
}

// KeyboardInput turns ebiten key transitions into the input state the craft samples
type KeyboardInput struct {
	// Direction keys in priority order
	movementKeys []keyBinding
	fireKeys     []ebiten.Key
	state        components.InputState
}

// NewKeyboardInput creates the default bindings: A/Left, D/Right and Space
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		movementKeys: []keyBinding{
			{ebiten.KeyA, components.DirLeft},
			{ebiten.KeyArrowLeft, components.DirLeft},
			{ebiten.KeyD, components.DirRight},
			{ebiten.KeyArrowRight, components.DirRight},
		},
		fireKeys: []ebiten.Key{ebiten.KeySpace},
	}
}

// Update polls ebiten once per frame, before the simulation ticks
func (k *KeyboardInput) Update() {
	for _, b := range k.movementKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			k.Press(b.direction)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			k.Release(b.direction)
		}
	}

	fire := false
	for _, key := range k.fireKeys {
		if ebiten.IsKeyPressed(key) {
			fire = true
		}
	}
	k.state.Fire = fire
}

// Press makes dir the current intent
func (k *KeyboardInput) Press(dir components.Direction) {
	k.state.Direction = dir
}

// Release clears the intent only if dir is the active direction
func (k *KeyboardInput) Release(dir components.Direction) {
	if k.state.Direction == dir {
		k.state.Direction = components.DirNone
	}
}

// SetFire sets the fire-hold state directly
func (k *KeyboardInput) SetFire(held bool) {
	k.state.Fire = held
}

// Reset forgets any held keys
func (k *KeyboardInput) Reset() {
	k.state = components.InputState{}
}

// Sample implements components.InputProvider
func (k *KeyboardInput) Sample() components.InputState {
	return k.state
}
