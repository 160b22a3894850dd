package terminal

import (
	"github.com/gdamore/tcell/v2"

	"ebiten-shooter/components"
)

// KeyInput is the terminal input collaborator. Terminals report key presses
// but not releases, so the direction latches until another steering key and
// Space toggles the trigger.
type KeyInput struct {
	state components.InputState
}

// NewKeyInput creates an idle input
func NewKeyInput() *KeyInput {
	return &KeyInput{}
}

// HandleKey applies a key press and reports whether it was consumed
func (k *KeyInput) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.state.Direction = components.DirLeft
		return true
	case tcell.KeyRight:
		k.state.Direction = components.DirRight
		return true
	case tcell.KeyDown:
		k.state.Direction = components.DirNone
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.state.Direction = components.DirLeft
		case 'd', 'D':
			k.state.Direction = components.DirRight
		case 's', 'S':
			k.state.Direction = components.DirNone
		case ' ':
			k.state.Fire = !k.state.Fire
		default:
			return false
		}
		return true
	}
	return false
}

// Reset clears direction and trigger
func (k *KeyInput) Reset() {
	k.state = components.InputState{}
}

// Sample implements components.InputProvider
func (k *KeyInput) Sample() components.InputState {
	return k.state
}
