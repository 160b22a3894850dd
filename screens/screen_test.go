package screens

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScreen returns a scripted error from Update and records layout calls
type stubScreen struct {
	name          string
	updateErr     error
	updates       int
	width, height int
}

func (s *stubScreen) Update() error {
	s.updates++
	return s.updateErr
}

func (s *stubScreen) Draw(*ebiten.Image) {}

func (s *stubScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func TestScreenStackPopsOnClose(t *testing.T) {
	stack := NewScreenStack()
	base := &stubScreen{name: "game"}
	modal := &stubScreen{name: "pause", updateErr: ErrCloseScreen}
	stack.Push(base)
	stack.Push(modal)

	if err := stack.Update(); err != nil {
		t.Fatalf("closing a screen should not surface an error, got %v", err)
	}
	if stack.Len() != 1 || stack.Peek() != base {
		t.Fatalf("closed modal should be popped, top = %v", stack.Peek())
	}
	if base.updates != 0 {
		t.Error("only the top screen is updated")
	}
}

func TestScreenStackPassesTransitions(t *testing.T) {
	stack := NewScreenStack()
	stack.Push(&stubScreen{updateErr: ErrGameOver})

	if err := stack.Update(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Update() = %v, want ErrGameOver", err)
	}
	if stack.Len() != 1 {
		t.Error("a transition error leaves the stack to its owner")
	}
}

func TestScreenStackLayout(t *testing.T) {
	stack := NewScreenStack()
	early := &stubScreen{}
	stack.Push(early)
	if early.width != 0 {
		t.Fatal("a screen pushed before any layout keeps its own size")
	}

	w, h := stack.Layout(1024, 768)
	if w != 1024 || h != 768 || early.width != 1024 || early.height != 768 {
		t.Fatalf("Layout = %dx%d, screen saw %dx%d", w, h, early.width, early.height)
	}

	// screens opened later start at the laid-out size
	late := &stubScreen{}
	stack.Push(late)
	if late.width != 1024 || late.height != 768 {
		t.Errorf("pushed screen laid out at %dx%d, want 1024x768", late.width, late.height)
	}
}

func TestScreenStackReplaceAndReset(t *testing.T) {
	stack := NewScreenStack()
	start := &stubScreen{name: "start"}
	stack.Push(start)

	game := &stubScreen{name: "game"}
	stack.Replace(game)
	if stack.Len() != 1 || stack.Peek() != game {
		t.Fatalf("Replace should swap the top screen, top = %v", stack.Peek())
	}

	stack.Push(&stubScreen{name: "over"})
	menu := &stubScreen{name: "menu"}
	stack.Reset(menu)
	if stack.Len() != 1 || stack.Peek() != menu {
		t.Fatalf("Reset should leave only the new screen, len = %d", stack.Len())
	}

	stack.Pop()
	if stack.Peek() != nil || stack.Pop() != nil || stack.Update() != nil {
		t.Error("an empty stack has no top and updates nothing")
	}
}

func TestGameScreenViewportUsesLaidOutSize(t *testing.T) {
	stack := NewScreenStack()
	stack.Layout(1024, 768)

	// a nil template manager falls back to the built-in sprites
	game := NewGameScreen(nil, nil)
	stack.Push(game)

	w, h := game.ViewportSize()
	if w != 1024 || h != 768-20 {
		t.Errorf("viewport = %vx%v, want 1024x748", w, h)
	}
}

func TestGameScreenOverlayFreezesTime(t *testing.T) {
	game := NewGameScreen(nil, nil)

	game.openOverlay(NewPauseScreen())
	if !game.timer.Paused() || game.screenStack.Len() != 1 {
		t.Fatal("opening a modal should pause simulation time")
	}

	game.screenStack.Pop()
	game.closeOverlay()
	if game.timer.Paused() {
		t.Error("closing the last modal should resume simulation time")
	}
}
