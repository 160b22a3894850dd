package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one layer of the UI: a menu, the playfield or a modal over it
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack owns the open screens. Only the top one receives input;
// all of them are drawn and laid out.
type ScreenStack struct {
	screens []Screen
	// last size passed to Layout, 0 before the first call
	width, height int
}

// NewScreenStack creates an empty stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Push opens screen on top. Once the stack has been laid out the new
// screen is given the same size right away.
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
	if s.width > 0 || s.height > 0 {
		screen.Layout(s.width, s.height)
	}
}

// Pop closes the top screen and returns it
func (s *ScreenStack) Pop() Screen {
	top := s.Peek()
	if top != nil {
		s.screens[len(s.screens)-1] = nil
		s.screens = s.screens[:len(s.screens)-1]
	}
	return top
}

// Replace swaps the top screen for screen
func (s *ScreenStack) Replace(screen Screen) {
	s.Pop()
	s.Push(screen)
}

// Reset closes every screen and opens screen alone
func (s *ScreenStack) Reset(screen Screen) {
	clear(s.screens)
	s.screens = s.screens[:0]
	s.Push(screen)
}

// Peek returns the top screen, nil when empty
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len is the number of open screens
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update runs the top screen. ErrCloseScreen pops it and is not passed on;
// any other error is returned for the owner to act on.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout records the outside size, lays out every screen and returns the
// top screen's logical size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = outsideWidth, outsideHeight
	w, h := outsideWidth, outsideHeight
	for _, scr := range s.screens {
		w, h = scr.Layout(outsideWidth, outsideHeight)
	}
	return w, h
}
