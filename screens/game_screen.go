package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-shooter/config"
	"ebiten-shooter/data"
	"ebiten-shooter/ecs"
	"ebiten-shooter/gui"
	"ebiten-shooter/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	session      *systems.Session
	renderSystem *gui.RenderSystem
	input        *gui.KeyboardInput
	audioSystem  *gui.AudioSystem
	board        *systems.Scoreboard
	events       *ecs.EventManager
	timer        *systems.FrameTimer
	screenStack  *ScreenStack
}

// NewGameScreen creates a new game screen. The simulation starts on the
// first Update, after the screen has been laid out. audioSystem may be nil.
func NewGameScreen(templates *data.SpriteTemplateManager, audioSystem *gui.AudioSystem) *GameScreen {
	s := &GameScreen{
		BaseScreen:   NewBaseScreen(),
		renderSystem: gui.NewRenderSystem(templates),
		input:        gui.NewKeyboardInput(),
		audioSystem:  audioSystem,
		board:        systems.NewScoreboard(),
		events:       ecs.NewEventManager(),
		timer:        systems.NewFrameTimer(nil),
		screenStack:  NewScreenStack(),
	}

	s.board.Subscribe(s.events)
	systems.GetMessageLog().Subscribe(s.events)
	if audioSystem != nil {
		audioSystem.Subscribe(s.events)
	}

	s.session = systems.NewSession(systems.SimulationConfig{
		Renderer:  s.renderSystem,
		Input:     s.input,
		Surface:   s,
		Events:    s.events,
		Templates: templates,
		Log:       systems.GetMessageLog().Add,
	})

	systems.GetMessageLog().AddTyped("Defend the sky! A/D to steer, SPACE to fire.", systems.MessageTypeSystem)
	return s
}

// Scoreboard returns the tally of this game
func (s *GameScreen) Scoreboard() *systems.Scoreboard {
	return s.board
}

// ViewportSize implements systems.Surface. The HUD strip is not part of the playfield.
func (s *GameScreen) ViewportSize() (float64, float64) {
	height := s.GetHeight() - config.HUDHeight
	if height < 0 {
		height = 0
	}
	return float64(s.GetWidth()), float64(height)
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// The simulation stands still while a modal is open
	if s.screenStack.Len() > 0 {
		if err := s.screenStack.Update(); err != nil {
			return err
		}
		if s.screenStack.Len() == 0 {
			s.closeOverlay()
		}
		return nil
	}

	// Toggle debug message window with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.openOverlay(NewDebugScreen())
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.openOverlay(NewPauseScreen())
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrMainMenu
	}

	s.input.Update()
	s.renderSystem.Update()

	if !s.session.Tick(s.timer.Timestamp()) {
		return ErrGameOver
	}
	return nil
}

// openOverlay pushes a modal and freezes simulation time and music
func (s *GameScreen) openOverlay(screen Screen) {
	s.screenStack.Push(screen)
	s.timer.Pause()
	if s.audioSystem != nil {
		s.audioSystem.PauseBGM()
	}
}

// closeOverlay resumes play once the last modal is gone
func (s *GameScreen) closeOverlay() {
	s.input.Reset()
	s.timer.Resume()
	if s.audioSystem != nil {
		s.audioSystem.ResumeBGM()
	}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.board)
	s.screenStack.Draw(screen)
}

// Layout records the size for the playfield and the open modals
func (s *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.screenStack.Layout(outsideWidth, outsideHeight)
	return s.BaseScreen.Layout(outsideWidth, outsideHeight)
}
