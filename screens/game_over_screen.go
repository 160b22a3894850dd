package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-shooter/systems"
)

// GameOverScreen displays the final tally once the simulation stops
type GameOverScreen struct {
	*BaseScreen
	board *systems.Scoreboard
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(board *systems.Scoreboard) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		board:      board,
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrMainMenu
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lines := []string{
		"GAME OVER",
		"",
		s.board.Summary(),
		"",
		"Press Escape to return to the start screen",
	}
	white := color.RGBA{255, 255, 255, 255}
	for i, line := range lines {
		drawColoredText(screen, line, screenWidth/2-len(line)*3, screenHeight/2-40+i*16, white)
	}
}
