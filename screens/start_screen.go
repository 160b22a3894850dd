package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-shooter/gui"
	"ebiten-shooter/systems"
)

// BackgroundMusicPath is played on the start screen when present
const BackgroundMusicPath = "assets/audio/background.ogg"

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	titleColor     color.RGBA
	optionColor    color.RGBA
	selectedColor  color.RGBA
	audioSystem    *gui.AudioSystem
	musicTried     bool
}

// NewStartScreen creates a new start screen. audioSystem may be nil.
func NewStartScreen(audioSystem *gui.AudioSystem) *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen(),
		selectedOption: 0,
		options: []string{
			"New Game",
			"Quit",
		},
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
		audioSystem:   audioSystem,
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	// Start background music once; a missing file only gets logged
	if s.audioSystem != nil && !s.musicTried && !s.audioSystem.IsBGMPlaying() {
		s.musicTried = true
		if err := s.audioSystem.PlayBGM(BackgroundMusicPath); err != nil {
			systems.GetMessageLog().AddTyped("Background music unavailable: "+err.Error(), systems.MessageTypeSystem)
		}
	}

	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch s.selectedOption {
		case 0: // New Game
			return ErrNewGame
		case 1: // Quit
			return ErrQuit
		}
	}

	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{5, 5, 20, 255})

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := screenWidth / 2
	centerY := screenHeight / 2

	title := "SKY DEFENDER"
	drawColoredText(screen, title, centerX-(len(title)*6)/2, centerY-90, s.titleColor)
	help := "A/D or arrows to steer, SPACE to fire, P to pause, F1 for the log"
	drawColoredText(screen, help, centerX-(len(help)*6)/2, centerY-60, s.optionColor)

	// Draw options
	optionSpacing := 30
	startY := centerY - (len(s.options)*optionSpacing)/2

	for i, option := range s.options {
		y := startY + i*optionSpacing
		optionX := centerX - (len(option)*6)/2

		// Choose color based on selection
		textColor := s.optionColor
		if i == s.selectedOption {
			textColor = s.selectedColor
			option = "> " + option + " <"
			optionX -= 12
		}
		drawColoredText(screen, option, optionX, y, textColor)
	}
}

// drawColoredText prints debug-font text tinted with clr
func drawColoredText(screen *ebiten.Image, text string, x, y int, clr color.RGBA) {
	lineImg := ebiten.NewImage(len(text)*6+6, 16)
	ebitenutil.DebugPrintAt(lineImg, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(lineImg, op)
	lineImg.Deallocate()
}
