package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
	closeKeys  []ebiten.Key
}

// NewModalScreen creates a new modal screen closed by any of closeKeys
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
		closeKeys:  closeKeys,
	}
}

// NewPauseScreen creates the modal shown while the simulation is paused
func NewPauseScreen() *ModalScreen {
	return NewModalScreen("PAUSED", "Press P or ESC to resume", 260, 80, ebiten.KeyP, ebiten.KeyEscape)
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)
	drawFrame(modal, s.width, s.height, 2)

	// Draw title
	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, s.title, titleX, 10)

	// Draw content lines below the title
	for i, line := range strings.Split(s.content, "\n") {
		ebitenutil.DebugPrintAt(modal, line, 10, 40+i*16)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
	modal.Deallocate()
}

// drawFrame strokes a white border inside an image of the given size
func drawFrame(img *ebiten.Image, width, height int, thickness float32) {
	w, h := float32(width), float32(height)
	vector.DrawFilledRect(img, 0, 0, thickness, h, color.White, false)           // Left
	vector.DrawFilledRect(img, w-thickness, 0, thickness, h, color.White, false) // Right
	vector.DrawFilledRect(img, 0, 0, w, thickness, color.White, false)           // Top
	vector.DrawFilledRect(img, 0, h-thickness, w, thickness, color.White, false) // Bottom
}
