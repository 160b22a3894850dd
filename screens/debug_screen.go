package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-shooter/systems"
)

// DebugScreen shows the message log in a modal window
type DebugScreen struct {
	*BaseScreen
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.RGBA
	log          *systems.MessageLog
}

// NewDebugScreen creates a new debug screen over the shared message log
func NewDebugScreen() *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    color.RGBA{255, 255, 255, 255},
		log:          systems.GetMessageLog(),
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through debug messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	// ESC or F1 closes the debug window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)
	drawFrame(modal, s.width, s.height, 2)

	title := "MESSAGE LOG"
	drawColoredText(modal, title, (s.width-len(title)*6)/2, 4, s.textColor)

	// Oldest first, the way the log stores them
	messages := s.log.Messages
	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		drawColoredText(modal, msg.Text, 10, startY+i*lineHeight, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		span := float32(s.height - startY)
		barHeight := float32(maxLines) / float32(len(messages)) * span
		barY := float32(startY) + float32(startIdx)/float32(len(messages))*span
		vector.DrawFilledRect(modal, float32(s.width-10), barY, 5, barHeight, color.White, false)
	}

	drawColoredText(modal, "UP/DOWN: Scroll  ESC: Close", 10, s.height-20, s.textColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
	modal.Deallocate()
}
