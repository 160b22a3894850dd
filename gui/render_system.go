package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-shooter/config"
	"ebiten-shooter/data"
	"ebiten-shooter/systems"
)

// blinkFrames is how many frames a highlighted craft stays on or off
const blinkFrames = 8

// RenderSystem is the ebiten render collaborator. Sprites are drawn as
// filled boxes sized and colored by their template.
type RenderSystem struct {
	*systems.SpriteStore
	templates *data.SpriteTemplateManager
	frame     int
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(templates *data.SpriteTemplateManager) *RenderSystem {
	if templates == nil {
		templates = data.NewSpriteTemplateManager()
	}
	return &RenderSystem{
		SpriteStore: systems.NewSpriteStore(),
		templates:   templates,
	}
}

// Update advances the blink animation
func (s *RenderSystem) Update() {
	s.frame++
}

// blinkOn reports whether highlighted sprites are drawn this frame
func (s *RenderSystem) blinkOn() bool {
	return (s.frame/blinkFrames)%2 == 0
}

// Draw renders the HUD strip and every visible sprite
func (s *RenderSystem) Draw(screen *ebiten.Image, board *systems.Scoreboard) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	s.drawHUD(screen, board)

	for _, sp := range s.VisibleSprites() {
		tmpl := s.templates.GetTemplate(sp.Kind)
		clr := tmpl.RGBA()
		if sp.Highlighted && !s.blinkOn() {
			clr.A = 80
			clr.R, clr.G, clr.B = clr.R/3, clr.G/3, clr.B/3
		}
		vector.DrawFilledRect(screen,
			float32(sp.X), float32(sp.Y+config.HUDHeight),
			float32(tmpl.Width), float32(tmpl.Height),
			clr, false)
	}
}

// drawHUD draws the score line and the separator under it
func (s *RenderSystem) drawHUD(screen *ebiten.Image, board *systems.Scoreboard) {
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(width), config.HUDHeight, color.RGBA{20, 20, 40, 255}, false)
	vector.StrokeLine(screen, 0, config.HUDHeight, float32(width), config.HUDHeight, 1, color.RGBA{120, 120, 160, 255}, false)
	if board != nil {
		ebitenutil.DebugPrintAt(screen, board.Summary(), 6, 2)
	}
}
