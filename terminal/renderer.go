package terminal

import (
	"github.com/gdamore/tcell/v2"

	"ebiten-shooter/config"
	"ebiten-shooter/data"
	"ebiten-shooter/systems"
)

// hudRows is the number of terminal rows above the playfield
const hudRows = 1

// CellRenderer is the terminal render collaborator. Each sprite occupies a
// single cell holding its template glyph.
type CellRenderer struct {
	*systems.SpriteStore
	screen    tcell.Screen
	templates *data.SpriteTemplateManager
	frame     int
}

// NewCellRenderer creates a renderer drawing onto screen
func NewCellRenderer(screen tcell.Screen, templates *data.SpriteTemplateManager) *CellRenderer {
	if templates == nil {
		templates = data.NewSpriteTemplateManager()
	}
	return &CellRenderer{
		SpriteStore: systems.NewSpriteStore(),
		screen:      screen,
		templates:   templates,
	}
}

// CellOf maps a playfield position to a screen cell below the HUD
func CellOf(x, y float64) (col, row int) {
	return int(x) / config.CellWidth, int(y)/config.CellHeight + hudRows
}

// Draw repaints the HUD and every visible sprite, then shows the screen
func (r *CellRenderer) Draw(board *systems.Scoreboard, status string) {
	r.frame++
	r.screen.Clear()

	hud := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	cols, _ := r.screen.Size()
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, hud)
	}
	drawText(r.screen, 1, 0, board.Summary(), hud)
	if status != "" {
		drawText(r.screen, cols-len(status)-1, 0, status, hud.Bold(true))
	}

	for _, sp := range r.VisibleSprites() {
		tmpl := r.templates.GetTemplate(sp.Kind)
		clr := tmpl.RGBA()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
		// Crafts in their grace period blink
		if sp.Highlighted && (r.frame/8)%2 == 1 {
			style = style.Dim(true)
		}
		col, row := CellOf(sp.X, sp.Y)
		r.screen.SetContent(col, row, tmpl.Rune(), nil, style)
	}

	r.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
