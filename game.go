package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-shooter/data"
	"ebiten-shooter/gui"
	"ebiten-shooter/screens"
	"ebiten-shooter/systems"
)

// SpriteDirectory holds the JSON sprite templates
const SpriteDirectory = "data/sprites"

// Game implements ebiten.Game interface.
type Game struct {
	screenStack     *screens.ScreenStack
	templateManager *data.SpriteTemplateManager
	audioSystem     *gui.AudioSystem
}

// NewGame creates a new game instance showing the start screen
func NewGame() *Game {
	// Initialize the sprite template manager
	templateManager := data.NewSpriteTemplateManager()
	if err := templateManager.LoadTemplatesFromDirectory(SpriteDirectory); err != nil {
		log.Printf("Warning: using built-in sprites: %v", err)
		systems.GetMessageLog().AddTyped("Using built-in sprites", systems.MessageTypeSystem)
	}

	game := &Game{
		screenStack:     screens.NewScreenStack(),
		templateManager: templateManager,
		audioSystem:     gui.NewAudioSystem(),
	}
	game.screenStack.Push(screens.NewStartScreen(game.audioSystem))
	return game
}

// Update updates the top screen and applies the transition it asks for.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	if g.screenStack.Len() == 0 {
		g.screenStack.Push(screens.NewStartScreen(g.audioSystem))
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.screenStack.Replace(screens.NewGameScreen(g.templateManager, g.audioSystem))
	case errors.Is(err, screens.ErrGameOver):
		if gameScreen, ok := g.screenStack.Peek().(*screens.GameScreen); ok {
			g.screenStack.Push(screens.NewGameOverScreen(gameScreen.Scoreboard()))
		}
	case errors.Is(err, screens.ErrMainMenu):
		g.screenStack.Reset(screens.NewStartScreen(g.audioSystem))
	case errors.Is(err, screens.ErrQuit):
		g.audioSystem.Close()
		return ebiten.Termination
	default:
		return err
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
