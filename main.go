package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-shooter/config"
	"ebiten-shooter/terminal"
)

func main() {
	// Check for command-line flags
	if len(os.Args) > 1 {
		if os.Args[1] == "--terminal" {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err := terminal.Run(ctx, SpriteDirectory)
			stop()
			if err != nil {
				log.Fatal(err)
			}
			return
		}
	}

	// Run the windowed game
	game := NewGame()
	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	ebiten.SetWindowTitle("Sky Defender")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
