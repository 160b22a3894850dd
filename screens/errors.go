package screens

import "errors"

// Screen transitions, returned from Update
var (
	ErrNewGame  = errors.New("new game")
	ErrQuit     = errors.New("quit")
	ErrGameOver = errors.New("game over")
	// ErrMainMenu drops every screen and reopens the start menu
	ErrMainMenu = errors.New("main menu")
	// ErrCloseScreen pops the screen that returned it
	ErrCloseScreen = errors.New("close screen")
)
