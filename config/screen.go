package config

// Screen layout configuration
const (
	// Logical playfield dimensions in pixels
	ScreenWidth  = 800
	ScreenHeight = 600

	// Height of the HUD strip drawn above the playfield
	HUDHeight = 20

	// Terminal cell size used to map pixel coordinates to character cells
	CellWidth  = 8
	CellHeight = 16

	// Target ticks per second for the GUI host
	TicksPerSecond = 60
)

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768
}
