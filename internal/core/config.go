package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The frontend describes its viewport; the game derives world size from it.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in screen units (cells or pixels)
	ScreenH  int   // Viewport height in screen units
	CellW    int   // World units per screen unit horizontally (1 for pixel frontends)
	CellH    int   // World units per screen unit vertically
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		CellW:    1,
		CellH:    1,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WorldSize returns the viewport size in world units.
func (c RuntimeConfig) WorldSize() (w, h float64) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return float64(c.ScreenW * cw), float64(c.ScreenH * ch)
}

// GameState represents the current state of a game.
// Returned by Step to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Time     int  // Elapsed seconds
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick the game transitioned to game over.
	Ended bool
}
