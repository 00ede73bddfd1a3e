package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the host tells the game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second; game time follows the wall clock
	Seed     int64 // Path seed; 0 lets the host pick one from the clock
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// TickInterval returns the time between frames.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the host-facing summary of a running game.
type GameState struct {
	Score    int  // Coins currently at stake
	GameOver bool // Whether the session reached a terminal state
	Won      bool // Whether the terminal state is a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
