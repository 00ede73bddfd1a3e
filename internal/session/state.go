package session

import "fmt"

// State is the phase of a play session.
type State int

const (
	StateSetup State = iota
	StateReveal
	StatePlayable
	StatePaused
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "Setup"
	case StateReveal:
		return "Reveal"
	case StatePlayable:
		return "Playable"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s ends the session.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
