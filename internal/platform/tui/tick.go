// Package tui provides the Bubble Tea host for Sky Memory: the play loop,
// the level picker, the history screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of a frame. The play model derives the
// frame delta from it, so late ticks do not slow the game down.
type TickMsg time.Time

// tickCmd schedules the next frame after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
