package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-memory/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayKeyMapAction(t *testing.T) {
	keys := DefaultPlayKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"enter climbs", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space climbs", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"left aims", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a aims", runeKey("a"), core.ActionLeft},
		{"right aims", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d aims", runeKey("d"), core.ActionRight},
		{"h repeats", runeKey("h"), core.ActionRepeat},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"n advances", runeKey("n"), core.ActionNext},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc leaves", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"help is host side", runeKey("?"), core.ActionNone},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
