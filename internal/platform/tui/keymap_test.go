package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromapong/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantQuit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("MapKey() action = %v, want %v", action, tt.wantAction)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("MapKey() isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
