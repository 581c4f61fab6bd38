// Package tui is the terminal presenter: it runs the game engine inside a
// Bubble Tea program, maps keys to actions and renders the field with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the engine by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
