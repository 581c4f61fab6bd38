package tui

import (
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chromapong/internal/notes"
)

// Sample load states shown in the note table.
const (
	StatusLoaded  = "loaded"
	StatusMissing = "missing"
)

// NoteRows converts bank samples into table rows: index, note, file, status.
func NoteRows(samples []notes.Sample) []table.Row {
	rows := make([]table.Row, 0, len(samples))
	for _, s := range samples {
		status := StatusMissing
		if s.Loaded {
			status = StatusLoaded
		}
		rows = append(rows, table.Row{
			strconv.Itoa(s.Key.Index()),
			s.Key.Name(),
			filepath.Base(s.Path),
			status,
		})
	}
	return rows
}

// RenderNoteTable renders the note bank report as a static table.
func RenderNoteTable(samples []notes.Sample) string {
	columns := []table.Column{
		{Title: "Index", Width: 6},
		{Title: "Note", Width: 6},
		{Title: "File", Width: 12},
		{Title: "Status", Width: 8},
	}
	rows := NoteRows(samples)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	return tableStyle.Render(t.View())
}
