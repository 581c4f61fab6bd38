package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromapong/internal/core"
	"github.com/vovakirdan/chromapong/internal/game"
)

// Terminals report key presses but not releases, so a press keeps its
// action held for a short window. Auto-repeat extends it while the key is down.
const holdWindow = 150 * time.Millisecond

// Engine is the simulation driven by the model.
type Engine interface {
	Update(in core.InputFrame)
	Snapshot() game.Snapshot
}

// Options configures the terminal presenter.
type Options struct {
	TickRate      int
	Width, Height int // initial terminal size; updated on resize
	Glyphs        Glyphs
	ScreenshotDir string // ctrl+s target; screenshots disabled if empty
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	engine      Engine
	screen      *core.Screen
	keys        *KeyMapper
	help        help.Model
	opts        Options
	inputFrame  core.InputFrame
	heldUntil   map[core.Action]uint64 // frame number a held action expires
	repeatUntil map[core.Action]uint64 // frame until which a repeat of a one-shot key is ignored
	holdFrames  uint64
	frame       uint64
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given engine.
func NewModel(engine Engine, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = DefaultGlyphs()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	holdFrames := uint64(holdWindow * time.Duration(opts.TickRate) / time.Second) //#nosec G115 -- positive by construction
	if holdFrames == 0 {
		holdFrames = 1
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:      engine,
		screen:      core.NewScreen(opts.Width, screenRows(opts.Height)),
		keys:        NewKeyMapper(),
		help:        h,
		opts:        opts,
		inputFrame:  core.NewInputFrame(),
		heldUntil:   make(map[core.Action]uint64),
		repeatUntil: make(map[core.Action]uint64),
		holdFrames:  holdFrames,
	}
}

// screenRows leaves the last terminal row for the help line.
func screenRows(height int) int {
	return max(height-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown:
		m.inputFrame.Set(action)
		m.heldUntil[action] = m.frame + m.holdFrames
		// Up and down are exclusive while both are held from repeats.
		if action == core.ActionUp {
			delete(m.heldUntil, core.ActionDown)
		} else {
			delete(m.heldUntil, core.ActionUp)
		}
	default:
		// Auto-repeat of a key still down is not a new press.
		if until, ok := m.repeatUntil[action]; !ok || m.frame > until {
			m.inputFrame.SetPressed(action)
		}
		m.repeatUntil[action] = m.frame + m.holdFrames
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame++
	for action, until := range m.heldUntil {
		if m.frame > until {
			delete(m.heldUntil, action)
			continue
		}
		m.inputFrame.SetHeld(action)
	}
	for action, until := range m.repeatUntil {
		if m.frame > until {
			delete(m.repeatUntil, action)
		}
	}

	m.engine.Update(m.inputFrame)
	m.inputFrame.Clear()

	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	DrawSnapshot(m.screen, m.engine.Snapshot(), m.opts.Glyphs)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o750); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("chromapong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.engine.Snapshot(), m.opts.Glyphs)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(engine Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
