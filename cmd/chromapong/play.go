package main

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chromapong/internal/config"
	"github.com/vovakirdan/chromapong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play ChromaPong in the terminal. The field is scaled to the terminal
size. Logs go to the configured log file while the game owns the screen.

Controls:
  Up/W, Down/S  - Move the paddle
  Space         - Launch the ball
  P             - Pause / resume
  Enter         - Play again (after game over)
  Ctrl+S        - Save a text screenshot
  Q/Esc/Ctrl+C  - Quit

Examples:
  chromapong play
  chromapong play --seed 42
  chromapong play --mute --fps 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := openSession(true)
	if err != nil {
		fail("%v", err)
	}
	defer s.Close()

	engine, err := s.newEngine()
	if err != nil {
		s.Close()
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		TickRate: s.cfg.Runtime.TickRate,
		Width:    width,
		Height:   height,
		Glyphs:   glyphs(s.cfg.Terminal),
		Logger:   s.logger,
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	s.logger.Info("starting terminal game", "width", width, "height", height)
	if err := tui.Run(engine, opts); err != nil {
		s.Close()
		fail("%v", err)
	}
	s.logger.Info("game finished", "score", engine.Score(), "life", engine.Life())
}

func glyphs(cfg config.TerminalConfig) tui.Glyphs {
	g := tui.DefaultGlyphs()
	if r, _ := utf8.DecodeRuneInString(cfg.PaddleChar); r != utf8.RuneError {
		g.Paddle = r
	}
	if r, _ := utf8.DecodeRuneInString(cfg.BallChar); r != utf8.RuneError {
		g.Ball = r
	}
	return g
}
