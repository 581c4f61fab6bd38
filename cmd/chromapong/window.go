package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play ChromaPong in an 800x600 desktop window.

Controls:
  Up/W, Down/S  - Move the paddle
  Space         - Launch the ball
  P             - Pause / resume
  Enter         - Play again (after game over)
  Q/Esc         - Quit

Examples:
  chromapong window
  chromapong window --blocking`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := openSession(false)
	if err != nil {
		fail("%v", err)
	}
	defer s.Close()

	engine, err := s.newEngine()
	if err != nil {
		s.Close()
		fail("%v", err)
	}

	err = window.Run(engine, window.Options{
		Title:    s.cfg.Window.Title,
		Scale:    s.cfg.Window.Scale,
		TickRate: s.cfg.Runtime.TickRate,
		Logger:   s.logger,
	})
	if err != nil {
		s.Close()
		fail("%v", err)
	}
	s.logger.Info("game finished", "score", engine.Score(), "life", engine.Life())
}
