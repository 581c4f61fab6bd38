package config

import (
	_ "embed"
)

//go:embed defaults/chromapong.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate: 120,
			Seed:     0,
		},
		Audio: AudioConfig{
			Backend:         BackendEbiten,
			AssetsDir:       "assets/notes",
			Extension:       ".wav",
			SampleRate:      44100,
			Volume:          0.8,
			NoteIntervalMS:  50,
			ProgressionMode: ModeScheduled,
		},
		Window: WindowConfig{
			Scale: 1.0,
			Title: "classic game: pong",
		},
		Terminal: TerminalConfig{
			PaddleChar: "█",
			BallChar:   "●",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "~/.chromapong/chromapong.log",
		},
	}
}
