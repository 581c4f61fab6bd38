// Package config provides YAML-based configuration loading for the
// presenters, the audio layer and the runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid config")

// Audio backends.
const (
	BackendEbiten = "ebiten"
	BackendSilent = "silent"
)

// Progression timing modes.
const (
	ModeScheduled = "scheduled"
	ModeBlocking  = "blocking"
)

// Config contains all configuration for ChromaPong.
type Config struct {
	Runtime  RuntimeConfig  `yaml:"runtime"`
	Audio    AudioConfig    `yaml:"audio"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RuntimeConfig defines the frame clock and random seed.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"` // frames per second
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
}

// AudioConfig defines where note samples come from and how they play.
type AudioConfig struct {
	Backend         string  `yaml:"backend"` // "ebiten" or "silent"
	AssetsDir       string  `yaml:"assets_dir"`
	Extension       string  `yaml:"extension"`
	SampleRate      int     `yaml:"sample_rate"`
	Volume          float64 `yaml:"volume"` // 0.0 to 1.0
	NoteIntervalMS  int     `yaml:"note_interval_ms"`
	ProgressionMode string  `yaml:"progression_mode"` // "scheduled" or "blocking"
}

// NoteInterval returns the gap between progression notes.
func (a AudioConfig) NoteInterval() time.Duration {
	return time.Duration(a.NoteIntervalMS) * time.Millisecond
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

// TerminalConfig defines the glyphs used by the terminal presenter.
type TerminalConfig struct {
	PaddleChar string `yaml:"paddle_char"`
	BallChar   string `yaml:"ball_char"`
}

// LoggingConfig defines log verbosity and the log file used while the
// terminal presenter owns stdout.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Overrides carries command-line values that replace loaded ones.
// Zero values leave the config untouched.
type Overrides struct {
	TickRate  int
	Seed      int64
	AssetsDir string
	Mute      bool
	Blocking  bool
	LogLevel  string
	LogFile   string
}

// Apply copies non-zero overrides into the config.
func (c *Config) Apply(o Overrides) {
	if o.TickRate > 0 {
		c.Runtime.TickRate = o.TickRate
	}
	if o.Seed != 0 {
		c.Runtime.Seed = o.Seed
	}
	if o.AssetsDir != "" {
		c.Audio.AssetsDir = o.AssetsDir
	}
	if o.Mute {
		c.Audio.Backend = BackendSilent
	}
	if o.Blocking {
		c.Audio.ProgressionMode = ModeBlocking
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Logging.File = o.LogFile
	}
}

// Validate checks the config for values the runtime cannot use.
func (c Config) Validate() error {
	switch {
	case c.Runtime.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Runtime.TickRate)
	case c.Audio.Backend != BackendEbiten && c.Audio.Backend != BackendSilent:
		return fmt.Errorf("%w: unknown audio backend %q", ErrInvalidConfig, c.Audio.Backend)
	case c.Audio.ProgressionMode != ModeScheduled && c.Audio.ProgressionMode != ModeBlocking:
		return fmt.Errorf("%w: unknown progression_mode %q", ErrInvalidConfig, c.Audio.ProgressionMode)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	case c.Audio.NoteIntervalMS <= 0:
		return fmt.Errorf("%w: note_interval_ms must be positive, got %d", ErrInvalidConfig, c.Audio.NoteIntervalMS)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	case c.Audio.Extension == "" || !strings.HasPrefix(c.Audio.Extension, "."):
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, c.Audio.Extension)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale must be positive, got %v", ErrInvalidConfig, c.Window.Scale)
	case utf8.RuneCountInString(c.Terminal.PaddleChar) != 1 || utf8.RuneCountInString(c.Terminal.BallChar) != 1:
		return fmt.Errorf("%w: terminal glyphs must be single characters", ErrInvalidConfig)
	}
	return nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
