package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the user and local search locations at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Runtime.TickRate != 120 {
		t.Errorf("TickRate = %d, want 120", cfg.Runtime.TickRate)
	}
	if got := cfg.Audio.NoteInterval(); got != 50*time.Millisecond {
		t.Errorf("NoteInterval() = %v, want 50ms", got)
	}
	if cfg.Window.Title != "classic game: pong" {
		t.Errorf("Title = %q", cfg.Window.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, LocalPath), "runtime:\n  tick_rate: 30\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("local config tick_rate = %d, want 30", cfg.Runtime.TickRate)
	}

	writeFile(t, filepath.Join(home, ".chromapong", FileName), "runtime:\n  tick_rate: 60\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("user config tick_rate = %d, want 60", cfg.Runtime.TickRate)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "runtime:\n  tick_rate: 90\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.Runtime.TickRate != 90 {
		t.Errorf("custom config tick_rate = %d, want 90", cfg.Runtime.TickRate)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "audio:\n  volume: 0.25\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Volume = %v, want 0.25", cfg.Audio.Volume)
	}
	if cfg.Audio.AssetsDir != "assets/notes" {
		t.Errorf("AssetsDir = %q, want default", cfg.Audio.AssetsDir)
	}
	if cfg.Runtime.TickRate != 120 {
		t.Errorf("TickRate = %d, want default 120", cfg.Runtime.TickRate)
	}
}

func TestLoadMalformedLocalFallsThrough(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, LocalPath), "runtime: [not a map\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("malformed local config should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "audio: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "audio:\n  backend: alsa\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }},
		{"unknown backend", func(c *Config) { c.Audio.Backend = "pulse" }},
		{"unknown mode", func(c *Config) { c.Audio.ProgressionMode = "async" }},
		{"volume too loud", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.1 }},
		{"zero interval", func(c *Config) { c.Audio.NoteIntervalMS = 0 }},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"extension without dot", func(c *Config) { c.Audio.Extension = "wav" }},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }},
		{"multi-rune paddle", func(c *Config) { c.Terminal.PaddleChar = "##" }},
		{"empty ball", func(c *Config) { c.Terminal.BallChar = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apply(Overrides{
		TickRate:  60,
		Seed:      7,
		AssetsDir: "/tmp/notes",
		Mute:      true,
		Blocking:  true,
		LogLevel:  "debug",
	})

	if cfg.Runtime.TickRate != 60 || cfg.Runtime.Seed != 7 {
		t.Errorf("runtime = %+v", cfg.Runtime)
	}
	if cfg.Audio.AssetsDir != "/tmp/notes" {
		t.Errorf("AssetsDir = %q", cfg.Audio.AssetsDir)
	}
	if cfg.Audio.Backend != BackendSilent {
		t.Errorf("Backend = %q, want silent", cfg.Audio.Backend)
	}
	if cfg.Audio.ProgressionMode != ModeBlocking {
		t.Errorf("ProgressionMode = %q, want blocking", cfg.Audio.ProgressionMode)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.File != DefaultConfig().Logging.File {
		t.Errorf("empty LogFile override changed File to %q", cfg.Logging.File)
	}

	unchanged := DefaultConfig()
	unchanged.Apply(Overrides{})
	if unchanged != DefaultConfig() {
		t.Error("zero overrides should not change the config")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/x/y.log", filepath.Join(home, "x", "y.log")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~user/path", "~user/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"tick_rate: 120", "progression_mode: scheduled", "backend: ebiten"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, data)
		}
	}
}
