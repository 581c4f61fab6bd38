package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromapong/internal/audio"
	"github.com/vovakirdan/chromapong/internal/audio/ebitenaudio"
	"github.com/vovakirdan/chromapong/internal/config"
	"github.com/vovakirdan/chromapong/internal/core"
	"github.com/vovakirdan/chromapong/internal/game"
	"github.com/vovakirdan/chromapong/internal/logging"
	"github.com/vovakirdan/chromapong/internal/notes"
	"github.com/vovakirdan/chromapong/internal/sequencer"
)

// session holds everything a subcommand needs, built in dependency order:
// config, logger, audio device, note bank, sequencer.
type session struct {
	cfg    config.Config
	logger *log.Logger
	device audio.Device
	bank   *notes.Bank
	seq    *sequencer.Sequencer

	logCloser io.Closer
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	cfg.Apply(config.Overrides{
		TickRate:  flagFPS,
		Seed:      flagSeed,
		AssetsDir: flagAssets,
		Mute:      flagMute,
		Blocking:  flagBlocking,
		LogLevel:  flagLogLevel,
		LogFile:   flagLogFile,
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openSession loads the config and the note bank. When logToFile is set
// the log goes to the configured file instead of stderr.
func openSession(logToFile bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{Level: cfg.Logging.Level}
	if logToFile {
		logOpts.File = config.ExpandPath(cfg.Logging.File)
	}
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	seed := cfg.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	device := newDevice(cfg.Audio)
	dir := config.ExpandPath(cfg.Audio.AssetsDir)
	bank := notes.Load(device, dir, cfg.Audio.Extension, logger)
	logger.Info("note bank loaded", "dir", dir, "loaded", bank.LoadedCount(), "total", notes.Count)

	mode, err := sequencer.ParseMode(cfg.Audio.ProgressionMode)
	if err != nil {
		_ = bank.Close()
		_ = closer.Close()
		return nil, err
	}
	//#nosec G404 -- note selection, not security sensitive
	rng := rand.New(rand.NewSource(seed))
	seq := sequencer.New(bank, device, rng, sequencer.Options{
		Interval: cfg.Audio.NoteInterval(),
		Mode:     mode,
		Logger:   logger,
	})

	logger.Debug("session ready", "seed", seed, "mode", mode, "backend", cfg.Audio.Backend, "tick_rate", cfg.Runtime.TickRate)

	return &session{
		cfg:       cfg,
		logger:    logger,
		device:    device,
		bank:      bank,
		seq:       seq,
		logCloser: closer,
	}, nil
}

func newDevice(cfg config.AudioConfig) audio.Device {
	if cfg.Backend == config.BackendSilent {
		return audio.NewSilentDevice()
	}
	return ebitenaudio.New(cfg.SampleRate, cfg.Volume)
}

// newEngine builds the game engine on the session's sequencer.
func (s *session) newEngine() (*game.Engine, error) {
	rc := core.RuntimeConfig{TickRate: s.cfg.Runtime.TickRate}
	engine, err := game.New(game.DefaultRules(), s.seq, logging.NewEventSink(s.logger), rc.FrameDuration())
	if err != nil {
		return nil, fmt.Errorf("cannot start game: %w", err)
	}
	return engine, nil
}

// drain advances the sequencer in real time until its queue is empty.
func (s *session) drain() {
	frame := core.RuntimeConfig{TickRate: s.cfg.Runtime.TickRate}.FrameDuration()
	for s.seq.Pending() > 0 {
		s.device.Hold(frame)
		s.seq.Advance(frame)
	}
}

// Close fires any queued notes and releases the bank and the log file.
func (s *session) Close() {
	s.seq.Flush()
	if err := s.bank.Close(); err != nil {
		s.logger.Warn("failed to release note bank", "error", err)
	}
	//nolint:errcheck // Best-effort close, nothing left to log to
	s.logCloser.Close()
}
