// Package logging builds the application logger and adapts it to the
// game's event sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromapong/internal/game"
)

// Prefix is prepended to every log line.
const Prefix = "chromapong"

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn or error; info if empty
	File   string    // log file path; Writer is used if empty
	Writer io.Writer // defaults to os.Stderr
}

// New creates a logger. When File is set the log is appended there and the
// returned closer releases it; otherwise the closer is a no-op.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// EventSink logs game events.
type EventSink struct {
	logger *log.Logger
}

// NewEventSink creates a sink writing to logger.
func NewEventSink(logger *log.Logger) *EventSink {
	if logger == nil {
		logger = Discard()
	}
	return &EventSink{logger: logger.WithPrefix(Prefix + "/game")}
}

// Emit logs ev. Ball contacts are debug noise; round and life changes are info.
func (s *EventSink) Emit(ev game.Event) {
	kv := []any{"tick", ev.Tick, "score", ev.Score, "life", ev.Life}
	if ev.Wall != game.WallNone {
		kv = append(kv, "wall", ev.Wall.String())
	}
	if ev.Note >= 0 {
		kv = append(kv, "note", ev.Note)
	}

	switch ev.Kind {
	case game.EventWallBounce, game.EventReturn, game.EventLaunch:
		s.logger.Debug(ev.Kind.String(), kv...)
	case game.EventGameOver:
		s.logger.Warn(ev.Kind.String(), kv...)
	default:
		s.logger.Info(ev.Kind.String(), kv...)
	}
}
