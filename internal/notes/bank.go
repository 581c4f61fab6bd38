package notes

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromapong/internal/audio"
)

// DefaultExtension is the sample file extension used when none is configured.
const DefaultExtension = ".wav"

// Sample is one slot of the bank. A slot whose file failed to load keeps
// Loaded false and a nil Sound; playing it is a no-op.
type Sample struct {
	Key    Key
	Path   string
	Sound  audio.Sound
	Loaded bool
}

// Bank is the fixed table of Count samples, loaded once and released once.
type Bank struct {
	samples [Count]Sample
	closed  bool
}

// FileName returns the sample file name for a key, e.g. "C#1.wav".
func FileName(k Key, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return k.Name() + ext
}

// Load resolves every note in dir by name and loads it through dev.
// Individual load failures are logged and leave that slot unloaded;
// Load itself never fails.
func Load(dev audio.Device, dir, ext string, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Bank{}
	for _, k := range AllKeys() {
		path := filepath.Join(dir, FileName(k, ext))
		slot := &b.samples[k.Index()]
		slot.Key = k
		slot.Path = path

		sound, err := dev.Load(path)
		if err != nil {
			logger.Warn("note sample not loaded", "note", k.Name(), "path", path, "error", err)
			continue
		}
		slot.Sound = sound
		slot.Loaded = true
	}

	logger.Debug("note bank loaded", "dir", dir, "loaded", b.LoadedCount(), "total", Count)
	return b
}

// At returns the sample at a chromatic index.
func (b *Bank) At(index int) (*Sample, error) {
	k, err := KeyOf(index)
	if err != nil {
		return nil, err
	}
	return b.Lookup(k)
}

// Lookup returns the sample for a key.
func (b *Bank) Lookup(k Key) (*Sample, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrIndexOutOfRange, k)
	}
	return &b.samples[k.Index()], nil
}

// LoadedCount returns how many samples loaded successfully.
func (b *Bank) LoadedCount() int {
	n := 0
	for i := range b.samples {
		if b.samples[i].Loaded {
			n++
		}
	}
	return n
}

// Missing returns the keys whose samples failed to load.
func (b *Bank) Missing() []Key {
	var keys []Key
	for i := range b.samples {
		if !b.samples[i].Loaded {
			keys = append(keys, b.samples[i].Key)
		}
	}
	return keys
}

// Samples returns a copy of all slots in chromatic order.
func (b *Bank) Samples() []Sample {
	out := make([]Sample, Count)
	copy(out, b.samples[:])
	return out
}

// Close releases every loaded sample. Calling Close again does nothing.
func (b *Bank) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for i := range b.samples {
		s := &b.samples[i]
		if !s.Loaded {
			continue
		}
		if err := s.Sound.Close(); err != nil {
			errs = append(errs, fmt.Errorf("notes: release %s: %w", s.Key.Name(), err))
		}
		s.Loaded = false
		s.Sound = nil
	}
	return errors.Join(errs...)
}
