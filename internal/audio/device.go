// Package audio defines the audio capability the note sequencer plays
// through and provides the device implementations used by the CLI.
package audio

import (
	"errors"
	"os"
	"time"
)

// ErrUnsupportedFormat is returned when a sample file has an extension no decoder handles.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Sound is a loaded sample that can be started any number of times.
type Sound interface {
	// Play starts the sample from its beginning.
	Play()
	// Close releases the sample. It must be called exactly once.
	Close() error
}

// Device loads samples and provides the blocking hold used between
// progression notes.
type Device interface {
	Load(path string) (Sound, error)
	Hold(d time.Duration)
}

// SilentDevice is a Device that checks that sample files exist but never
// produces sound. It backs --mute and hosts without an audio output.
type SilentDevice struct{}

// NewSilentDevice creates a silent device.
func NewSilentDevice() *SilentDevice {
	return &SilentDevice{}
}

// Load returns a silent sound if the file is readable.
func (d *SilentDevice) Load(path string) (Sound, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return silentSound{}, nil
}

// Hold sleeps for d so blocking progressions keep their timing when muted.
func (d *SilentDevice) Hold(dur time.Duration) {
	time.Sleep(dur)
}

type silentSound struct{}

func (silentSound) Play() {}

func (silentSound) Close() error { return nil }
