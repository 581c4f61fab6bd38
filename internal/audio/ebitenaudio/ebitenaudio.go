// Package ebitenaudio plays note samples through the Ebitengine audio context.
// It is the only package that links the platform audio driver.
package ebitenaudio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/chromapong/internal/audio"
)

var _ audio.Device = (*Device)(nil)

// Device decodes samples fully into memory at load time so Play never touches disk.
type Device struct {
	ctx    *ebaudio.Context
	volume float64
}

// New returns a device bound to the process audio context,
// creating the context at sampleRate if none exists yet.
func New(sampleRate int, volume float64) *Device {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}
	return &Device{ctx: ctx, volume: volume}
}

// Load reads and decodes a .wav, .mp3 or .ogg file.
func (d *Device) Load(path string) (audio.Sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}

	stream, err := decode(d.ctx.SampleRate(), path, data)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	player := d.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(d.volume)
	return &sound{player: player}, nil
}

// Hold blocks the calling goroutine for dur.
func (d *Device) Hold(dur time.Duration) {
	time.Sleep(dur)
}

// decode picks a decoder by file extension.
func decode(rate int, path string, data []byte) (io.Reader, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot decode WAV %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot decode MP3 %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rate, reader)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot decode OGG %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, ext)
	}
}

type sound struct {
	player *ebaudio.Player
}

// Play restarts the sample. A note retriggered while still ringing starts over.
func (s *sound) Play() {
	//nolint:errcheck // In-memory players always rewind
	s.player.Rewind()
	s.player.Play()
}

func (s *sound) Close() error {
	return s.player.Close()
}
