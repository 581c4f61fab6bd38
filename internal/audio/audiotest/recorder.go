// Package audiotest provides an in-memory audio.Device for tests.
package audiotest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/vovakirdan/chromapong/internal/audio"
)

// EventKind distinguishes recorded device calls.
type EventKind int

const (
	EventPlay EventKind = iota
	EventHold
)

// Event is one recorded call on the device.
type Event struct {
	Kind     EventKind
	Name     string        // file name of the played sample (EventPlay)
	Duration time.Duration // hold length (EventHold)
}

// Recorder is an audio.Device that records plays and holds without
// producing sound or sleeping. Files listed in Missing fail to load.
type Recorder struct {
	Missing map[string]bool
	Events  []Event
	Loaded  int
	Closed  map[string]int
}

// NewRecorder creates a recorder whose loads fail for the given file names.
func NewRecorder(missing ...string) *Recorder {
	r := &Recorder{
		Missing: make(map[string]bool),
		Closed:  make(map[string]int),
	}
	for _, name := range missing {
		r.Missing[name] = true
	}
	return r
}

// Load records a successful load unless the file name is marked missing.
func (r *Recorder) Load(path string) (audio.Sound, error) {
	name := filepath.Base(path)
	if r.Missing[name] {
		return nil, fmt.Errorf("audiotest: open %s: %w", path, fs.ErrNotExist)
	}
	r.Loaded++
	return &sound{rec: r, name: name}, nil
}

// Hold records the hold without sleeping.
func (r *Recorder) Hold(d time.Duration) {
	r.Events = append(r.Events, Event{Kind: EventHold, Duration: d})
}

// Played returns the names of played samples in order.
func (r *Recorder) Played() []string {
	var names []string
	for _, e := range r.Events {
		if e.Kind == EventPlay {
			names = append(names, e.Name)
		}
	}
	return names
}

// Holds returns the recorded hold durations in order.
func (r *Recorder) Holds() []time.Duration {
	var holds []time.Duration
	for _, e := range r.Events {
		if e.Kind == EventHold {
			holds = append(holds, e.Duration)
		}
	}
	return holds
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

type sound struct {
	rec  *Recorder
	name string
}

func (s *sound) Play() {
	s.rec.Events = append(s.rec.Events, Event{Kind: EventPlay, Name: s.name})
}

func (s *sound) Close() error {
	s.rec.Closed[s.name]++
	return nil
}
