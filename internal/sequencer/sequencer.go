// Package sequencer plays notes, chords and timed progressions from a note
// bank in response to game events.
package sequencer

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromapong/internal/notes"
)

// DefaultInterval is the gap between successive progression notes.
const DefaultInterval = 50 * time.Millisecond

// Mode selects how progressions are timed.
type Mode int

const (
	// ModeScheduled queues progression notes and fires them as the frame
	// clock advances, so the frame loop never stalls.
	ModeScheduled Mode = iota
	// ModeBlocking holds the calling goroutine between notes. A twelve note
	// progression at the default interval stalls the frame loop for 550ms.
	ModeBlocking
)

func (m Mode) String() string {
	switch m {
	case ModeScheduled:
		return "scheduled"
	case ModeBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// ParseMode parses "scheduled" or "blocking".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "scheduled", "":
		return ModeScheduled, nil
	case "blocking":
		return ModeBlocking, nil
	default:
		return 0, fmt.Errorf("sequencer: unknown progression mode %q", s)
	}
}

// SampleSource resolves chromatic indices to samples.
type SampleSource interface {
	At(index int) (*notes.Sample, error)
}

// Holder blocks the caller for a duration.
type Holder interface {
	Hold(d time.Duration)
}

// Options configures a Sequencer.
type Options struct {
	Interval time.Duration // gap between progression notes; DefaultInterval if zero
	Mode     Mode
	Logger   *log.Logger
}

type scheduledNote struct {
	at    time.Duration
	index int
}

// Sequencer plays notes from a bank. It owns the random source used for
// event-driven note selection.
//
// A Sequencer is driven from the frame loop and is not safe for concurrent use.
type Sequencer struct {
	bank     SampleSource
	holder   Holder
	rng      *rand.Rand
	interval time.Duration
	mode     Mode
	logger   *log.Logger

	clock time.Duration
	queue []scheduledNote
}

// New creates a sequencer. rng must not be nil; seed it explicitly for
// reproducible note choices.
func New(bank SampleSource, holder Holder, rng *rand.Rand, opts Options) *Sequencer {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Sequencer{
		bank:     bank,
		holder:   holder,
		rng:      rng,
		interval: opts.Interval,
		mode:     opts.Mode,
		logger:   opts.Logger,
	}
}

// Mode returns the progression timing mode.
func (s *Sequencer) Mode() Mode {
	return s.mode
}

// Interval returns the default gap between progression notes.
func (s *Sequencer) Interval() time.Duration {
	return s.interval
}

// PlayNote plays one sample by chromatic index. Out-of-range indices and
// samples that failed to load are skipped silently.
func (s *Sequencer) PlayNote(index int) {
	sample, err := s.bank.At(index)
	if err != nil {
		s.logger.Debug("note skipped", "index", index, "error", err)
		return
	}
	if !sample.Loaded {
		s.logger.Debug("note skipped", "note", sample.Key.Name(), "reason", "not loaded")
		return
	}
	sample.Sound.Play()
}

// PlayChord starts every note in indices at once.
func (s *Sequencer) PlayChord(indices []int) {
	for _, i := range indices {
		s.PlayNote(i)
	}
}

// PlayProgression plays indices in order, interval apart. A non-positive
// interval uses the sequencer's default.
//
// In ModeBlocking the call returns after the last note has started. In
// ModeScheduled the first note starts now (or after whatever is already
// queued) and the rest fire from Advance.
func (s *Sequencer) PlayProgression(indices []int, interval time.Duration) {
	if len(indices) == 0 {
		return
	}
	if interval <= 0 {
		interval = s.interval
	}

	if s.mode == ModeBlocking {
		for n, i := range indices {
			if n > 0 {
				s.holder.Hold(interval)
			}
			s.PlayNote(i)
		}
		return
	}

	start := s.clock
	if len(s.queue) > 0 {
		start = s.queue[len(s.queue)-1].at + interval
	}
	for n, i := range indices {
		s.queue = append(s.queue, scheduledNote{at: start + time.Duration(n)*interval, index: i})
	}
	s.fireDue()
}

// PlayRandomFromSet plays a uniformly chosen member of set and returns it.
// An empty set plays nothing and returns -1.
func (s *Sequencer) PlayRandomFromSet(set []int) int {
	if len(set) == 0 {
		return -1
	}
	index := set[s.rng.Intn(len(set))]
	s.PlayNote(index)
	return index
}

// PlayRandomNote plays a uniformly chosen note from the whole bank.
func (s *Sequencer) PlayRandomNote() int {
	index := s.rng.Intn(notes.Count)
	s.PlayNote(index)
	return index
}

// Advance moves the sequencer clock forward by dt and fires scheduled
// notes that have come due, in order.
func (s *Sequencer) Advance(dt time.Duration) {
	if dt > 0 {
		s.clock += dt
	}
	s.fireDue()
}

// Pending returns the number of scheduled notes not yet played.
func (s *Sequencer) Pending() int {
	return len(s.queue)
}

// Flush plays every scheduled note immediately.
func (s *Sequencer) Flush() {
	queue := s.queue
	s.queue = nil
	for _, n := range queue {
		s.PlayNote(n.index)
	}
}

func (s *Sequencer) fireDue() {
	n := 0
	for n < len(s.queue) && s.queue[n].at <= s.clock {
		s.PlayNote(s.queue[n].index)
		n++
	}
	if n > 0 {
		s.queue = s.queue[n:]
	}
}
