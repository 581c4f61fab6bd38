// Package notes holds the chromatic sample table the sequencer plays from.
//
// The table spans four octaves (1-4) of twelve semitones each. A chromatic
// index i maps to semitone i%12 of octave i/12+1, so index 0 is C1 and
// index 47 is B4.
package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	SemitonesPerOctave = 12
	Octaves            = 4
	FirstOctave        = 1
	Count              = SemitonesPerOctave * Octaves
)

// ErrIndexOutOfRange is returned for chromatic indices outside [0, Count).
var ErrIndexOutOfRange = errors.New("notes: index out of range")

var semitoneNames = [SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Key identifies a note by octave and semitone.
type Key struct {
	Octave   int // 1..4
	Semitone int // 0..11, C through B
}

// KeyOf converts a chromatic index to its key.
func KeyOf(index int) (Key, error) {
	if index < 0 || index >= Count {
		return Key{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return Key{
		Octave:   index/SemitonesPerOctave + FirstOctave,
		Semitone: index % SemitonesPerOctave,
	}, nil
}

// Valid reports whether the key lies inside the table.
func (k Key) Valid() bool {
	return k.Octave >= FirstOctave && k.Octave < FirstOctave+Octaves &&
		k.Semitone >= 0 && k.Semitone < SemitonesPerOctave
}

// Index returns the chromatic index of the key, or -1 if the key is invalid.
func (k Key) Index() int {
	if !k.Valid() {
		return -1
	}
	return (k.Octave-FirstOctave)*SemitonesPerOctave + k.Semitone
}

// Name returns the note name used for sample files, e.g. "C#1".
func (k Key) Name() string {
	if !k.Valid() {
		return "?"
	}
	return semitoneNames[k.Semitone] + strconv.Itoa(k.Octave)
}

func (k Key) String() string {
	return k.Name()
}

// ParseKey parses a note name such as "A#3".
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return Key{}, fmt.Errorf("notes: invalid note name %q", name)
	}
	octave, err := strconv.Atoi(name[len(name)-1:])
	if err != nil {
		return Key{}, fmt.Errorf("notes: invalid octave in %q", name)
	}
	pitch := strings.ToUpper(name[:len(name)-1])
	for i, n := range semitoneNames {
		if n == pitch {
			k := Key{Octave: octave, Semitone: i}
			if !k.Valid() {
				return Key{}, fmt.Errorf("notes: %q is outside octaves %d-%d", name, FirstOctave, FirstOctave+Octaves-1)
			}
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("notes: unknown pitch in %q", name)
}

// AllKeys returns every key in chromatic order.
func AllKeys() []Key {
	keys := make([]Key, Count)
	for i := range keys {
		keys[i] = Key{Octave: i/SemitonesPerOctave + FirstOctave, Semitone: i % SemitonesPerOctave}
	}
	return keys
}
