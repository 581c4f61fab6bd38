package sequencer

import "slices"

// MajorTriad is the C major triad in the lowest octave.
var MajorTriad = []int{0, 4, 7}

// MajorProgression climbs the C major triad through all four octaves.
// It opens every round.
var MajorProgression = []int{0, 4, 7, 12, 16, 19, 24, 28, 31, 36, 40, 43}

// MinorProgression climbs a C minor seventh arpeggio through all four octaves.
var MinorProgression = []int{0, 3, 7, 10, 12, 15, 19, 22, 24, 27, 31, 34, 36, 39, 43, 46}

// HarmonicSubset is the set random event notes are drawn from. It shares
// the minor arpeggio's pitches so event sounds stay consonant.
var HarmonicSubset = slices.Clone(MinorProgression)

// Reversed returns a reversed copy of indices.
func Reversed(indices []int) []int {
	out := slices.Clone(indices)
	slices.Reverse(out)
	return out
}

// StartProgression is played when a round starts.
func StartProgression() []int {
	return slices.Clone(MajorProgression)
}

// MissProgression is played when the ball gets past the paddle. It is the
// exact reverse of StartProgression.
func MissProgression() []int {
	return Reversed(MajorProgression)
}

var named = map[string]func() []int{
	"major":          StartProgression,
	"major-reversed": MissProgression,
	"minor":          func() []int { return slices.Clone(MinorProgression) },
	"minor-reversed": func() []int { return Reversed(MinorProgression) },
}

// Progression looks up a progression by name.
func Progression(name string) ([]int, bool) {
	f, ok := named[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// ProgressionNames returns the known progression names, sorted.
func ProgressionNames() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
