package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapong/internal/notes"
	"github.com/vovakirdan/chromapong/internal/platform/tui"
	"github.com/vovakirdan/chromapong/internal/sequencer"
)

// chordName selects the C major triad in --play.
const chordName = "chord"

// ringOut lets the last auditioned note decay before the bank is released.
const ringOut = time.Second

var (
	flagPlay string
	flagNote string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Show the note bank or audition a progression",
	Long: `Without flags, loads the note bank and prints every note with its
sample file and load status.

--play auditions a named progression (major, major-reversed, minor,
minor-reversed) or "chord" for the C major triad. --note plays one note
by name, e.g. C#2.

Examples:
  chromapong notes
  chromapong notes --play major
  chromapong notes --play chord
  chromapong notes --note A3`,
	Args: cobra.NoArgs,
	Run:  runNotes,
}

func init() {
	notesCmd.Flags().StringVar(&flagPlay, "play", "", "Progression to play: "+strings.Join(playNames(), ", "))
	notesCmd.Flags().StringVar(&flagNote, "note", "", "Single note to play, e.g. C#2")
}

func playNames() []string {
	return append(sequencer.ProgressionNames(), chordName)
}

func runNotes(cmd *cobra.Command, args []string) {
	s, err := openSession(false)
	if err != nil {
		fail("%v", err)
	}
	defer s.Close()

	switch {
	case flagNote != "":
		key, err := notes.ParseKey(flagNote)
		if err != nil {
			s.Close()
			fail("%v", err)
		}
		s.seq.PlayNote(key.Index())
		s.device.Hold(ringOut)

	case flagPlay == chordName:
		s.seq.PlayChord(sequencer.MajorTriad)
		s.device.Hold(ringOut)

	case flagPlay != "":
		indices, ok := sequencer.Progression(flagPlay)
		if !ok {
			s.Close()
			fail("unknown progression %q (available: %s)", flagPlay, strings.Join(playNames(), ", "))
		}
		s.seq.PlayProgression(indices, 0)
		s.drain()
		s.device.Hold(ringOut)

	default:
		fmt.Println(tui.RenderNoteTable(s.bank.Samples()))
		fmt.Printf("\n%d of %d samples loaded\n", s.bank.LoadedCount(), notes.Count)
	}
}
