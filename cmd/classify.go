package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/scale-sonar/algorithms/tonal"
	"github.com/RyanBlaney/scale-sonar/midi"
)

var (
	classifyNotes      string
	classifyDurations  string
	classifyInstrument string
	classifyNoTieBreak bool
)

func init() {
	classifyCmd.Flags().StringVar(&classifyNotes, "notes", "",
		"comma-separated notes to classify instead of a MIDI file (names or MIDI numbers)")
	classifyCmd.Flags().StringVar(&classifyDurations, "durations", "",
		"comma-separated durations in seconds, one per note (defaults to 1.0 each)")
	classifyCmd.Flags().StringVar(&classifyInstrument, "instrument", "none",
		"range filter preset for MIDI input: sax, piano, or none")
	classifyCmd.Flags().BoolVar(&classifyNoTieBreak, "no-tie-break", false,
		"keep registration order on rotational ties instead of using durations")
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [midi-file]",
	Short: "Classify the scale of a MIDI file or an inline note list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		match, err := runClassify(args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(match.Result())
	},
}

func runClassify(args []string) (tonal.Match, error) {
	estimator := tonal.NewScaleEstimatorWithParams(tonal.EstimatorParams{
		TieBreakByDuration: !classifyNoTieBreak,
	})

	if classifyNotes != "" {
		notes, durations, err := parseInlineNotes(classifyNotes, classifyDurations)
		if err != nil {
			return tonal.Match{}, err
		}
		return estimator.Classify(notes, durations)
	}

	if len(args) == 0 {
		return tonal.Match{}, fmt.Errorf("provide a MIDI file or --notes")
	}

	events, err := midi.ExtractNotesFromFile(args[0])
	if err != nil {
		return tonal.Match{}, err
	}
	events, err = applyInstrumentFilter(events)
	if err != nil {
		return tonal.Match{}, err
	}

	pitches, durations := midi.PitchesAndDurations(events)
	return estimator.ClassifyPitches(pitches, durations)
}

func applyInstrumentFilter(events []midi.NoteEvent) ([]midi.NoteEvent, error) {
	switch classifyInstrument {
	case "sax":
		return midi.Filter(events, midi.SaxophoneFilter()), nil
	case "piano":
		return midi.Filter(events, midi.PianoFilter()), nil
	case "none", "":
		return events, nil
	default:
		return nil, fmt.Errorf("unknown instrument preset %q", classifyInstrument)
	}
}

// parseInlineNotes turns "C,D,E" or "60,62,64" plus an optional duration list
// into classifier input. Numeric tokens become integer pitches, everything
// else is passed through as a note name.
func parseInlineNotes(noteList, durationList string) ([]any, []float64, error) {
	tokens := strings.Split(noteList, ",")
	notes := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if n, err := strconv.Atoi(tok); err == nil {
			notes = append(notes, n)
		} else {
			notes = append(notes, tok)
		}
	}

	if durationList == "" {
		durations := make([]float64, len(notes))
		for i := range durations {
			durations[i] = 1.0
		}
		return notes, durations, nil
	}

	tokens = strings.Split(durationList, ",")
	durations := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		d, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad duration %q: %w", tok, err)
		}
		durations = append(durations, d)
	}
	return notes, durations, nil
}
