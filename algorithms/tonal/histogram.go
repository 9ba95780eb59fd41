package tonal

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
)

var (
	// ErrEmptyInput indicates zero notes or zero durations
	ErrEmptyInput = errors.New("cannot classify a passage with zero notes")

	// ErrLengthMismatch indicates notes and durations of different lengths
	ErrLengthMismatch = errors.New("must have exactly one duration for each note")

	// ErrInvalidNoteType indicates a note that is neither an integer nor a
	// string, or a collection mixing the two
	ErrInvalidNoteType = errors.New("notes must be either strings or integers")
)

// Histogram accumulates duration-weighted evidence per pitch class. It is the
// empirical distribution a passage is matched against, built fresh for every
// classification and discarded afterwards.
type Histogram struct {
	bins [12]float64
}

// Add accumulates a note's duration into its pitch-class slot
func (h *Histogram) Add(pc pitch.Class, duration float64) {
	h.bins[pitch.Fold(int(pc))] += duration
}

// Bins returns a copy of the 12 accumulated duration sums
func (h *Histogram) Bins() []float64 {
	bins := make([]float64, 12)
	copy(bins, h.bins[:])
	return bins
}

// PeakClass returns the pitch class holding the largest accumulated duration,
// the best proxy for the perceived tonal center. Ties resolve to the lowest
// pitch class.
func (h *Histogram) PeakClass() pitch.Class {
	peak := 0
	for i := 1; i < 12; i++ {
		if h.bins[i] > h.bins[peak] {
			peak = i
		}
	}
	return pitch.Class(peak)
}

// BuildHistogram validates a passage and folds it into a histogram. Notes may
// be note-name strings (octave digits allowed) or integers (MIDI numbers or
// raw pitch classes); the collection must be homogeneous.
func BuildHistogram(notes []any, durations []float64) (*Histogram, error) {
	if len(notes) == 0 || len(durations) == 0 {
		return nil, ErrEmptyInput
	}
	if len(notes) != len(durations) {
		return nil, fmt.Errorf("%w (got %d notes, %d durations)",
			ErrLengthMismatch, len(notes), len(durations))
	}

	var sawString, sawInt bool
	classes := make([]pitch.Class, len(notes))
	for i, note := range notes {
		switch v := note.(type) {
		case string:
			sawString = true
			pc, err := pitch.Parse(v)
			if err != nil {
				return nil, err
			}
			classes[i] = pc
		case int:
			sawInt = true
			classes[i] = pitch.Fold(v)
		case pitch.Class:
			sawInt = true
			classes[i] = pitch.Fold(int(v))
		default:
			return nil, fmt.Errorf("%w: got %T", ErrInvalidNoteType, note)
		}
	}
	if sawString && sawInt {
		return nil, fmt.Errorf("%w: collection mixes strings and integers", ErrInvalidNoteType)
	}

	var hist Histogram
	for i, pc := range classes {
		hist.Add(pc, durations[i])
	}
	return &hist, nil
}
