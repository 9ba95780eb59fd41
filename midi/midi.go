package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/RyanBlaney/scale-sonar/logging"
)

// NoteEvent is a single realized note: a paired note-on/note-off with its
// wall-clock placement. Start and Duration are in seconds.
type NoteEvent struct {
	Pitch    int     `json:"pitch"`
	Velocity int     `json:"velocity"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// ReadFile parses a standard MIDI file from disk.
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

// ExtractNotes walks every track and pairs note-ons with their matching
// note-offs (a velocity-zero note-on counts as an off). Notes still sounding
// at the end of a track are closed at the track's final tick. The result is
// sorted by start time, then pitch.
func ExtractNotes(s *smf.SMF) []NoteEvent {
	var notes []NoteEvent

	for _, events := range s.Tracks {
		var absTicks int64
		pending := make(map[uint8]NoteEvent) // keyed by pitch, last-on wins

		for _, event := range events {
			absTicks += int64(event.Delta)
			seconds := float64(s.TimeAt(absTicks)) / 1e6

			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				if open, ok := pending[key]; ok {
					// retriggered without an off; close the old one here
					open.Duration = seconds - open.Start
					notes = append(notes, open)
				}
				pending[key] = NoteEvent{
					Pitch:    int(key),
					Velocity: int(velocity),
					Start:    seconds,
				}
			case event.Message.GetNoteEnd(&channel, &key):
				if open, ok := pending[key]; ok {
					open.Duration = seconds - open.Start
					notes = append(notes, open)
					delete(pending, key)
				}
			}
		}

		if len(pending) > 0 {
			trackEnd := float64(s.TimeAt(absTicks)) / 1e6
			logging.Warn("closing dangling notes at end of track", logging.Fields{
				"count": len(pending),
			})
			for _, open := range pending {
				open.Duration = trackEnd - open.Start
				notes = append(notes, open)
			}
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Start != notes[j].Start {
			return notes[i].Start < notes[j].Start
		}
		return notes[i].Pitch < notes[j].Pitch
	})
	return notes
}

// ExtractNotesFromFile is ReadFile followed by ExtractNotes.
func ExtractNotesFromFile(path string) ([]NoteEvent, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractNotes(s), nil
}

// Merge combines event streams from separate files or instruments into one
// stream sorted by start time, then pitch.
func Merge(streams ...[]NoteEvent) []NoteEvent {
	var merged []NoteEvent
	for _, s := range streams {
		merged = append(merged, s...)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Start != merged[j].Start {
			return merged[i].Start < merged[j].Start
		}
		return merged[i].Pitch < merged[j].Pitch
	})
	return merged
}

// PitchesAndDurations splits events into the parallel slices the classifier
// consumes.
func PitchesAndDurations(events []NoteEvent) ([]int, []float64) {
	pitches := make([]int, len(events))
	durations := make([]float64, len(events))
	for i, ev := range events {
		pitches[i] = ev.Pitch
		durations[i] = ev.Duration
	}
	return pitches, durations
}
