package midi

// FilterParams bounds the notes worth classifying. Transcriptions carry
// artifacts (ghost notes, stuck keys, out-of-range glitches) that pollute a
// duration-weighted histogram; the bounds are instrument presets, not tuning
// knobs.
type FilterParams struct {
	MinPitch    int     `json:"min_pitch"`
	MaxPitch    int     `json:"max_pitch"`
	MinVelocity int     `json:"min_velocity"`
	MaxVelocity int     `json:"max_velocity"`
	MinDuration float64 `json:"min_duration"` // seconds
	MaxDuration float64 `json:"max_duration"` // seconds
}

// SaxophoneFilter covers the alto/tenor transcription range.
func SaxophoneFilter() FilterParams {
	return FilterParams{
		MinPitch:    45,
		MaxPitch:    88,
		MinVelocity: 1,
		MaxVelocity: 127,
		MinDuration: 0.1,
		MaxDuration: 10.0,
	}
}

// PianoFilter covers the full 88-key range.
func PianoFilter() FilterParams {
	return FilterParams{
		MinPitch:    21,
		MaxPitch:    108,
		MinVelocity: 1,
		MaxVelocity: 127,
		MinDuration: 0.1,
		MaxDuration: 10.0,
	}
}

func (p FilterParams) admits(ev NoteEvent) bool {
	return ev.Pitch >= p.MinPitch && ev.Pitch <= p.MaxPitch &&
		ev.Velocity >= p.MinVelocity && ev.Velocity <= p.MaxVelocity &&
		ev.Duration >= p.MinDuration && ev.Duration <= p.MaxDuration &&
		ev.Start >= 0
}

// Filter returns the events admitted by the params, preserving order.
func Filter(events []NoteEvent, params FilterParams) []NoteEvent {
	kept := make([]NoteEvent, 0, len(events))
	for _, ev := range events {
		if params.admits(ev) {
			kept = append(kept, ev)
		}
	}
	return kept
}

// Window slices events into overlapping windows of size notes advancing by
// hop, for classifying long performances section by section. A final partial
// window is kept so trailing notes are never dropped.
func Window(events []NoteEvent, size, hop int) [][]NoteEvent {
	if size <= 0 || hop <= 0 || len(events) == 0 {
		return nil
	}

	var windows [][]NoteEvent
	for start := 0; start < len(events); start += hop {
		end := start + size
		if end > len(events) {
			end = len(events)
		}
		windows = append(windows, events[start:end])
		if end == len(events) {
			break
		}
	}
	return windows
}
