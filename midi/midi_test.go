package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gm "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// buildSMF writes a single-track file and reads it back so the tempo map is
// in the same state ReadFile would produce. 96 ticks per quarter at the
// default 120 BPM makes one tick exactly 1/192 s.
func buildSMF(t *testing.T, add func(tr *smf.Track)) *smf.SMF {
	t.Helper()

	file := smf.New()
	file.TimeFormat = smf.MetricTicks(96)

	var tr smf.Track
	add(&tr)
	require.NoError(t, file.Add(tr))

	var buf bytes.Buffer
	_, err := file.WriteTo(&buf)
	require.NoError(t, err)

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return parsed
}

func TestExtractNotesPairsOnAndOff(t *testing.T) {
	assert := assert.New(t)

	file := buildSMF(t, func(tr *smf.Track) {
		tr.Add(0, gm.NoteOn(0, 60, 100))
		tr.Add(96, gm.NoteOff(0, 60)) // one quarter note at 120 BPM
		tr.Add(0, gm.NoteOn(0, 62, 80))
		tr.Add(48, gm.NoteOff(0, 62))
		tr.Close(0)
	})

	notes := ExtractNotes(file)
	require.Len(t, notes, 2)

	assert.Equal(60, notes[0].Pitch)
	assert.Equal(100, notes[0].Velocity)
	assert.InDelta(0.0, notes[0].Start, 1e-9)
	assert.InDelta(0.5, notes[0].Duration, 1e-6)

	assert.Equal(62, notes[1].Pitch)
	assert.InDelta(0.5, notes[1].Start, 1e-6)
	assert.InDelta(0.25, notes[1].Duration, 1e-6)
}

func TestExtractNotesVelocityZeroIsNoteOff(t *testing.T) {
	file := buildSMF(t, func(tr *smf.Track) {
		tr.Add(0, gm.NoteOn(0, 64, 90))
		tr.Add(48, gm.NoteOn(0, 64, 0))
		tr.Close(0)
	})

	notes := ExtractNotes(file)
	require.Len(t, notes, 1)
	assert.Equal(t, 64, notes[0].Pitch)
	assert.InDelta(t, 0.25, notes[0].Duration, 1e-6)
}

func TestExtractNotesClosesDanglingAtTrackEnd(t *testing.T) {
	file := buildSMF(t, func(tr *smf.Track) {
		tr.Add(0, gm.NoteOn(0, 67, 70))
		tr.Close(96) // end of track arrives with the note still sounding
	})

	notes := ExtractNotes(file)
	require.Len(t, notes, 1)
	assert.Equal(t, 67, notes[0].Pitch)
	assert.InDelta(t, 0.5, notes[0].Duration, 1e-6)
}

func TestExtractNotesSortsByStart(t *testing.T) {
	file := buildSMF(t, func(tr *smf.Track) {
		tr.Add(0, gm.NoteOn(0, 72, 100))
		tr.Add(48, gm.NoteOn(0, 65, 100)) // chord tail starts later
		tr.Add(48, gm.NoteOff(0, 72))
		tr.Add(0, gm.NoteOff(0, 65))
		tr.Close(0)
	})

	notes := ExtractNotes(file)
	require.Len(t, notes, 2)
	assert.Equal(t, 72, notes[0].Pitch)
	assert.Equal(t, 65, notes[1].Pitch)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}

func TestPitchesAndDurations(t *testing.T) {
	events := []NoteEvent{
		{Pitch: 60, Duration: 0.5},
		{Pitch: 64, Duration: 0.25},
	}
	pitches, durations := PitchesAndDurations(events)
	assert.Equal(t, []int{60, 64}, pitches)
	assert.Equal(t, []float64{0.5, 0.25}, durations)
}
