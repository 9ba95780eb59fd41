package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
)

func TestBuildHistogramAccumulatesDurations(t *testing.T) {
	assert := assert.New(t)

	hist, err := BuildHistogram([]any{60, 60, 60, 62}, []float64{0.5, 0.5, 1.0, 2.0})
	assert.NoError(err)

	bins := hist.Bins()
	assert.Len(bins, 12)
	assert.Equal(2.0, bins[0])
	assert.Equal(2.0, bins[2])
	assert.Equal(pitch.Class(0), hist.PeakClass()) // tie resolves to the lowest class
}

func TestBuildHistogramFoldsOctaves(t *testing.T) {
	assert := assert.New(t)

	hist, err := BuildHistogram([]any{12, 14, 16}, []float64{1, 1, 1})
	assert.NoError(err)

	bins := hist.Bins()
	assert.Equal(1.0, bins[0])
	assert.Equal(1.0, bins[2])
	assert.Equal(1.0, bins[4])
}

func TestBuildHistogramParsesNames(t *testing.T) {
	assert := assert.New(t)

	hist, err := BuildHistogram([]any{"c", "d", "e"}, []float64{2.0, 1.0, 1.0})
	assert.NoError(err)
	assert.Equal(pitch.Class(0), hist.PeakClass())
}

func TestBuildHistogramValidation(t *testing.T) {
	cases := []struct {
		name      string
		notes     []any
		durations []float64
		expected  error
	}{
		{"both empty", []any{}, []float64{}, ErrEmptyInput},
		{"no durations", []any{1, 2, 3}, []float64{}, ErrEmptyInput},
		{"no notes", []any{}, []float64{1.0, 2.0}, ErrEmptyInput},
		{"more notes", []any{1, 2, 3}, []float64{1.0, 2.0}, ErrLengthMismatch},
		{"more durations", []any{1, 2}, []float64{1.0, 2.0, 3.0}, ErrLengthMismatch},
		{"nil note", []any{1, 2, nil}, []float64{1.0, 2.0, 3.0}, ErrInvalidNoteType},
		{"slice note", []any{1, 2, []int{3}}, []float64{1.0, 2.0, 3.0}, ErrInvalidNoteType},
		{"float note", []any{1.5, 2, 3}, []float64{1.0, 2.0, 3.0}, ErrInvalidNoteType},
		{"mixed types", []any{60, "C"}, []float64{1.0, 1.0}, ErrInvalidNoteType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildHistogram(c.notes, c.durations)
			assert.ErrorIs(t, err, c.expected)
		})
	}
}

func TestBuildHistogramRejectsUnknownNames(t *testing.T) {
	_, err := BuildHistogram([]any{"C", "H"}, []float64{1.0, 1.0})
	assert.ErrorIs(t, err, pitch.ErrInvalidNoteName)
}
