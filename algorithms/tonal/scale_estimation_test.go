package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equalDurations(n int) []float64 {
	durations := make([]float64, n)
	for i := range durations {
		durations[i] = 1.0
	}
	return durations
}

func TestClassifyMajorScale(t *testing.T) {
	assert := assert.New(t)
	se := NewScaleEstimator()

	match, err := se.ClassifyPitches([]int{0, 2, 4, 5, 7, 9, 11}, equalDurations(7))
	require.NoError(t, err)

	result := match.Result()
	assert.Equal("C", result.Root)
	assert.Equal(0, result.RootClass)
	assert.Equal("major", result.Scale)
	assert.Equal("major", result.Family)
	assert.Equal([]int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1}, result.BinaryDistribution)
	require.NotNil(t, result.Correlation)
	assert.InDelta(1.0, *result.Correlation, 1e-9)
}

func TestClassifyHarmonicMinorFromNames(t *testing.T) {
	assert := assert.New(t)
	se := NewScaleEstimator()

	// An exact pitch-class match ties harmonic minor with its rotations
	// (sixth mode harmonic minor on G#, phrygian major on G); the peak
	// duration on C must keep the C-rooted candidate.
	match, err := se.ClassifyNames(
		[]string{"C", "D", "Eb", "F", "G", "Ab", "B"}, equalDurations(7))
	require.NoError(t, err)

	result := match.Result()
	assert.Equal("C", result.Root)
	assert.Equal("harmonic minor", result.Scale)
	assert.Equal("minor", result.Family)
	require.NotNil(t, result.Correlation)
	assert.InDelta(1.0, *result.Correlation, 1e-9)
}

func TestClassifyAmbiguousFragment(t *testing.T) {
	// C D E F G fits every 7-note superset equally well. With flat
	// durations the tonal center falls on C and registry order favors
	// plain major; doubling the D shifts the peak and the winner with it.
	se := NewScaleEstimator()

	t.Run("equal durations", func(t *testing.T) {
		match, err := se.ClassifyPitches([]int{60, 62, 64, 65, 67}, equalDurations(5))
		require.NoError(t, err)

		result := match.Result()
		assert.Equal(t, "C", result.Root)
		assert.Equal(t, "major", result.Scale)
		require.NotNil(t, result.Correlation)
		assert.InDelta(t, 5.0/7.0, *result.Correlation, 1e-9)
	})

	t.Run("weighted toward D", func(t *testing.T) {
		match, err := se.ClassifyPitches([]int{60, 62, 64, 65, 67},
			[]float64{1.0, 2.0, 1.0, 1.0, 1.0})
		require.NoError(t, err)

		result := match.Result()
		assert.Equal(t, "D", result.Root)
		assert.Equal(t, "dorian", result.Scale)
	})
}

func TestClassifyTieBreakDisabled(t *testing.T) {
	se := NewScaleEstimatorWithParams(EstimatorParams{TieBreakByDuration: false})

	match, err := se.ClassifyPitches([]int{60, 62, 64, 65, 67},
		[]float64{1.0, 2.0, 1.0, 1.0, 1.0})
	require.NoError(t, err)

	// Without the duration tie-break the first-registered tied template wins.
	assert.Equal(t, "C major", match.Instance.String())
}

func TestClassifyUniformHistogramIsUndefined(t *testing.T) {
	assert := assert.New(t)
	se := NewScaleEstimator()

	// Every pitch class held equally long: zero histogram variance, so no
	// correlation is defined and only the tie-break policy decides.
	pitches := make([]int, 12)
	for i := range pitches {
		pitches[i] = i
	}
	match, err := se.ClassifyPitches(pitches, equalDurations(12))
	require.NoError(t, err)

	assert.False(match.Corr.Defined)
	result := match.Result()
	assert.Nil(result.Correlation)
	assert.Equal("C", result.Root)
	assert.Equal("major", result.Scale)
}

func TestClassifySingleNote(t *testing.T) {
	se := NewScaleEstimator()

	match, err := se.ClassifyPitches([]int{0}, []float64{1.0})
	require.NoError(t, err)
	assert.Equal(t, "C", match.Result().Root)
}

func TestClassifyValidation(t *testing.T) {
	se := NewScaleEstimator()

	cases := []struct {
		name      string
		notes     []any
		durations []float64
		expected  error
	}{
		{"empty passage", []any{}, []float64{}, ErrEmptyInput},
		{"length mismatch", []any{60, 62}, []float64{1.0}, ErrLengthMismatch},
		{"mixed note types", []any{60, "C"}, []float64{1.0, 1.0}, ErrInvalidNoteType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := se.Classify(c.notes, c.durations)
			assert.ErrorIs(t, err, c.expected)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	se := NewScaleEstimator()
	notes := []int{60, 62, 63, 65, 67, 68, 71, 72, 67, 63}
	durations := []float64{0.5, 0.25, 0.25, 1.0, 0.5, 0.5, 0.25, 2.0, 0.5, 0.75}

	first, err := se.ClassifyPitches(notes, durations)
	require.NoError(t, err)
	second, err := se.ClassifyPitches(notes, durations)
	require.NoError(t, err)

	assert.Equal(t, first.Result(), second.Result())
	assert.True(t, first.Corr.Equal(second.Corr))
}

func TestBestMatchPerTemplateCoversSyllabus(t *testing.T) {
	se := NewScaleEstimator()

	hist, err := BuildHistogram([]any{0, 2, 4, 5, 7, 9, 11}, equalDurations(7))
	require.NoError(t, err)

	matches, err := se.BestMatchPerTemplate(hist)
	require.NoError(t, err)
	assert.Len(t, matches, 31)

	seen := make(map[string]bool)
	for _, m := range matches {
		name := m.Instance.Template().Name()
		assert.False(t, seen[name], "template %q matched twice", name)
		seen[name] = true
	}
}
