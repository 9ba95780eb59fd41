package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptsSpellingsAndOctaves(t *testing.T) {
	cases := []struct {
		name     string
		expected Class
	}{
		{"C", 0},
		{"c", 0},
		{"D#5", 3},
		{"Db2", 1},
		{"D", 2},
		{"eb", 3},
		{"bb3", 10},
		{"F#", 6},
		{"gB", 6},
		{"A#10", 10},
		{"B", 11},
	}

	assert := assert.New(t)
	for _, c := range cases {
		pc, err := Parse(c.name)
		assert.NoError(err, c.name)
		assert.Equal(c.expected, pc, c.name)
	}
}

func TestParseRejectsUnknownNames(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"123", "H", "C##", "", "Dbb", "note"} {
		_, err := Parse(name)
		assert.ErrorIs(err, ErrInvalidNoteName, name)
	}
}

func TestFoldIsAlwaysNonNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Class(0), Fold(60))
	assert.Equal(Class(0), Fold(12))
	assert.Equal(Class(0), Fold(0))
	assert.Equal(Class(11), Fold(-1))
	assert.Equal(Class(2), Fold(-10))
	assert.Equal(Class(7), Fold(67))
}

func TestCanonicalNameRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for pc := Class(0); pc <= 11; pc++ {
		parsed, err := Parse(pc.Name())
		assert.NoError(err)
		assert.Equal(pc, parsed)
	}
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Class(2), Class(0).Transpose(2))
	assert.Equal(Class(0), Class(10).Transpose(2))
	assert.Equal(Class(11), Class(0).Transpose(-1))
}
