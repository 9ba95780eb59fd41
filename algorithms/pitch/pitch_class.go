package pitch

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidNoteName indicates a note name that does not resolve to one of the
// twelve pitch classes after stripping octave digits.
var ErrInvalidNoteName = errors.New("invalid note name")

// Class is a pitch class in [0, 11] (0=C, 1=C#, ..., 11=B)
type Class int

// canonicalNames holds the single display spelling per pitch class. Sharps are
// canonical on output; flat spellings are accepted on input only.
var canonicalNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// noteNames maps every accepted spelling onto its pitch class
var noteNames = map[string]Class{
	"B#": 0, "C": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"E#": 5, "F": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// titleCaser normalizes spellings like "eb" or "BB" to "Eb"/"Bb"
var titleCaser = cases.Title(language.English)

// Parse resolves a note name to its pitch class. Names are case-insensitive,
// may carry octave digits ("D#5", "Db2", "D"), and accept # for sharp and
// b for flat.
func Parse(name string) (Class, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	pc, ok := noteNames[titleCaser.String(stripped)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return pc, nil
}

// Fold maps any integer note number (MIDI number or raw pitch class) onto
// [0, 11] using a mathematical, always-non-negative modulo.
func Fold(n int) Class {
	return Class(((n % 12) + 12) % 12)
}

// Name returns the canonical display spelling. Total over all Class values;
// out-of-range values are folded first.
func (c Class) Name() string {
	return canonicalNames[Fold(int(c))]
}

// Valid reports whether c lies in the canonical [0, 11] range
func (c Class) Valid() bool {
	return c >= 0 && c <= 11
}

// Transpose shifts c by the given number of semitones, wrapping modulo 12
func (c Class) Transpose(semitones int) Class {
	return Fold(int(c) + semitones)
}

func (c Class) String() string {
	return c.Name()
}
