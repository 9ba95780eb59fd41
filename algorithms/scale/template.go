package scale

import (
	"slices"

	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
)

// Family groups templates for coarse-grained scoring
type Family string

const (
	FamilyMajor          Family = "major"
	FamilyDominant7th    Family = "dominant_7th"
	FamilyMinor          Family = "minor"
	FamilyHalfDiminished Family = "half_diminished"
	FamilyDiminished     Family = "diminished"
)

// IntervalPattern is the cyclic sequence of semitone gaps between consecutive
// scale notes. The gaps of any valid pattern sum to 12.
type IntervalPattern []int

// Equal reports element-wise equality; patterns of different lengths differ
func (p IntervalPattern) Equal(other IntervalPattern) bool {
	return slices.Equal(p, other)
}

// Rotations returns every cyclic rotation of p, the identity rotation first.
// A pattern of length N yields exactly N rotations.
func (p IntervalPattern) Rotations() []IntervalPattern {
	rotations := make([]IntervalPattern, len(p))
	for i := range p {
		rotation := make(IntervalPattern, 0, len(p))
		rotation = append(rotation, p[i:]...)
		rotation = append(rotation, p[:i]...)
		rotations[i] = rotation
	}
	return rotations
}

// Template is a named scale shape independent of any root. Templates are
// registered once in the syllabus at package initialization and never mutated.
type Template struct {
	name    string
	family  Family
	offsets []pitch.Class // non-transposed pitch classes relative to C
	pattern IntervalPattern
}

// newTemplate builds a template from its non-transposed note spellings.
// Registry data is fixed at build time, so a bad spelling is a programming
// error and panics during package initialization.
func newTemplate(name string, family Family, noteNames ...string) *Template {
	offsets := make([]pitch.Class, len(noteNames))
	for i, n := range noteNames {
		pc, err := pitch.Parse(n)
		if err != nil {
			panic("scale: bad syllabus entry " + name + ": " + err.Error())
		}
		offsets[i] = pc
	}
	return &Template{
		name:    name,
		family:  family,
		offsets: offsets,
		pattern: derivePattern(offsets),
	}
}

// derivePattern computes the cyclic semitone gaps between consecutive offsets
func derivePattern(offsets []pitch.Class) IntervalPattern {
	pattern := make(IntervalPattern, len(offsets))
	for i := range offsets {
		next := offsets[(i+1)%len(offsets)]
		pattern[i] = int(pitch.Fold(int(next) - int(offsets[i])))
	}
	return pattern
}

// Name returns the display name used in output
func (t *Template) Name() string {
	return t.name
}

// Family returns the coarse-grained family tag
func (t *Template) Family() Family {
	return t.family
}

// Offsets returns the non-transposed pitch classes relative to an implicit C root
func (t *Template) Offsets() []pitch.Class {
	return slices.Clone(t.offsets)
}

// IntervalPattern returns the semitone gaps between consecutive scale notes
func (t *Template) IntervalPattern() IntervalPattern {
	return slices.Clone(t.pattern)
}

// NoteCount returns the number of notes in the shape
func (t *Template) NoteCount() int {
	return len(t.offsets)
}

func (t *Template) String() string {
	return t.name
}
