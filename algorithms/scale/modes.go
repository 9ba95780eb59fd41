package scale

import (
	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
)

// Many syllabus names denote the same pitch-class set started from different
// degrees (C major, D dorian and E phrygian share seven pitch classes), so
// correlation alone cannot tell them apart: their membership vectors are
// identical. The resolver makes that ambiguity explicit by relating templates
// whose interval patterns are cyclic rotations of one another.

// ModeRelationship describes how one template relates to another under cyclic
// rotation of its interval pattern. ModeNumber is 1-based with mode 1 being
// the identity rotation; TranspositionSemitones is the root-to-root shift,
// modulo 12. Both are meaningful only when IsEquivalent is true.
type ModeRelationship struct {
	IsEquivalent           bool `json:"is_equivalent"`
	ModeNumber             int  `json:"mode_number"`
	TranspositionSemitones int  `json:"transposition_semitones"`
}

// ModeRelationshipBetween searches the rotations of a's interval pattern for
// b's pattern. A non-match is a valid negative result, not an error.
func ModeRelationshipBetween(a, b *Template) ModeRelationship {
	for i, rotation := range a.pattern.Rotations() {
		if rotation.Equal(b.pattern) {
			shift := pitch.Fold(int(b.offsets[0]) - int(a.offsets[i]))
			return ModeRelationship{
				IsEquivalent:           true,
				ModeNumber:             i + 1,
				TranspositionSemitones: int(shift),
			}
		}
	}
	return ModeRelationship{}
}

// RotationallyEquivalentTemplates returns every other registered template
// whose interval pattern is a cyclic rotation of t's, in registration order.
func RotationallyEquivalentTemplates(t *Template) []*Template {
	rotations := t.pattern.Rotations()

	var equivalent []*Template
	for _, other := range syllabus {
		if other == t {
			continue
		}
		for _, rotation := range rotations {
			if rotation.Equal(other.pattern) {
				equivalent = append(equivalent, other)
				break
			}
		}
	}
	return equivalent
}

// RotationallyEquivalentInstances returns instances of every rotationally
// equivalent template rooted so that each shares the exact pitch-class set of
// in: the equivalent scale starts on the corresponding degree of in. Symmetric
// shapes (whole tone, the octatonic diminished patterns) are their own modes
// starting on more than one degree, so self-instances at each non-identity
// rotation point are included as well.
func RotationallyEquivalentInstances(in *Instance) []*Instance {
	notes := in.NoteNumbers()

	var instances []*Instance
	for _, other := range RotationallyEquivalentTemplates(in.template) {
		rel := ModeRelationshipBetween(in.template, other)
		if !rel.IsEquivalent {
			continue
		}
		inst, err := NewInstance(other, notes[rel.ModeNumber-1])
		if err != nil {
			continue
		}
		instances = append(instances, inst)
	}

	pattern := in.template.pattern
	for i, rotation := range pattern.Rotations() {
		if i == 0 {
			continue
		}
		if rotation.Equal(pattern) {
			inst, err := NewInstance(in.template, notes[i])
			if err != nil {
				continue
			}
			instances = append(instances, inst)
		}
	}

	return instances
}
