package scale

// The scale syllabus: the named scale shapes from the Jamey Aebersold Scale
// Syllabus, registered in a fixed order. Registration order is significant:
// it is the canonical enumeration order of the matcher and the deterministic
// fallback when correlation scores tie exactly.
var syllabus = []*Template{
	newTemplate("major", FamilyMajor, "C", "D", "E", "F", "G", "A", "B"),
	newTemplate("major pentatonic", FamilyMajor, "C", "D", "E", "G", "A"),
	newTemplate("lydian", FamilyMajor, "C", "D", "E", "F#", "G", "A", "B"),
	newTemplate("bebop major", FamilyMajor, "C", "D", "E", "F", "G", "G#", "A", "B"),
	newTemplate("harmonic major", FamilyMajor, "C", "D", "E", "F", "G", "Ab", "B"),
	newTemplate("lydian augmented", FamilyMajor, "C", "D", "E", "F#", "G#", "A", "B"),
	newTemplate("augmented", FamilyMajor, "C", "D#", "E", "G", "Ab", "B"),
	newTemplate("sixth mode harmonic minor", FamilyMajor, "C", "D#", "E", "F#", "G", "A", "B"),
	newTemplate("blues", FamilyMajor, "C", "Eb", "F", "F#", "G", "Bb"),
	newTemplate("dominant 7th", FamilyDominant7th, "C", "D", "E", "F", "G", "A", "Bb"),
	newTemplate("bebop dominant 7th", FamilyDominant7th, "C", "D", "E", "F", "G", "A", "Bb", "B"),
	newTemplate("Spanish / Jewish", FamilyDominant7th, "C", "Db", "E", "F", "G", "Ab", "Bb"),
	newTemplate("lydian dominant 7th", FamilyDominant7th, "C", "D", "E", "F#", "G", "A", "Bb"),
	newTemplate("Hindu", FamilyDominant7th, "C", "D", "E", "F", "G", "Ab", "Bb"),
	newTemplate("whole tone", FamilyDominant7th, "C", "D", "E", "F#", "G#", "Bb"),
	newTemplate("diminished dominant 7th", FamilyDominant7th, "C", "Db", "D#", "E", "F#", "G", "A", "Bb"),
	newTemplate("diminished whole tone", FamilyDominant7th, "C", "Db", "D#", "E", "F#", "G#", "Bb"),
	newTemplate("dorian", FamilyMinor, "C", "D", "Eb", "F", "G", "A", "Bb"),
	newTemplate("minor pentatonic", FamilyMinor, "C", "Eb", "F", "G", "Bb"),
	newTemplate("bebop minor", FamilyMinor, "C", "D", "Eb", "E", "F", "G", "A", "Bb"),
	newTemplate("melodic minor", FamilyMinor, "C", "D", "Eb", "F", "G", "A", "B"),
	newTemplate("bebop minor 2", FamilyMinor, "C", "D", "Eb", "F", "G", "G#", "A", "B"),
	newTemplate("harmonic minor", FamilyMinor, "C", "D", "Eb", "F", "G", "Ab", "B"),
	newTemplate("diminished minor", FamilyMinor, "C", "D", "Eb", "F", "F#", "G#", "A", "B"),
	newTemplate("phrygian", FamilyMinor, "C", "Db", "Eb", "F", "G", "Ab", "Bb"),
	newTemplate("aeolian", FamilyMinor, "C", "D", "Eb", "F", "G", "Ab", "Bb"),
	newTemplate("locrian", FamilyHalfDiminished, "C", "Db", "Eb", "F", "Gb", "Ab", "Bb"),
	newTemplate("locrian sharp2", FamilyHalfDiminished, "C", "D", "Eb", "F", "Gb", "Ab", "Bb"),
	newTemplate("bebop half-diminished", FamilyHalfDiminished, "C", "Db", "Eb", "F", "Gb", "G", "Ab", "Bb"),
	newTemplate("diminished 8-tone", FamilyDiminished, "C", "D", "Eb", "F", "Gb", "Ab", "A", "B"),
	newTemplate("phrygian major", FamilyMinor, "C", "Db", "E", "F", "G", "Ab", "Bb"),
}

// Syllabus returns the registered templates in registration order
func Syllabus() []*Template {
	out := make([]*Template, len(syllabus))
	copy(out, syllabus)
	return out
}

// TemplateByName looks up a registered template by its display name
func TemplateByName(name string) (*Template, bool) {
	for _, t := range syllabus {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}
