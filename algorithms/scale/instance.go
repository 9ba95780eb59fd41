package scale

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
)

var (
	// ErrInvalidRoot indicates a requested root outside the 12 pitch classes
	ErrInvalidRoot = errors.New("invalid scale root")

	// ErrIndexOutOfRange indicates a scale-degree index outside [0, 12]
	ErrIndexOutOfRange = errors.New("scale degree out of range")
)

// Instance is a Template anchored to a concrete root pitch class. Instances
// are cheap value-like objects built per request; the correlation score of a
// matching attempt lives in the matcher's result type, never on the instance.
type Instance struct {
	template *Template
	root     pitch.Class
}

// NewInstance binds a template to a root pitch class
func NewInstance(t *Template, root pitch.Class) (*Instance, error) {
	if !root.Valid() {
		return nil, fmt.Errorf("%w: %d is not a pitch class", ErrInvalidRoot, root)
	}
	return &Instance{template: t, root: root}, nil
}

// NewInstanceFromName binds a template to a root given as a note name
func NewInstanceFromName(t *Template, rootName string) (*Instance, error) {
	root, err := pitch.Parse(rootName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, rootName)
	}
	return NewInstance(t, root)
}

// Template returns the underlying scale shape
func (in *Instance) Template() *Template {
	return in.template
}

// Root returns the root pitch class
func (in *Instance) Root() pitch.Class {
	return in.root
}

// RootName returns the canonical name of the root
func (in *Instance) RootName() string {
	return in.root.Name()
}

// NoteNumbers returns the pitch classes of the scale after transposition to
// the root, in scale-degree order
func (in *Instance) NoteNumbers() []pitch.Class {
	numbers := make([]pitch.Class, len(in.template.offsets))
	for i, offset := range in.template.offsets {
		numbers[i] = offset.Transpose(int(in.root))
	}
	return numbers
}

// Notes returns the canonical names of the transposed scale notes
func (in *Instance) Notes() []string {
	numbers := in.NoteNumbers()
	names := make([]string, len(numbers))
	for i, n := range numbers {
		names[i] = n.Name()
	}
	return names
}

// BinaryDistribution returns the 12-slot membership vector: slot i is 1 when
// pitch class i belongs to the scale, else 0. Two instances are musically
// identical iff their distributions are equal, whatever template and root
// produced them.
func (in *Instance) BinaryDistribution() []float64 {
	dist := make([]float64, 12)
	for _, n := range in.NoteNumbers() {
		dist[n] = 1
	}
	return dist
}

// NoteCount returns the number of notes in the scale
func (in *Instance) NoteCount() int {
	return len(in.template.offsets)
}

func (in *Instance) String() string {
	return in.RootName() + " " + in.template.name
}

// NoteAt returns the note name at a 0-based scale degree. A degree within
// [0, 12] but beyond the scale length is a valid miss, reported through ok;
// a degree outside [0, 12] fails with ErrIndexOutOfRange.
func (in *Instance) NoteAt(degree int) (name string, ok bool, err error) {
	if degree < 0 || degree > 12 {
		return "", false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, degree)
	}
	notes := in.Notes()
	if degree >= len(notes) {
		return "", false, nil
	}
	return notes[degree], true, nil
}

// DegreeOf returns the 0-based scale degree of a note name, ok=false when the
// note does not belong to the scale
func (in *Instance) DegreeOf(name string) (degree int, ok bool, err error) {
	pc, err := pitch.Parse(name)
	if err != nil {
		return 0, false, err
	}
	for i, n := range in.NoteNumbers() {
		if n == pc {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// DegreeSteps maps note names onto scale degrees relative to this instance.
// Notes outside the scale are reported as -1.
func (in *Instance) DegreeSteps(names []string) ([]int, error) {
	steps := make([]int, len(names))
	for i, name := range names {
		degree, ok, err := in.DegreeOf(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			steps[i] = -1
			continue
		}
		steps[i] = degree
	}
	return steps, nil
}
