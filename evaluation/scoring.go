// Package evaluation scores classifier output against ground-truth scale
// labels, with a random-guess bootstrap baseline for context.
package evaluation

import (
	"github.com/RyanBlaney/scale-sonar/algorithms/scale"
)

// Jaccard measures pitch-class set overlap between two scale instances:
// intersection over union, 1.0 for identical note sets.
func Jaccard(expected, actual *scale.Instance) float64 {
	var expectedSet, actualSet [12]bool
	for _, n := range expected.NoteNumbers() {
		expectedSet[n] = true
	}
	for _, n := range actual.NoteNumbers() {
		actualSet[n] = true
	}

	var intersection, union int
	for i := 0; i < 12; i++ {
		if expectedSet[i] && actualSet[i] {
			intersection++
		}
		if expectedSet[i] || actualSet[i] {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// LabelScore grades a prediction on a hierarchy of partial credit:
//
//	1.0  correct root, family, and scale name
//	0.5  correct root and family (e.g. Bb lydian for Bb major)
//	0.25 correct root only
//	0.1  correct family only
//	0.0  nothing right
func LabelScore(expected, actual *scale.Instance) float64 {
	sameRoot := expected.Root() == actual.Root()
	sameFamily := expected.Template().Family() == actual.Template().Family()
	sameName := expected.Template().Name() == actual.Template().Name()

	switch {
	case sameRoot && sameFamily && sameName:
		return 1.0
	case sameRoot && sameFamily:
		return 0.5
	case sameRoot:
		return 0.25
	case sameFamily:
		return 0.1
	default:
		return 0.0
	}
}
