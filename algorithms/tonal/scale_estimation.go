package tonal

import (
	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
	"github.com/RyanBlaney/scale-sonar/algorithms/scale"
	"github.com/RyanBlaney/scale-sonar/algorithms/stats"
	"github.com/RyanBlaney/scale-sonar/logging"
)

// Match pairs a scale instance with the correlation score of the matching
// attempt that produced it. The score is transient by design: it belongs to
// the match, not to the instance.
type Match struct {
	Instance *scale.Instance
	Corr     stats.Coefficient
}

// Result is the JSON-friendly view of a classification outcome
type Result struct {
	Root               string   `json:"root"`
	RootClass          int      `json:"root_class"`
	Scale              string   `json:"scale"`
	Family             string   `json:"family"`
	Notes              []string `json:"notes"`
	BinaryDistribution []int    `json:"binary_distribution"`
	NoteCount          int      `json:"note_count"`
	Correlation        *float64 `json:"correlation"` // nil when undefined
}

// Result converts a match into its output representation
func (m Match) Result() Result {
	dist := m.Instance.BinaryDistribution()
	binary := make([]int, len(dist))
	for i, v := range dist {
		binary[i] = int(v)
	}

	var corr *float64
	if m.Corr.Defined {
		value := m.Corr.Value
		corr = &value
	}

	return Result{
		Root:               m.Instance.RootName(),
		RootClass:          int(m.Instance.Root()),
		Scale:              m.Instance.Template().Name(),
		Family:             string(m.Instance.Template().Family()),
		Notes:              m.Instance.Notes(),
		BinaryDistribution: binary,
		NoteCount:          m.Instance.NoteCount(),
		Correlation:        corr,
	}
}

// EstimatorParams contains parameters for scale estimation
type EstimatorParams struct {
	// TieBreakByDuration resolves rotational ties (modes of the same pitch-class
	// set) toward the candidate rooted on the longest-held pitch class
	TieBreakByDuration bool `json:"tie_break_by_duration"`
}

// DefaultEstimatorParams returns the production defaults
func DefaultEstimatorParams() EstimatorParams {
	return EstimatorParams{TieBreakByDuration: true}
}

// ScaleEstimator matches duration-weighted pitch-class evidence against the
// scale syllabus, Krumhansl-Schmuckler style: the binary distribution of every
// template is tried at all 12 transpositions and correlated with the observed
// histogram. Estimators are stateless across calls; concurrent use needs no
// coordination.
type ScaleEstimator struct {
	params   EstimatorParams
	syllabus []*scale.Template
}

// NewScaleEstimator creates a scale estimator with default parameters
func NewScaleEstimator() *ScaleEstimator {
	return NewScaleEstimatorWithParams(DefaultEstimatorParams())
}

// NewScaleEstimatorWithParams creates a scale estimator with custom parameters
func NewScaleEstimatorWithParams(params EstimatorParams) *ScaleEstimator {
	return &ScaleEstimator{
		params:   params,
		syllabus: scale.Syllabus(),
	}
}

// Classify returns the scale instance best explaining the passage. Notes may
// be note-name strings or integers (homogeneous collection); every note must
// have a paired duration. The returned match carries the winning correlation,
// which may be undefined when the histogram has zero variance.
func (se *ScaleEstimator) Classify(notes []any, durations []float64) (Match, error) {
	hist, err := BuildHistogram(notes, durations)
	if err != nil {
		return Match{}, err
	}

	matches, err := se.BestMatchPerTemplate(hist)
	if err != nil {
		return Match{}, err
	}

	best := se.selectBest(matches, hist)
	logging.Debug("classified passage", logging.Fields{
		"scale": best.Instance.String(),
		"corr":  best.Corr.String(),
		"notes": len(notes),
	})
	return best, nil
}

// ClassifyPitches is a convenience wrapper for integer pitches (MIDI numbers
// or raw pitch classes)
func (se *ScaleEstimator) ClassifyPitches(pitches []int, durations []float64) (Match, error) {
	notes := make([]any, len(pitches))
	for i, p := range pitches {
		notes[i] = p
	}
	return se.Classify(notes, durations)
}

// ClassifyNames is a convenience wrapper for note-name strings
func (se *ScaleEstimator) ClassifyNames(names []string, durations []float64) (Match, error) {
	notes := make([]any, len(names))
	for i, n := range names {
		notes[i] = n
	}
	return se.Classify(notes, durations)
}

// BestMatchPerTemplate correlates the histogram against every registered
// template at all 12 roots and keeps the single best-scoring instance per
// template, in syllabus order. Root ties within a template resolve to the
// lowest root pitch class.
func (se *ScaleEstimator) BestMatchPerTemplate(hist *Histogram) ([]Match, error) {
	bins := hist.Bins()

	matches := make([]Match, 0, len(se.syllabus))
	for _, tmpl := range se.syllabus {
		var best Match
		for root := pitch.Class(0); root <= 11; root++ {
			inst, err := scale.NewInstance(tmpl, root)
			if err != nil {
				return nil, err
			}
			corr, err := stats.Pearson(inst.BinaryDistribution(), bins)
			if err != nil {
				return nil, err
			}
			if best.Instance == nil || best.Corr.Less(corr) {
				best = Match{Instance: inst, Corr: corr}
			}
		}
		matches = append(matches, best)
	}
	return matches, nil
}

// selectBest picks the maximum-scoring candidate across all templates and
// applies the rotational tie-break policy.
func (se *ScaleEstimator) selectBest(matches []Match, hist *Histogram) Match {
	best := matches[0]
	for _, m := range matches[1:] {
		if best.Corr.Less(m.Corr) {
			best = m
		}
	}

	var tied []Match
	for _, m := range matches {
		if m.Corr.Equal(best.Corr) {
			tied = append(tied, m)
		}
	}

	// Rotationally equivalent candidates produce identical membership vectors
	// and therefore identical scores; among them the pitch class held longest
	// is the best proxy for the intended root. Non-rotational exact ties fall
	// back to syllabus registration order (the match already in best).
	if se.params.TieBreakByDuration && len(tied) > 1 &&
		len(scale.RotationallyEquivalentInstances(best.Instance)) > 0 {
		longestHeld := hist.PeakClass()
		for _, m := range tied {
			if m.Instance.Root() == longestHeld {
				logging.Debug("rotational tie broken by duration", logging.Fields{
					"winner":    m.Instance.String(),
					"tied":      len(tied),
					"peakClass": longestHeld.Name(),
				})
				return m
			}
		}
	}

	return best
}
