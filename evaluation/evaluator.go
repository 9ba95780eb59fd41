package evaluation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/RyanBlaney/scale-sonar/algorithms/pitch"
	"github.com/RyanBlaney/scale-sonar/algorithms/scale"
	"github.com/RyanBlaney/scale-sonar/algorithms/tonal"
	"github.com/RyanBlaney/scale-sonar/logging"
	"github.com/RyanBlaney/scale-sonar/midi"
)

// Params contains parameters for an evaluation run
type Params struct {
	// BootstrapIterations is the number of random guesses sampled per item
	// to estimate the chance-level baseline
	BootstrapIterations int `json:"bootstrap_iterations"`

	// Seed fixes the baseline sampling so runs are reproducible
	Seed int64 `json:"seed"`
}

// DefaultParams returns the production defaults
func DefaultParams() Params {
	return Params{
		BootstrapIterations: 1000,
		Seed:                42,
	}
}

// Item is one ground-truth entry: a pair of instrument transcriptions of the
// same performance and the scale it is known to use.
type Item struct {
	Name      string `json:"name"`
	SaxPath   string `json:"sax"`
	PianoPath string `json:"piano"`
	Root      string `json:"root"`
	Scale     string `json:"scale"`
}

// ExpectedInstance resolves the item's ground-truth label against the
// syllabus.
func (it Item) ExpectedInstance() (*scale.Instance, error) {
	tmpl, ok := scale.TemplateByName(it.Scale)
	if !ok {
		return nil, fmt.Errorf("item %q: unknown scale %q", it.Name, it.Scale)
	}
	inst, err := scale.NewInstanceFromName(tmpl, it.Root)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", it.Name, err)
	}
	return inst, nil
}

// ItemResult is the scored outcome for a single item
type ItemResult struct {
	Name            string  `json:"name"`
	Expected        string  `json:"expected"`
	Actual          string  `json:"actual"`
	Jaccard         float64 `json:"jaccard"`
	LabelScore      float64 `json:"label_score"`
	BaselineJaccard float64 `json:"baseline_jaccard"`
	NoteCount       int     `json:"note_count"`
}

// Report aggregates an evaluation run
type Report struct {
	RunID           string       `json:"run_id"`
	GeneratedAt     time.Time    `json:"generated_at"`
	Items           []ItemResult `json:"items"`
	MeanJaccard     float64      `json:"mean_jaccard"`
	MeanLabelScore  float64      `json:"mean_label_score"`
	BaselineJaccard float64      `json:"baseline_jaccard"`
}

// Evaluator runs the classifier over a ground-truth manifest and scores the
// predictions. Not safe for concurrent use: the baseline sampler holds a
// seeded random source.
type Evaluator struct {
	params    Params
	estimator *tonal.ScaleEstimator
	syllabus  []*scale.Template
	rng       *rand.Rand
}

// NewEvaluator creates an evaluator with default parameters
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithParams(DefaultParams())
}

// NewEvaluatorWithParams creates an evaluator with custom parameters
func NewEvaluatorWithParams(params Params) *Evaluator {
	return &Evaluator{
		params:    params,
		estimator: tonal.NewScaleEstimator(),
		syllabus:  scale.Syllabus(),
		rng:       rand.New(rand.NewSource(params.Seed)),
	}
}

// Evaluate loads, classifies, and scores every item in the manifest.
func (e *Evaluator) Evaluate(items []Item) (*Report, error) {
	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, item := range items {
		events, err := loadItemNotes(item)
		if err != nil {
			return nil, err
		}
		result, err := e.EvaluateNotes(item, events)
		if err != nil {
			return nil, err
		}
		report.Items = append(report.Items, result)
	}

	for _, r := range report.Items {
		report.MeanJaccard += r.Jaccard
		report.MeanLabelScore += r.LabelScore
		report.BaselineJaccard += r.BaselineJaccard
	}
	if n := float64(len(report.Items)); n > 0 {
		report.MeanJaccard /= n
		report.MeanLabelScore /= n
		report.BaselineJaccard /= n
	}

	logging.Info("evaluation complete", logging.Fields{
		"run_id":       report.RunID,
		"items":        len(report.Items),
		"mean_jaccard": report.MeanJaccard,
		"baseline":     report.BaselineJaccard,
	})
	return report, nil
}

// EvaluateNotes classifies an already-loaded note stream and scores it
// against the item's ground truth.
func (e *Evaluator) EvaluateNotes(item Item, events []midi.NoteEvent) (ItemResult, error) {
	expected, err := item.ExpectedInstance()
	if err != nil {
		return ItemResult{}, err
	}

	pitches, durations := midi.PitchesAndDurations(events)
	match, err := e.estimator.ClassifyPitches(pitches, durations)
	if err != nil {
		return ItemResult{}, fmt.Errorf("item %q: %w", item.Name, err)
	}

	result := ItemResult{
		Name:            item.Name,
		Expected:        expected.String(),
		Actual:          match.Instance.String(),
		Jaccard:         Jaccard(expected, match.Instance),
		LabelScore:      LabelScore(expected, match.Instance),
		BaselineJaccard: e.baseline(expected),
		NoteCount:       len(events),
	}

	logging.Debug("scored item", logging.Fields{
		"name":     result.Name,
		"expected": result.Expected,
		"actual":   result.Actual,
		"jaccard":  result.Jaccard,
	})
	return result, nil
}

// baseline estimates chance-level Jaccard by sampling random syllabus
// instances against the expected scale.
func (e *Evaluator) baseline(expected *scale.Instance) float64 {
	if e.params.BootstrapIterations <= 0 {
		return 0
	}

	var total float64
	for i := 0; i < e.params.BootstrapIterations; i++ {
		tmpl := e.syllabus[e.rng.Intn(len(e.syllabus))]
		root := pitch.Class(e.rng.Intn(12))
		guess, err := scale.NewInstance(tmpl, root)
		if err != nil {
			continue // unreachable: roots are drawn in range
		}
		total += Jaccard(expected, guess)
	}
	return total / float64(e.params.BootstrapIterations)
}

// loadItemNotes reads both instrument transcriptions, applies the matching
// range filter to each, and merges them into one onset-ordered stream.
func loadItemNotes(item Item) ([]midi.NoteEvent, error) {
	sax, err := midi.ExtractNotesFromFile(item.SaxPath)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", item.Name, err)
	}
	piano, err := midi.ExtractNotesFromFile(item.PianoPath)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", item.Name, err)
	}

	return midi.Merge(
		midi.Filter(sax, midi.SaxophoneFilter()),
		midi.Filter(piano, midi.PianoFilter()),
	), nil
}
