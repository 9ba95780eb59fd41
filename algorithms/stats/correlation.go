package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch indicates two sequences of different lengths
	ErrLengthMismatch = errors.New("sequence lengths are not equal")

	// ErrInsufficientData indicates fewer than two observations
	ErrInsufficientData = errors.New("need at least two values to compute correlation")
)

// Coefficient is the outcome of a Pearson correlation. When either input has
// zero variance the coefficient is mathematically undefined; Defined reports
// that case explicitly so ranking code can treat it as worse than any defined
// score instead of conflating it with zero.
type Coefficient struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// Undefined returns the sentinel coefficient for zero-variance inputs
func Undefined() Coefficient {
	return Coefficient{}
}

// Less reports whether c ranks strictly below other. An undefined coefficient
// ranks below every defined one; two undefined coefficients rank equal.
func (c Coefficient) Less(other Coefficient) bool {
	if !c.Defined {
		return other.Defined
	}
	if !other.Defined {
		return false
	}
	return c.Value < other.Value
}

// Equal reports whether c and other occupy the same rank
func (c Coefficient) Equal(other Coefficient) bool {
	return !c.Less(other) && !other.Less(c)
}

func (c Coefficient) String() string {
	if !c.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.6f", c.Value)
}

// Pearson computes the Pearson product-moment correlation coefficient between
// x and y using gonum for the underlying moments. The result lies in [-1, 1].
func Pearson(x, y []float64) (Coefficient, error) {
	if len(x) != len(y) {
		return Coefficient{}, fmt.Errorf("%w: got %d and %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Coefficient{}, ErrInsufficientData
	}

	varX := stat.Variance(x, nil)
	varY := stat.Variance(y, nil)
	if varX == 0 || varY == 0 {
		// constant input: undefined, not an error
		return Undefined(), nil
	}

	r := stat.Covariance(x, y, nil) / math.Sqrt(varX*varY)
	return Coefficient{Value: clampCorrelation(r), Defined: true}, nil
}

// clampCorrelation keeps floating point results inside the valid range [-1, 1]
func clampCorrelation(r float64) float64 {
	if r > 1.0 {
		return 1.0
	}
	if r < -1.0 {
		return -1.0
	}
	return r
}
