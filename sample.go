package wasserstein

import (
	"fmt"
	"math"

	wmath "github.com/nozzle/wasserstein/internal/math"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample is a weighted empirical distribution on the real line.
type Sample struct {
	// Values are the observations. They need not be sorted.
	Values []float64

	// Weights is the relative mass of each observation.
	// Nil means every observation carries equal mass.
	// The sum need not be 1 but must be positive and finite.
	Weights []float64
}

// NewSample returns a Sample over values with optional weights.
func NewSample(values, weights []float64) Sample {
	return Sample{Values: values, Weights: weights}
}

// SampleFromVec builds a Sample from gonum vectors. A nil weights vector,
// or a nil *mat.VecDense, means uniform weighting. Other typed nil vectors
// are not accepted. The data is copied.
func SampleFromVec(values, weights mat.Vector) Sample {
	s := Sample{Values: vecData(values)}
	if w, ok := weights.(*mat.VecDense); weights != nil && !(ok && w == nil) {
		s.Weights = vecData(weights)
	}
	return s
}

// vecData copies v, which may be a column or a row vector.
func vecData(v mat.Vector) []float64 {
	if r, _ := v.Dims(); r == 1 && v.Len() != 1 {
		return mat.Row(nil, 0, v)
	}
	return mat.Col(nil, 0, v)
}

// Validate checks that the sample can take part in a distance computation.
// The returned error wraps ErrInvalidArgument.
func (s Sample) Validate() error {
	return s.validate("")
}

func (s Sample) validate(name string) error {
	values, weights := name+"values", name+"weights"

	if len(s.Values) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidArgument, values)
	}
	if i := wmath.FirstNonFinite(s.Values); i >= 0 {
		return fmt.Errorf("%w: %s[%d] is %v", ErrInvalidArgument, values, i, s.Values[i])
	}

	if s.Weights == nil {
		return nil
	}
	if len(s.Weights) != len(s.Values) {
		return fmt.Errorf("%w: %s has length %d, %s has length %d",
			ErrInvalidArgument, weights, len(s.Weights), values, len(s.Values))
	}
	if i := wmath.FirstNonFinite(s.Weights); i >= 0 {
		return fmt.Errorf("%w: %s[%d] is %v", ErrInvalidArgument, weights, i, s.Weights[i])
	}
	if i := wmath.FirstNegative(s.Weights); i >= 0 {
		return fmt.Errorf("%w: %s[%d] is negative (%v)", ErrInvalidArgument, weights, i, s.Weights[i])
	}
	total := floats.Sum(s.Weights)
	if total <= 0 || math.IsInf(total, 0) {
		return fmt.Errorf("%w: %s must have a positive finite sum, got %v", ErrInvalidArgument, weights, total)
	}
	return nil
}

// sortedSample is a validated sample with values in ascending order and,
// when weighted, the running weight sum in that order.
type sortedSample struct {
	values []float64

	// cumWeights[k] is the total weight of values[:k]; nil when unweighted.
	cumWeights []float64
}

// sorted copies s and sorts it. The caller must have validated s.
func (s Sample) sorted() sortedSample {
	values := append([]float64(nil), s.Values...)
	if s.Weights == nil {
		stat.SortWeighted(values, nil)
		return sortedSample{values: values}
	}

	weights := append([]float64(nil), s.Weights...)
	stat.SortWeighted(values, weights)
	return sortedSample{
		values:     values,
		cumWeights: wmath.CumSumFromZero(weights),
	}
}

// cdf evaluates the empirical CDF at each point, writing into dst.
// ranks is scratch space of len(points).
func (s sortedSample) cdf(points []float64, ranks []int, dst []float64) []float64 {
	ranks = wmath.SearchSortedRightEach(s.values, points, ranks)

	if s.cumWeights == nil {
		n := float64(len(s.values))
		for i, r := range ranks {
			dst[i] = float64(r) / n
		}
		return dst
	}

	total := s.cumWeights[len(s.cumWeights)-1]
	for i, r := range ranks {
		dst[i] = s.cumWeights[r] / total
	}
	return dst
}
