// Package wasserstein computes the order-p Wasserstein (earth mover's)
// distance between two one-dimensional empirical distributions.
//
// Each distribution is a weighted sample of real observations. The distance
// is evaluated through the closed form that holds on the real line: the gaps
// between consecutive points of the merged support, weighted by the absolute
// difference of the two empirical CDFs over each gap.
//
// Basic usage:
//
//	d, err := wasserstein.Wasserstein(1, []float64{0, 1, 2}, nil, []float64{1, 2, 3}, nil)
//	// d == 1
package wasserstein

import (
	"fmt"
	"math"

	wmath "github.com/nozzle/wasserstein/internal/math"
)

// Wasserstein computes the order-p Wasserstein distance between the sample
// uValues and the sample vValues. Either weight slice may be nil, in which
// case the observations of that sample carry equal mass.
//
// See Distance for the exact formula and the error contract.
func Wasserstein(p float64, uValues, uWeights, vValues, vWeights []float64) (float64, error) {
	return Distance(p, NewSample(uValues, uWeights), NewSample(vValues, vWeights))
}

// Distance computes the order-p Wasserstein distance between u and v:
//
//	sum_i |U(x_i) - V(x_i)| * (x_{i+1} - x_i)^p
//
// where x is the ascending merge of both samples' values and U, V are the
// empirical CDFs of u and v. The exponent applies to the gap width only.
// For p = 1 this is the exact 1-Wasserstein distance.
//
// Errors wrap ErrInvalidArgument for invalid inputs and ErrNotFinite when the
// sum overflows. The inputs are not modified.
func Distance(p float64, u, v Sample) (float64, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: p must be positive and finite, got %v", ErrInvalidArgument, p)
	}
	if err := u.validate("u_"); err != nil {
		return 0, err
	}
	if err := v.validate("v_"); err != nil {
		return 0, err
	}

	us := u.sorted()
	vs := v.sorted()

	// Merged support and the gaps between consecutive points.
	all := wmath.Merge(us.values, vs.values)
	deltas := wmath.Diff(all)
	points := all[:len(all)-1]

	ranks := make([]int, len(points))
	uCDF := us.cdf(points, ranks, make([]float64, len(points)))
	vCDF := vs.cdf(points, ranks, make([]float64, len(points)))

	var dist float64
	for i, d := range deltas {
		// Equal CDFs carry no mass across the gap, even an infinite one.
		if uCDF[i] == vCDF[i] {
			continue
		}
		dist += math.Abs(uCDF[i]-vCDF[i]) * math.Pow(d, p)
	}

	if !wmath.IsFinite(dist) {
		return 0, fmt.Errorf("%w: got %v for p=%v", ErrNotFinite, dist, p)
	}
	return dist, nil
}
