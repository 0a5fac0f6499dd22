package wasserstein

import "errors"

var (
	// ErrInvalidArgument is returned when an input violates the contract of
	// Distance: a non-positive exponent, an empty or non-finite sample, or
	// weights that cannot be normalized.
	ErrInvalidArgument = errors.New("wasserstein: invalid argument")

	// ErrNotFinite is returned when valid inputs still produce a NaN or
	// infinite distance, e.g. when gaps between values overflow float64.
	ErrNotFinite = errors.New("wasserstein: non-finite distance")
)
