// Package math provides float64 array utilities for the distance engine.
package math

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first NaN or infinite entry of s,
// or -1 if every entry is finite.
func FirstNonFinite(s []float64) int {
	for i, v := range s {
		if !IsFinite(v) {
			return i
		}
	}
	return -1
}

// FirstNegative returns the index of the first entry of s below zero,
// or -1 if there is none.
func FirstNegative(s []float64) int {
	for i, v := range s {
		if v < 0 {
			return i
		}
	}
	return -1
}

// Diff returns the successive differences s[i+1] - s[i].
// The result has len(s)-1 entries; it is empty when len(s) < 2.
func Diff(s []float64) []float64 {
	if len(s) < 2 {
		return []float64{}
	}
	return floats.SubTo(make([]float64, len(s)-1), s[1:], s[:len(s)-1])
}

// Merge merges two ascending slices into a new ascending slice.
func Merge(a, b []float64) []float64 {
	dst := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			dst = append(dst, b[j])
			j++
		} else {
			dst = append(dst, a[i])
			i++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// SearchSortedRight returns the number of entries of the ascending slice
// sorted that are less than or equal to x.
// Ties resolve to the right of any run of equal values.
func SearchSortedRight(sorted []float64, x float64) int {
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i] > x
	})
}

// SearchSortedRightEach computes SearchSortedRight for every query in xs.
// If dst is nil a new slice is allocated, otherwise it must have len(xs).
func SearchSortedRightEach(sorted, xs []float64, dst []int) []int {
	if dst == nil {
		dst = make([]int, len(xs))
	}
	if len(dst) != len(xs) {
		panic("math: slice length mismatch")
	}
	for i, x := range xs {
		dst[i] = SearchSortedRight(sorted, x)
	}
	return dst
}

// CumSumFromZero returns the running sum of s with a leading zero,
// so that out[k] is the sum of the first k entries.
func CumSumFromZero(s []float64) []float64 {
	out := make([]float64, len(s)+1)
	if len(s) > 0 {
		floats.CumSum(out[1:], s)
	}
	return out
}
