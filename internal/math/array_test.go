package math

import (
	"math"
	"testing"
)

func TestDiff(t *testing.T) {
	got := Diff([]float64{0, 1, 1, 3.5})
	expected := []float64{1, 0, 2.5}

	if len(got) != len(expected) {
		t.Fatalf("Expected %d gaps, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Gap %d: expected %f, got %f", i, expected[i], got[i])
		}
	}

	if n := len(Diff([]float64{7})); n != 0 {
		t.Errorf("Single element should have no gaps, got %d", n)
	}
}

func TestMerge(t *testing.T) {
	got := Merge([]float64{0, 2, 2, 5}, []float64{-1, 2, 6})
	expected := []float64{-1, 0, 2, 2, 2, 5, 6}

	if len(got) != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Index %d: expected %f, got %f", i, expected[i], got[i])
		}
	}
}

func TestSearchSortedRight(t *testing.T) {
	sorted := []float64{0, 1, 1, 1, 4}

	tests := []struct {
		x    float64
		want int
	}{
		{-1, 0},
		{0, 1},
		{0.5, 1},
		{1, 4},
		{3.9, 4},
		{4, 5},
		{10, 5},
	}

	for _, tt := range tests {
		if got := SearchSortedRight(sorted, tt.x); got != tt.want {
			t.Errorf("SearchSortedRight(%v) = %d, expected %d", tt.x, got, tt.want)
		}
	}

	each := SearchSortedRightEach(sorted, []float64{1, 0, 4}, nil)
	if each[0] != 4 || each[1] != 1 || each[2] != 5 {
		t.Errorf("Unexpected ranks %v", each)
	}
}

func TestCumSumFromZero(t *testing.T) {
	got := CumSumFromZero([]float64{0.5, 0.25, 0.25})
	expected := []float64{0, 0.5, 0.75, 1}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Index %d: expected %f, got %f", i, expected[i], got[i])
		}
	}
}

func TestFiniteChecks(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Error("NaN and -Inf should not be finite")
	}
	if i := FirstNonFinite([]float64{0, 1, math.Inf(1), math.NaN()}); i != 2 {
		t.Errorf("Expected first non-finite at 2, got %d", i)
	}
	if i := FirstNonFinite([]float64{0, 1}); i != -1 {
		t.Errorf("Expected -1, got %d", i)
	}
	if i := FirstNegative([]float64{0, 3, -0.1}); i != 2 {
		t.Errorf("Expected first negative at 2, got %d", i)
	}
}

func BenchmarkSearchSortedRightEach(b *testing.B) {
	sorted := make([]float64, 1000)
	for i := range sorted {
		sorted[i] = float64(i)
	}
	queries := make([]float64, 2000)
	for i := range queries {
		queries[i] = float64(i) / 2
	}
	dst := make([]int, len(queries))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SearchSortedRightEach(sorted, queries, dst)
	}
}
