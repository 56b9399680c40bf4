package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{"Empty", nil, 0.0},
		{"SingleItem", []float64{42.5}, 42.5},
		{"Symmetric", []float64{-1.0, 1.0}, 0.0},
		{"MixedSigns", []float64{-25.8, -18.8, -2.0, 0.0, 1.0, 1.8, 18.0, 25.8, 56.0, -8.0}, 4.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mean(tt.sample)
			if !ok {
				t.Fatal("Mean() absent; it is defined for every sample")
			}
			if got != tt.expected {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{"NoSpread", []float64{1.0, 1.0}, 0.0},
		{"TwoItems", []float64{1.0, 3.0}, math.Sqrt2},
		{"LargeList", []float64{-25.8, -18.8, -2.0, 0.0, 1.0, 1.8, 18.0, 25.8, 56.0, -8.0, -90.0, 90.9, 100.9}, 50.02867767334641},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StdDev(tt.sample)
			if !ok {
				t.Fatal("StdDev() absent for a non-empty sample")
			}
			if got != tt.expected {
				t.Errorf("StdDev() = %v, want %v", got, tt.expected)
			}
		})
	}

	t.Run("Empty", func(t *testing.T) {
		if _, ok := StdDev(nil); ok {
			t.Error("StdDev() of an empty sample must be absent")
		}
	})

	// The n-1 divisor is zero for a single observation; the division by
	// zero surfaces as a present NaN, not as an absent result.
	t.Run("SingleItem", func(t *testing.T) {
		got, ok := StdDev([]float64{3.5})
		if !ok {
			t.Fatal("StdDev() of a single observation must be present")
		}
		if !math.IsNaN(got) {
			t.Errorf("StdDev() of a single observation = %v, want NaN", got)
		}
	})
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{"SingleItem", []float64{5.5}, 5.5},
		{"OddCount", []float64{1.1, 3.3, 2.2, 4.4, 5.5}, 3.3},
		{"OddNegativeMiddle", []float64{-9.0, 4.0, -3.0}, -3.0},
		{"EvenLowerMiddle", []float64{0.0, 0.5, -1.0, 1.0}, 0.0},
		{"EvenNotAverage", []float64{1.0, 2.0, 3.0, 4.0}, 2.0},
		{"Obscure", []float64{18.0, -25.8, 56.0, -8.0, -90.0, 90.9, 25.8, 100.9, -56.0, -100.89, -100.9, 100.89}, -8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Median(tt.sample)
			if !ok {
				t.Fatal("Median() absent for a non-empty sample")
			}
			if got != tt.expected {
				t.Errorf("Median() = %v, want %v", got, tt.expected)
			}
		})
	}

	t.Run("Empty", func(t *testing.T) {
		if _, ok := Median(nil); ok {
			t.Error("Median() of an empty sample must be absent")
		}
	})
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	sample := []float64{9.0, 1.0, 7.0, 3.0}
	original := []float64{9.0, 1.0, 7.0, 3.0}

	if _, ok := Median(sample); !ok {
		t.Fatal("Median() absent for a non-empty sample")
	}

	for i := range sample {
		if sample[i] != original[i] {
			t.Fatalf("caller's sample mutated at index %d: got %v, want %v", i, sample[i], original[i])
		}
	}
}

func TestMedianOrderIndependent(t *testing.T) {
	permutations := [][]float64{
		{1.0, 2.0, 3.0, 4.0, 5.0},
		{5.0, 4.0, 3.0, 2.0, 1.0},
		{3.0, 1.0, 5.0, 2.0, 4.0},
		{2.0, 5.0, 1.0, 4.0, 3.0},
	}

	for _, p := range permutations {
		got, ok := Median(p)
		if !ok || got != 3.0 {
			t.Errorf("Median(%v) = %v (present=%v), want 3.0", p, got, ok)
		}
	}
}

func TestL2(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{"Empty", nil, 0.0},
		{"PythagoreanPair", []float64{-3.0, 4.0}, 5.0},
		{"SingleNegative", []float64{-7.25}, 7.25},
		{"NegativeVector", []float64{-25.0, -18.0, -2.0, -999.0}, 999.4768631639254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := L2(tt.sample)
			if !ok {
				t.Fatal("L2() absent; it is defined for every sample")
			}
			if got != tt.expected {
				t.Errorf("L2() = %v, want %v", got, tt.expected)
			}
			if got < 0 {
				t.Errorf("L2() = %v, a norm must be non-negative", got)
			}
		})
	}
}
