package stats

import (
	"math"
	"slices"
)

// Mean computes the arithmetic mean of a sample. The mean of an empty
// sample is a present 0.0 by convention, so the result is never absent.
func Mean(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return 0.0, true
	}

	sum := 0.0
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample)), true
}

// StdDev computes the sample standard deviation (Bessel's correction:
// squared deviations from the mean divided by n-1, then square-rooted).
// Absent for an empty sample. A single observation is not guarded: the
// n-1 divisor is zero and the result is a present IEEE-754 NaN, so
// callers that need finite values must check math.IsNaN themselves.
func StdDev(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return 0, false
	}

	mean, _ := Mean(sample)

	sum := 0.0
	for _, v := range sample {
		d := v - mean
		sum += d * d
	}
	variance := sum / float64(len(sample)-1)
	return math.Sqrt(variance), true
}

// Median finds the middle value of a sample, taking the value closer to
// the beginning of the sorted order when an even length leaves two
// candidates. Absent for an empty sample. Inputs must be free of NaN;
// ordering is undefined otherwise.
func Median(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return 0, false
	}

	// Work on a copy to avoid mutating the original
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], true
	}
	// Even length: the lower of the two central values, not their average.
	return sorted[n/2-1], true
}

// L2 computes the Euclidean norm of a sample. The norm of an empty
// sample is 0.0, so the result is never absent.
func L2(sample []float64) (float64, bool) {
	sum := 0.0
	for _, v := range sample {
		sum += v * v
	}
	return math.Sqrt(sum), true
}
