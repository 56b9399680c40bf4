// Package stats provides descriptive statistics over one-dimensional
// samples of float64 observations. Every function is pure: a single
// pass over a read-only sample, no state, no I/O. Statistics that are
// mathematically undefined for an input report that through the second
// return value instead of a numeric sentinel.
package stats

import (
	"encoding/json"
	"math"
	"strconv"
)

// StatFn is the common shape of every statistic in this package. The
// bool is false only when the statistic has no meaningful value for the
// input; it is not an error channel.
type StatFn func(sample []float64) (float64, bool)

// Summary bundles all four statistics for one sample. Absent values
// marshal as null so "no value" stays distinguishable from zero.
type Summary struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	StdDev *float64 `json:"stddev"`
	Median *float64 `json:"median"`
	L2     float64  `json:"l2"`
}

// MarshalJSON renders absent statistics as null and non-finite values
// as strings, since JSON has no encoding for NaN or the infinities.
func (s Summary) MarshalJSON() ([]byte, error) {
	type summaryJSON struct {
		Count  int         `json:"count"`
		Mean   interface{} `json:"mean"`
		StdDev interface{} `json:"stddev"`
		Median interface{} `json:"median"`
		L2     interface{} `json:"l2"`
	}

	render := func(v float64) interface{} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return v
	}
	renderOpt := func(p *float64) interface{} {
		if p == nil {
			return nil
		}
		return render(*p)
	}

	return json.Marshal(summaryJSON{
		Count:  s.Count,
		Mean:   render(s.Mean),
		StdDev: renderOpt(s.StdDev),
		Median: renderOpt(s.Median),
		L2:     render(s.L2),
	})
}

// Describe runs all four statistics over a sample.
func Describe(sample []float64) Summary {
	s := Summary{Count: len(sample)}
	s.Mean, _ = Mean(sample)
	s.L2, _ = L2(sample)
	if v, ok := StdDev(sample); ok {
		s.StdDev = &v
	}
	if v, ok := Median(sample); ok {
		s.Median = &v
	}
	return s
}
