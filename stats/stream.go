// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// StreamStats tracks summary statistics for a stream of data in O(1)
// space: count, sum, extrema, mean, variance, skewness, kurtosis, and
// RMS. It is a composite of the leaf estimators in this package; Add
// fans a sample out to every member and Combine merges member-wise.
//
// StreamStats should be initialized to its zero value.
type StreamStats struct {
	moments Moments
	min     Min
	max     Max

	total         float64
	meanOfSquares float64
}

// Add updates s's statistics with sample value x.
func (s *StreamStats) Add(x float64) {
	s.moments.Add(x)
	s.min.Add(x)
	s.max.Add(x)
	s.total += x
	s.meanOfSquares += (x*x - s.meanOfSquares) / float64(s.moments.Count())
}

// Combine updates s's statistics as if all samples added to o were
// added to s.
func (s *StreamStats) Combine(o *StreamStats) {
	if o.moments.Count() == 0 {
		return
	}
	if s.moments.Count() == 0 {
		*s = *o
		return
	}
	count := s.moments.Count() + o.moments.Count()
	s.meanOfSquares += (o.meanOfSquares - s.meanOfSquares) * o.moments.Weight() / float64(count)
	s.moments.Combine(&o.moments)
	s.min.Combine(&o.min)
	s.max.Combine(&o.max)
	s.total += o.total
}

// Count returns the number of samples observed.
func (s *StreamStats) Count() uint64 { return s.moments.Count() }

// Weight returns the number of samples observed as a float64.
func (s *StreamStats) Weight() float64 { return s.moments.Weight() }

// Sum returns the sum of the samples observed.
func (s *StreamStats) Sum() float64 { return s.total }

// Min returns the smallest sample observed, or NaN if there are none.
func (s *StreamStats) Min() float64 { return s.min.Min() }

// Max returns the largest sample observed, or NaN if there are none.
func (s *StreamStats) Max() float64 { return s.max.Max() }

// Mean returns the arithmetic mean of the samples observed, or NaN if
// there are none.
func (s *StreamStats) Mean() float64 { return s.moments.Mean() }

// Variance returns the population variance of the samples observed,
// or NaN if there are none.
func (s *StreamStats) Variance() float64 { return s.moments.Variance() }

// SampleVariance returns the sample variance of the samples observed,
// or NaN if there are fewer than two.
func (s *StreamStats) SampleVariance() float64 { return s.moments.SampleVariance() }

// StdDev returns the sample standard deviation of the samples
// observed, or NaN if there are fewer than two.
func (s *StreamStats) StdDev() float64 { return s.moments.StdDev() }

// Skewness returns the population skewness of the samples observed,
// or NaN if there are fewer than three.
func (s *StreamStats) Skewness() float64 { return s.moments.Skewness() }

// Kurtosis returns the population excess kurtosis of the samples
// observed, or NaN if there are fewer than four.
func (s *StreamStats) Kurtosis() float64 { return s.moments.Kurtosis() }

// RMS returns the root mean square of the samples observed, or NaN if
// there are none.
func (s *StreamStats) RMS() float64 {
	if s.moments.Count() == 0 {
		return nan
	}
	return math.Sqrt(s.meanOfSquares)
}

func (s *StreamStats) String() string {
	return fmt.Sprintf("Count=%d Total=%g Min=%g Mean=%g RMS=%g Max=%g StdDev=%g",
		s.Count(), s.Sum(), s.Min(), s.Mean(), s.RMS(), s.Max(), s.StdDev())
}
