// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// WeightedMean estimates the weighted mean and weighted variance of a
// stream of samples in O(1) space. It generalizes Mean and the
// second-order part of Moments: adding every sample with weight 1
// reproduces the unweighted estimators exactly.
//
// Weights are interpreted as frequency weights, i.e. a sample with
// weight w counts as w observations of its value. SampleVariance is
// only meaningful under that interpretation.
//
// The zero value of WeightedMean is an empty estimator ready for use.
type WeightedMean struct {
	w    float64
	mean float64
	m2   float64
}

// Add updates m with sample value x carrying weight w. It panics if w
// is not positive (which includes NaN weights).
func (m *WeightedMean) Add(x, w float64) {
	if !(w > 0) {
		panic("weight must be positive")
	}
	w1 := m.w + w
	delta := x - m.mean
	r := delta * w / w1
	m.mean += r
	m.m2 += m.w * delta * r
	m.w = w1
}

// Combine updates m as if every sample added to o had been added to m.
func (m *WeightedMean) Combine(o *WeightedMean) {
	if o.w == 0 {
		return
	}
	if m.w == 0 {
		*m = *o
		return
	}
	w := m.w + o.w
	delta := o.mean - m.mean
	m.m2 += o.m2 + delta*delta*m.w*o.w/w
	m.mean += delta * o.w / w
	m.w = w
}

// Weight returns the sum of the weights observed.
func (m *WeightedMean) Weight() float64 { return m.w }

// Mean returns the weighted mean of the samples observed, or NaN if
// there are none.
func (m *WeightedMean) Mean() float64 {
	if m.w == 0 {
		return nan
	}
	return m.mean
}

// Variance returns the population variance of the weighted samples
// observed, or NaN if there are none.
func (m *WeightedMean) Variance() float64 {
	if m.w == 0 {
		return nan
	}
	return m.m2 / m.w
}

// SampleVariance returns the frequency-weighted sample variance of
// the samples observed, or NaN if the total weight is 1 or less.
func (m *WeightedMean) SampleVariance() float64 {
	if m.w <= 1 {
		return nan
	}
	return m.m2 / (m.w - 1)
}

// StdDev returns the frequency-weighted sample standard deviation of
// the samples observed, or NaN if the total weight is 1 or less.
func (m *WeightedMean) StdDev() float64 {
	return math.Sqrt(m.SampleVariance())
}
