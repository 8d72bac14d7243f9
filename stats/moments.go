// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Moments estimates the mean and the second through fourth central
// moments of a stream of samples in O(1) space, giving variance,
// skewness, and excess kurtosis. The per-sample update is the
// single-pass higher-moment generalization of Welford's recurrence;
// Combine uses the pairwise update of Chan, Golub, and LeVeque so
// that independently accumulated partitions compose exactly (up to
// rounding).
//
// The zero value of Moments is an empty estimator ready for use.
//
// Precision degrades for extremely long streams and for streams whose
// values are nearly constant relative to their magnitude: m3 and m4
// are small differences of large products in those regimes. This is
// inherent to single-pass accumulation and is not corrected for.
type Moments struct {
	n                uint64
	mean, m2, m3, m4 float64
}

// Add updates m with sample value x.
func (m *Moments) Add(x float64) {
	n1 := float64(m.n)
	m.n++
	n := float64(m.n)

	delta := x - m.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1

	// m4 and m3 must be updated before m2: each recurrence uses
	// the previous values of the lower moments.
	m.mean += deltaN
	m.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
	m.m3 += term1*deltaN*(n-2) - 3*deltaN*m.m2
	m.m2 += term1
}

// Combine updates m as if every sample added to o had been added to m.
func (m *Moments) Combine(o *Moments) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}

	na, nb := float64(m.n), float64(o.n)
	n := na + nb
	delta := o.mean - m.mean
	delta2 := delta * delta

	m.m4 += o.m4 +
		delta2*delta2*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*delta2*(na*na*o.m2+nb*nb*m.m2)/(n*n) +
		4*delta*(na*o.m3-nb*m.m3)/n
	m.m3 += o.m3 +
		delta*delta2*na*nb*(na-nb)/(n*n) +
		3*delta*(na*o.m2-nb*m.m2)/n
	m.m2 += o.m2 + delta2*na*nb/n
	m.mean += delta * nb / n
	m.n += o.n
}

// Count returns the number of samples observed.
func (m *Moments) Count() uint64 { return m.n }

// Weight returns the number of samples observed as a float64.
func (m *Moments) Weight() float64 { return float64(m.n) }

// Mean returns the arithmetic mean of the samples observed, or NaN if
// there are none.
func (m *Moments) Mean() float64 {
	if m.n == 0 {
		return nan
	}
	return m.mean
}

// Variance returns the population variance of the samples observed,
// or NaN if there are none.
func (m *Moments) Variance() float64 {
	if m.n == 0 {
		return nan
	}
	return m.m2 / float64(m.n)
}

// SampleVariance returns the sample variance of the samples observed
// (Bessel's correction), or NaN if there are fewer than two.
func (m *Moments) SampleVariance() float64 {
	if m.n < 2 {
		return nan
	}
	return m.m2 / float64(m.n-1)
}

// StdDev returns the sample standard deviation of the samples
// observed, or NaN if there are fewer than two.
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.SampleVariance())
}

// Skewness returns the population skewness of the samples observed,
// or NaN if there are fewer than three or if they have zero variance.
func (m *Moments) Skewness() float64 {
	if m.n < 3 {
		return nan
	}
	return math.Sqrt(float64(m.n)) * m.m3 / math.Pow(m.m2, 1.5)
}

// Kurtosis returns the population excess kurtosis of the samples
// observed, or NaN if there are fewer than four or if they have zero
// variance.
func (m *Moments) Kurtosis() float64 {
	if m.n < 4 {
		return nan
	}
	return float64(m.n)*m.m4/(m.m2*m.m2) - 3
}
