// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Mean estimates the arithmetic mean of a stream of samples in O(1)
// space using Welford's incremental update, which avoids the
// catastrophic cancellation of summing and dividing.
//
// The zero value of Mean is an empty estimator ready for use.
type Mean struct {
	n    uint64
	mean float64
}

// Add updates m with sample value x.
func (m *Mean) Add(x float64) {
	m.n++
	m.mean += (x - m.mean) / float64(m.n)
}

// Combine updates m as if every sample added to o had been added to m.
func (m *Mean) Combine(o *Mean) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}
	n := m.n + o.n
	// Delta form of (n_m*mean_m + n_o*mean_o) / n. This keeps the
	// combined mean within the range of the two inputs even when
	// the products would overflow or lose precision.
	m.mean += (o.mean - m.mean) * float64(o.n) / float64(n)
	m.n = n
}

// Count returns the number of samples observed.
func (m *Mean) Count() uint64 { return m.n }

// Weight returns the number of samples observed as a float64.
func (m *Mean) Weight() float64 { return float64(m.n) }

// Mean returns the arithmetic mean of the samples observed, or NaN if
// there are none.
func (m *Mean) Mean() float64 {
	if m.n == 0 {
		return nan
	}
	return m.mean
}

// Sum returns the sum of the samples observed.
func (m *Mean) Sum() float64 {
	return m.mean * float64(m.n)
}
