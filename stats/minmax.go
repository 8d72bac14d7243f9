// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Min tracks the smallest sample in a stream. The zero value of Min
// is an empty tracker ready for use.
type Min struct {
	n   uint64
	min float64
}

// Add updates m with sample value x.
func (m *Min) Add(x float64) {
	if m.n == 0 {
		m.min = x
	} else {
		// math.Min propagates NaN, per the package NaN policy.
		m.min = math.Min(m.min, x)
	}
	m.n++
}

// Combine updates m as if every sample added to o had been added to m.
func (m *Min) Combine(o *Min) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}
	m.min = math.Min(m.min, o.min)
	m.n += o.n
}

// Count returns the number of samples observed.
func (m *Min) Count() uint64 { return m.n }

// Min returns the smallest sample observed, or NaN if there are none.
func (m *Min) Min() float64 {
	if m.n == 0 {
		return nan
	}
	return m.min
}

// Max tracks the largest sample in a stream. The zero value of Max is
// an empty tracker ready for use.
type Max struct {
	n   uint64
	max float64
}

// Add updates m with sample value x.
func (m *Max) Add(x float64) {
	if m.n == 0 {
		m.max = x
	} else {
		m.max = math.Max(m.max, x)
	}
	m.n++
}

// Combine updates m as if every sample added to o had been added to m.
func (m *Max) Combine(o *Max) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}
	m.max = math.Max(m.max, o.max)
	m.n += o.n
}

// Count returns the number of samples observed.
func (m *Max) Count() uint64 { return m.n }

// Max returns the largest sample observed, or NaN if there are none.
func (m *Max) Max() float64 {
	if m.n == 0 {
		return nan
	}
	return m.max
}
