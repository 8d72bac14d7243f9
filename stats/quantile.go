// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Quantile estimates a single quantile of a stream of samples in O(1)
// space using the P² algorithm of Jain and Chlamtac (1985). The
// estimator maintains five marker heights tracking the minimum, the
// p/2, p, and (1+p)/2 quantiles, and the maximum; interior markers
// are nudged toward their desired positions by parabolic
// interpolation, falling back to linear interpolation when the
// parabola would break the ordering of the markers.
//
// Unlike the other estimators in this package, Quantile has no
// Combine: the marker state admits no merge equivalent to processing
// the concatenated stream, and an approximate merge would silently
// report a number with none of the estimator's usual accuracy. To
// parallelize quantile estimation, use Histogram, whose merge is
// exact.
//
// A Quantile must be created with NewQuantile; the zero value is not
// usable.
type Quantile struct {
	p float64

	n uint64 // samples observed

	// Marker state, live once n >= 5. Until then h[:n] is a
	// sorted buffer of the raw samples.
	h    [5]float64 // marker heights, non-decreasing
	pos  [5]float64 // actual marker positions (1-based)
	want [5]float64 // desired marker positions
	inc  [5]float64 // desired position increment per sample
}

// NewQuantile returns an estimator for the p'th quantile. It panics
// unless 0 < p < 1.
func NewQuantile(p float64) *Quantile {
	if !(0 < p && p < 1) {
		panic(fmt.Sprintf("quantile %v out of range (0, 1)", p))
	}
	return &Quantile{
		p:   p,
		inc: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

// P returns the quantile this estimator was created for.
func (q *Quantile) P() float64 { return q.p }

// Count returns the number of samples observed.
func (q *Quantile) Count() uint64 { return q.n }

// poisoned reports whether a NaN sample has been observed. A poisoned
// estimator has all marker heights NaN, which real samples and their
// interpolations can never produce.
func (q *Quantile) poisoned() bool {
	return q.n > 0 && math.IsNaN(q.h[0])
}

// Add updates q with sample value x.
func (q *Quantile) Add(x float64) {
	if math.IsNaN(x) || q.poisoned() {
		for i := range q.h {
			q.h[i] = nan
		}
		q.n++
		return
	}

	if q.n < 5 {
		// Still bootstrapping: keep the raw samples sorted.
		i := int(q.n)
		q.h[i] = x
		for j := i; j > 0 && q.h[j-1] > q.h[j]; j-- {
			q.h[j-1], q.h[j] = q.h[j], q.h[j-1]
		}
		q.n++
		if q.n == 5 {
			q.pos = [5]float64{1, 2, 3, 4, 5}
			q.want = [5]float64{1, 1 + 2*q.p, 1 + 4*q.p, 3 + 2*q.p, 5}
		}
		return
	}
	q.n++

	// Find the cell k with h[k] <= x < h[k+1], extending the
	// extreme markers if x falls outside them.
	var k int
	switch {
	case x < q.h[0]:
		q.h[0] = x
		k = 0
	case x >= q.h[4]:
		q.h[4] = x
		k = 3
	default:
		for k = 0; k < 3; k++ {
			if x < q.h[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		q.pos[i]++
	}
	for i := range q.want {
		q.want[i] += q.inc[i]
	}

	// Nudge interior markers whose actual position has drifted a
	// full step from their desired position, provided moving them
	// keeps the positions strictly ordered.
	for i := 1; i <= 3; i++ {
		d := q.want[i] - q.pos[i]
		if (d >= 1 && q.pos[i+1]-q.pos[i] > 1) || (d <= -1 && q.pos[i-1]-q.pos[i] < -1) {
			s := 1.0
			if d < 0 {
				s = -1
			}
			if h := q.parabolic(i, s); q.h[i-1] < h && h < q.h[i+1] {
				q.h[i] = h
			} else {
				q.h[i] = q.linear(i, s)
			}
			q.pos[i] += s
		}
	}
}

// parabolic returns the piecewise-parabolic (P²) prediction of marker
// i's height after moving it d (±1) positions.
func (q *Quantile) parabolic(i int, d float64) float64 {
	return q.h[i] + d/(q.pos[i+1]-q.pos[i-1])*
		((q.pos[i]-q.pos[i-1]+d)*(q.h[i+1]-q.h[i])/(q.pos[i+1]-q.pos[i])+
			(q.pos[i+1]-q.pos[i]-d)*(q.h[i]-q.h[i-1])/(q.pos[i]-q.pos[i-1]))
}

// linear returns the linear prediction of marker i's height after
// moving it d (±1) positions.
func (q *Quantile) linear(i int, d float64) float64 {
	j := i + int(d)
	return q.h[i] + d*(q.h[j]-q.h[i])/(q.pos[j]-q.pos[i])
}

// Value returns the current estimate of the p'th quantile, or NaN if
// fewer than five samples have been observed.
func (q *Quantile) Value() float64 {
	if q.n < 5 {
		return nan
	}
	return q.h[2]
}
