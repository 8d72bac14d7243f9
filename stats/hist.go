// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Histogram counts stream samples in a fixed set of half-open bins
// [b[i], b[i+1]) whose boundaries are chosen at construction. Samples
// below the first boundary or at or above the last are counted in
// dedicated under and over counters rather than rejected, so the
// total count always equals the number of samples observed. Because
// the bin layout is fixed, Combine is exact: it is element-wise
// addition of the counters.
//
// A Histogram must be created with NewHistogram or
// NewLinearHistogram; the zero value is not usable.
type Histogram struct {
	b           []float64 // nbins+1 boundaries, strictly increasing
	counts      []uint64  // nbins bin counters
	under, over uint64
}

// NewHistogram returns a histogram with the given bin boundaries.
// boundaries must contain at least two values and be strictly
// increasing; NewHistogram panics otherwise. The boundaries are
// copied.
func NewHistogram(boundaries []float64) *Histogram {
	if len(boundaries) < 2 {
		panic("histogram needs at least two boundaries")
	}
	for i, b := range boundaries {
		if math.IsNaN(b) || (i > 0 && boundaries[i-1] >= b) {
			panic("histogram boundaries must be strictly increasing")
		}
	}
	b := make([]float64, len(boundaries))
	copy(b, boundaries)
	return &Histogram{b: b, counts: make([]uint64, len(b)-1)}
}

// NewLinearHistogram returns a histogram with nbins equal-width bins
// spanning [min, max). It panics if nbins < 1 or min >= max.
func NewLinearHistogram(min, max float64, nbins int) *Histogram {
	if nbins < 1 {
		panic("histogram needs at least one bin")
	}
	if !(min < max) {
		panic("histogram range is empty")
	}
	return NewHistogram(floats.Span(make([]float64, nbins+1), min, max))
}

// Add updates h with sample value x. It returns an error for NaN
// samples, which cannot be assigned a bin; infinities are counted as
// under or over.
func (h *Histogram) Add(x float64) error {
	if math.IsNaN(x) {
		return errors.New("NaN sample cannot be binned")
	}
	switch i := sort.SearchFloat64s(h.b, x); {
	case i == 0 && x < h.b[0]:
		h.under++
	case i >= len(h.b)-1 && x >= h.b[len(h.b)-1]:
		h.over++
	case x == h.b[i]:
		h.counts[i]++
	default:
		h.counts[i-1]++
	}
	return nil
}

// Combine updates h as if every sample added to o had been added to
// h. The two histograms must have identical boundaries; otherwise
// Combine returns an error and h is unchanged.
func (h *Histogram) Combine(o *Histogram) error {
	if len(h.b) != len(o.b) {
		return fmt.Errorf("cannot combine histograms with %d and %d bins", len(h.b)-1, len(o.b)-1)
	}
	for i := range h.b {
		if h.b[i] != o.b[i] {
			return fmt.Errorf("histogram boundaries differ at index %d: %v != %v", i, h.b[i], o.b[i])
		}
	}
	for i := range h.counts {
		h.counts[i] += o.counts[i]
	}
	h.under += o.under
	h.over += o.over
	return nil
}

// Boundaries returns a copy of h's bin boundaries.
func (h *Histogram) Boundaries() []float64 {
	b := make([]float64, len(h.b))
	copy(b, h.b)
	return b
}

// Counts returns the number of samples below the first boundary, a
// copy of the per-bin counts, and the number of samples at or above
// the last boundary.
func (h *Histogram) Counts() (under uint64, counts []uint64, over uint64) {
	counts = make([]uint64, len(h.counts))
	copy(counts, h.counts)
	return h.under, counts, h.over
}

// Count returns the total number of samples observed, including those
// outside the binned range.
func (h *Histogram) Count() uint64 {
	n := h.under + h.over
	for _, c := range h.counts {
		n += c
	}
	return n
}

// CDF returns the estimated fraction of samples less than or equal to
// x, interpolating linearly within the bin containing x. It returns
// NaN if no samples have been observed or if x falls outside the
// binned range, where the distribution of the under/over samples is
// unknown.
func (h *Histogram) CDF(x float64) float64 {
	total := h.Count()
	if total == 0 || math.IsNaN(x) || x < h.b[0] || x >= h.b[len(h.b)-1] {
		return nan
	}
	cum := h.under
	for i, c := range h.counts {
		if x < h.b[i+1] {
			frac := (x - h.b[i]) / (h.b[i+1] - h.b[i])
			return (float64(cum) + frac*float64(c)) / float64(total)
		}
		cum += c
	}
	panic("bin not reached")
}

// Quantile returns the estimated q'th quantile of the samples
// observed, assuming values are uniformly distributed within each
// bin. It returns NaN if no samples have been observed or if the
// target rank falls among the under/over samples, whose values are
// unknown.
func (h *Histogram) Quantile(q float64) float64 {
	total := h.Count()
	if total == 0 {
		return nan
	}
	rank := q * float64(total)
	if rank < float64(h.under) || rank > float64(total-h.over) {
		return nan
	}
	r := rank - float64(h.under)
	for i, c := range h.counts {
		cf := float64(c)
		if cf > 0 && r <= cf {
			return h.b[i] + (h.b[i+1]-h.b[i])*(r/cf)
		}
		r -= cf
	}
	return nan
}
