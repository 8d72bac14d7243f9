// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedMeanUnitWeights(t *testing.T) {
	xs := normSamples(500, 4, 2, 10)
	var w WeightedMean
	var m Moments
	for _, x := range xs {
		w.Add(x, 1)
		m.Add(x)
	}
	require.Equal(t, float64(len(xs)), w.Weight())
	require.InDelta(t, m.Mean(), w.Mean(), 1e-12)
	require.InDelta(t, m.Variance(), w.Variance(), 1e-10)
	require.InDelta(t, m.SampleVariance(), w.SampleVariance(), 1e-10)
}

func TestWeightedMeanFrequency(t *testing.T) {
	// A sample with weight w must be equivalent to w unit-weight
	// samples of the same value.
	var w, u WeightedMean
	w.Add(2, 3)
	w.Add(5, 1)
	w.Add(-1, 2)
	for _, x := range []float64{2, 2, 2, 5, -1, -1} {
		u.Add(x, 1)
	}
	require.InDelta(t, u.Mean(), w.Mean(), 1e-12)
	require.InDelta(t, u.Variance(), w.Variance(), 1e-12)
	require.InDelta(t, u.SampleVariance(), w.SampleVariance(), 1e-12)
}

func TestWeightedMeanCombine(t *testing.T) {
	xs := normSamples(800, 0, 1, 11)
	weight := func(i int) float64 { return 0.5 + float64(i%7) }

	var whole WeightedMean
	for i, x := range xs {
		whole.Add(x, weight(i))
	}
	for _, split := range []int{0, 1, 400, 800} {
		var a, b WeightedMean
		for i, x := range xs[:split] {
			a.Add(x, weight(i))
		}
		for i, x := range xs[split:] {
			b.Add(x, weight(split+i))
		}
		a.Combine(&b)
		require.InDelta(t, whole.Weight(), a.Weight(), 1e-9, "split %d", split)
		require.InDelta(t, whole.Mean(), a.Mean(), 1e-10, "split %d", split)
		require.InDelta(t, whole.Variance(), a.Variance(), 1e-9, "split %d", split)
	}
}

func TestWeightedMeanInsufficientData(t *testing.T) {
	var w WeightedMean
	require.True(t, math.IsNaN(w.Mean()))
	require.True(t, math.IsNaN(w.Variance()))
	w.Add(3, 1)
	require.Equal(t, 3.0, w.Mean())
	require.True(t, math.IsNaN(w.SampleVariance()), "sample variance needs total weight > 1")
}

func TestWeightedMeanBadWeight(t *testing.T) {
	var w WeightedMean
	require.Panics(t, func() { w.Add(1, 0) })
	require.Panics(t, func() { w.Add(1, -2) })
	require.Panics(t, func() { w.Add(1, math.NaN()) })
}
