// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// An Estimator consumes a stream of scalar samples one at a time.
//
// Mean, Moments, Min, Max, Quantile, and StreamStats implement
// Estimator with pointer receivers. WeightedMean and Covariance do
// not, since their samples carry more than one value.
type Estimator interface {
	// Add updates the estimator with sample value x.
	Add(x float64)
}

// A Combiner is an estimator whose state can be merged with another
// estimator of the same type. Combine must be associative, and for
// the estimators in this package it is also commutative up to
// floating-point rounding. The zero value of the estimator is the
// identity of Combine.
//
// Quantile does not implement Combiner because the P² marker state
// has no merge algebra; Histogram does not either because merging
// histograms can fail (its Combine returns an error).
type Combiner[E any] interface {
	// Combine updates the estimator as if every sample added to
	// other had been added to it.
	Combine(other E)
}

// Reduce folds the shard estimators into out and returns out. It is a
// convenience for the partition/accumulate/merge pattern: each shard
// is typically filled by its own goroutine before Reduce is called.
func Reduce[E Combiner[E]](out E, shards ...E) E {
	for _, s := range shards {
		out.Combine(s)
	}
	return out
}
