// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides streaming estimators for descriptive statistics.
//
// Each estimator ingests a stream of samples one at a time in O(1)
// space and can report derived statistics (mean, variance, skewness,
// kurtosis, extrema, quantiles) at any point. Estimators built
// independently over disjoint partitions of a stream can be combined
// with Combine into an estimator equivalent to having processed the
// concatenated stream, which makes them suitable for parallel
// reduction: partition the data, accumulate per partition, then fold
// the results together.
//
// Unless otherwise documented, the zero value of an estimator is the
// empty estimator, ready for use, and is the identity of Combine.
//
// Querying a statistic that is not yet defined (for example, sample
// variance with fewer than two samples) returns NaN. A NaN sample
// poisons the floating-point state of the estimator it is added to:
// every subsequent query returns NaN. Histogram, whose state is
// integral, rejects NaN samples with an error instead.
//
// Estimators are plain value types with no internal synchronization.
// Each instance must be owned by one goroutine at a time; the intended
// concurrent pattern is one estimator per goroutine followed by
// Combine.
package stats // import "github.com/SWW13/average/stats"

import "math"

var nan = math.NaN()
