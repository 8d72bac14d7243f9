// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Covariance jointly estimates the means, variances, and covariance
// of a stream of (x, y) sample pairs in O(1) space, using the same
// Welford-style recurrences as Moments applied to both coordinates
// and their cross term.
//
// The zero value of Covariance is an empty estimator ready for use.
type Covariance struct {
	n            uint64
	meanX, meanY float64
	c            float64 // sum of (x - meanX)*(y - meanY)
	m2x, m2y     float64
}

// Add updates c with the sample pair (x, y).
func (c *Covariance) Add(x, y float64) {
	c.n++
	n := float64(c.n)
	dx := x - c.meanX
	dy := y - c.meanY
	c.meanX += dx / n
	c.meanY += dy / n
	// dx is the deviation from the old X mean, (y - c.meanY) from
	// the new Y mean; the asymmetry is what makes the cross sum
	// exact.
	c.c += dx * (y - c.meanY)
	c.m2x += dx * (x - c.meanX)
	c.m2y += dy * (y - c.meanY)
}

// Combine updates c as if every sample pair added to o had been added
// to c.
func (c *Covariance) Combine(o *Covariance) {
	if o.n == 0 {
		return
	}
	if c.n == 0 {
		*c = *o
		return
	}
	na, nb := float64(c.n), float64(o.n)
	n := na + nb
	dx := o.meanX - c.meanX
	dy := o.meanY - c.meanY
	c.c += o.c + dx*dy*na*nb/n
	c.m2x += o.m2x + dx*dx*na*nb/n
	c.m2y += o.m2y + dy*dy*na*nb/n
	c.meanX += dx * nb / n
	c.meanY += dy * nb / n
	c.n += o.n
}

// Count returns the number of sample pairs observed.
func (c *Covariance) Count() uint64 { return c.n }

// MeanX returns the arithmetic mean of the x coordinates observed, or
// NaN if there are none.
func (c *Covariance) MeanX() float64 {
	if c.n == 0 {
		return nan
	}
	return c.meanX
}

// MeanY returns the arithmetic mean of the y coordinates observed, or
// NaN if there are none.
func (c *Covariance) MeanY() float64 {
	if c.n == 0 {
		return nan
	}
	return c.meanY
}

// Covariance returns the population covariance of the sample pairs
// observed, or NaN if there are none.
func (c *Covariance) Covariance() float64 {
	if c.n == 0 {
		return nan
	}
	return c.c / float64(c.n)
}

// SampleCovariance returns the sample covariance of the sample pairs
// observed, or NaN if there are fewer than two.
func (c *Covariance) SampleCovariance() float64 {
	if c.n < 2 {
		return nan
	}
	return c.c / float64(c.n-1)
}

// SampleVarianceX returns the sample variance of the x coordinates
// observed, or NaN if there are fewer than two pairs.
func (c *Covariance) SampleVarianceX() float64 {
	if c.n < 2 {
		return nan
	}
	return c.m2x / float64(c.n-1)
}

// SampleVarianceY returns the sample variance of the y coordinates
// observed, or NaN if there are fewer than two pairs.
func (c *Covariance) SampleVarianceY() float64 {
	if c.n < 2 {
		return nan
	}
	return c.m2y / float64(c.n-1)
}

// Correlation returns the Pearson correlation coefficient of the
// sample pairs observed, or NaN if there are fewer than two or if
// either coordinate has zero variance.
func (c *Covariance) Correlation() float64 {
	if c.n < 2 {
		return nan
	}
	return c.c / math.Sqrt(c.m2x*c.m2y)
}
