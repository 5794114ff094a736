// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

const invSqrt2Pi = 0.3989422804014327

// KDE is a kernel density estimate of a sample's distribution, using
// a Gaussian kernel.
//
// Sample is the only required field.
type KDE struct {
	// Sample is the batch to estimate the density of.
	Sample *Sample

	// Bandwidth is the kernel bandwidth. If it is zero, the
	// bandwidth is computed from the sample by Silverman's rule
	// of thumb.
	Bandwidth float64
}

// BandwidthSilverman returns the bandwidth given by Silverman's rule
// of thumb, 0.9 * min(stddev, IQR/1.349) * n^(-1/5). If the sample
// has no spread, it returns 1.
func BandwidthSilverman(s *Sample) float64 {
	n := len(s.Xs)
	if n == 0 {
		return 1
	}
	spread := s.StdDev()
	if iqr, err := IQR(s, MethodLinear); err == nil && iqr > 0 {
		if r := iqr / 1.349; math.IsNaN(spread) || r < spread {
			spread = r
		}
	}
	if math.IsNaN(spread) || spread <= 0 {
		return 1
	}
	return 0.9 * spread * math.Pow(float64(n), -1.0/5)
}

func (k *KDE) bandwidth() float64 {
	if k.Bandwidth != 0 {
		return k.Bandwidth
	}
	return BandwidthSilverman(k.Sample)
}

// PDF returns the estimated probability density at x. It returns 0
// for an empty sample.
func (k *KDE) PDF(x float64) float64 {
	n := len(k.Sample.Xs)
	if n == 0 {
		return 0
	}
	h := k.bandwidth()
	sum := 0.0
	for _, xi := range k.Sample.Xs {
		z := (x - xi) / h
		sum += invSqrt2Pi * math.Exp(-z*z/2)
	}
	return sum / (float64(n) * h)
}

// CDF returns the estimated cumulative density at x. It returns 0
// for an empty sample.
func (k *KDE) CDF(x float64) float64 {
	n := len(k.Sample.Xs)
	if n == 0 {
		return 0
	}
	h := k.bandwidth()
	sum := 0.0
	for _, xi := range k.Sample.Xs {
		z := (x - xi) / (h * math.Sqrt2)
		sum += 0.5 * (1 + math.Erf(z))
	}
	return sum / float64(n)
}

// Estimate samples the density estimate at n evenly spaced points.
// If min and max are both zero, the domain is the sample's bounds
// widened by three bandwidths on each side. If n is 0, it defaults
// to 200.
func (k *KDE) Estimate(min, max float64, n int) (xs, ys []float64) {
	if n == 0 {
		n = 200
	}
	if min == 0 && max == 0 {
		h := k.bandwidth()
		lo, hi := k.Sample.Bounds()
		min, max = lo-3*h, hi+3*h
	}
	xs = vec.Linspace(min, max, n)
	ys = vec.Map(k.PDF, xs)
	return xs, ys
}
