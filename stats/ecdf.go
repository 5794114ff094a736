// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// An ECDFPoint is one step of an empirical CDF.
type ECDFPoint struct {
	// X is a point at which the CDF changes (a distinct sample
	// value).
	X float64

	// CumDensity is the fraction of the sample that is <= X.
	CumDensity float64

	// CumCount is the number of sample values that are <= X.
	CumCount float64
}

// ECDF returns the empirical cumulative distribution function of s
// as its sequence of steps, in ascending X order with duplicate
// values collapsed into a single step. The last point always has
// CumDensity 1. s is not modified.
func ECDF(s *Sample) ([]ECDFPoint, error) {
	if len(s.Xs) == 0 {
		return nil, errEmptySample
	}
	xs := s.sorted()
	total := float64(len(xs))

	points := make([]ECDFPoint, 0, len(xs))
	cum := 0.0
	for i := 0; i < len(xs); {
		j := i
		for j < len(xs) && xs[i] == xs[j] {
			cum++
			j++
		}
		points = append(points, ECDFPoint{X: xs[i], CumDensity: cum / total, CumCount: cum})
		i = j
	}
	return points, nil
}

// CDF returns the value of the empirical CDF of s at x, the fraction
// of sample values <= x. It returns 0 for an empty sample.
func (s *Sample) CDF(x float64) float64 {
	if len(s.Xs) == 0 {
		return 0
	}
	xs := s.sorted()
	// Index of the first value > x.
	i := sort.SearchFloat64s(xs, x)
	for i < len(xs) && xs[i] == x {
		i++
	}
	return float64(i) / float64(len(xs))
}
