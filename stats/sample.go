// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is a batch of observations.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is already sorted in ascending
	// order. Order statistics are cheaper on a sorted sample
	// because no copy has to be made.
	Sorted bool
}

// Sort sorts the sample in place in ascending order and returns it.
// Sorting is stable with respect to the multiset of values; the
// relative order of equal values is unspecified.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the sample that shares no state with s.
func (s *Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

// sorted returns the values of s in ascending order without
// modifying s. If s is not already sorted, it sorts a copy.
func (s *Sample) sorted() []float64 {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		return s.Xs
	}
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	sort.Float64s(xs)
	return xs
}

// Bounds returns the minimum and maximum values of the sample. If
// the sample is empty, it returns NaN, NaN.
func (s *Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return math.NaN(), math.NaN()
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the sum of the sample values.
func (s *Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s *Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	return floats.Sum(s.Xs) / float64(len(s.Xs))
}

// GeoMean returns the geometric mean of the sample. It returns NaN
// if the sample is empty or contains a non-positive value.
func (s *Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	logSum := 0.0
	for _, x := range s.Xs {
		if x <= 0 {
			return math.NaN()
		}
		logSum += math.Log(x)
	}
	return math.Exp(logSum / float64(len(s.Xs)))
}

// Variance returns the sample variance (with Bessel's correction),
// or NaN if the sample has fewer than two values.
func (s *Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return math.NaN()
	}
	mean := s.Mean()
	var ss float64
	for _, x := range s.Xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(s.Xs)-1)
}

// StdDev returns the sample standard deviation, or NaN if the sample
// has fewer than two values.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}
