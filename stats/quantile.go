// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the base error for rejected inputs: an empty
// sample, a fraction outside [0, 1], or an unknown quantile method.
// Errors returned by the quantile functions wrap it, so callers can
// test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	errEmptySample = fmt.Errorf("%w: empty sample", ErrInvalidInput)
)

// A QuantileMethod selects the plotting-position convention used to
// assign empirical fractions to the order statistics of a sample.
// The conventions are mutually exclusive rankings of the same sorted
// batch; they agree at the median but differ in the tails.
type QuantileMethod int

const (
	// MethodLinear assigns the i-th smallest of n values
	// (1-indexed) the fraction (i-1)/(n-1) and interpolates
	// linearly between order statistics. This is the R-7
	// convention, the default in R, NumPy, and Prometheus.
	// Fractions 0 and 1 map exactly to the minimum and maximum,
	// so no boundary policy is involved.
	MethodLinear QuantileMethod = iota

	// MethodCleveland assigns the i-th smallest of n values the
	// fraction (i-0.5)/n, Cleveland's midpoint rule. Fractions
	// below 0.5/n or above (n-0.5)/n clamp to the extreme value.
	MethodCleveland

	// MethodWeibull assigns the i-th smallest of n values the
	// fraction i/(n+1), the R-6 convention. Fractions outside
	// the assigned range clamp to the extreme value.
	MethodWeibull
)

var methodNames = map[QuantileMethod]string{
	MethodLinear:    "linear",
	MethodCleveland: "cleveland",
	MethodWeibull:   "weibull",
}

func (m QuantileMethod) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("QuantileMethod(%d)", int(m))
}

// ParseQuantileMethod returns the QuantileMethod named by s.
func ParseQuantileMethod(s string) (QuantileMethod, error) {
	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown quantile method %q", ErrInvalidInput, s)
}

// position returns the empirical fraction the method assigns to the
// 0-indexed order statistic i of an n-value sample.
func (m QuantileMethod) position(i, n int) float64 {
	switch m {
	case MethodCleveland:
		return (float64(i) + 0.5) / float64(n)
	case MethodWeibull:
		return float64(i+1) / float64(n+1)
	default:
		if n == 1 {
			return 0.5
		}
		return float64(i) / float64(n-1)
	}
}

// rank inverts position: it returns the continuous 0-indexed rank at
// which fraction f falls for an n-value sample. The result may lie
// outside [0, n-1] when f is beyond the extreme empirical fractions.
func (m QuantileMethod) rank(f float64, n int) float64 {
	switch m {
	case MethodCleveland:
		return f*float64(n) - 0.5
	case MethodWeibull:
		return f*float64(n+1) - 1
	default:
		return f * float64(n-1)
	}
}

func (m QuantileMethod) valid() bool {
	_, ok := methodNames[m]
	return ok
}

// A ValueFraction pairs a sample value with its assigned empirical
// fraction.
type ValueFraction struct {
	Value float64

	// F is the empirical fraction in [0, 1] assigned to Value by
	// the plotting-position rule.
	F float64
}

// EmpiricalFractions returns the values of s in ascending order,
// each paired with the empirical fraction assigned by method. For a
// sample of n values, the i-th smallest (1-indexed) receives
// fraction (i-0.5)/n under MethodCleveland, and correspondingly for
// the other methods. Equal values keep distinct consecutive
// fractions. s is not modified.
func EmpiricalFractions(s *Sample, method QuantileMethod) ([]ValueFraction, error) {
	if len(s.Xs) == 0 {
		return nil, errEmptySample
	}
	if !method.valid() {
		return nil, fmt.Errorf("%w: unknown quantile method %d", ErrInvalidInput, int(method))
	}
	xs := s.sorted()
	vfs := make([]ValueFraction, len(xs))
	for i, x := range xs {
		vfs[i] = ValueFraction{Value: x, F: method.position(i, len(xs))}
	}
	return vfs, nil
}

// Quantile returns the f-quantile of s under the given
// plotting-position method. If f falls exactly on an empirical
// fraction, the corresponding order statistic is returned; otherwise
// the two bracketing order statistics are interpolated linearly. If
// f falls below the smallest or above the largest empirical
// fraction, the result clamps to the extreme value, so the result is
// always within [min, max]. A single-value sample maps every
// fraction to that value. s is not modified.
//
// Quantile fails with an error wrapping ErrInvalidInput if s is
// empty, f is outside [0, 1], or method is unknown.
func Quantile(s *Sample, f float64, method QuantileMethod) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, errEmptySample
	}
	if !method.valid() {
		return 0, fmt.Errorf("%w: unknown quantile method %d", ErrInvalidInput, int(method))
	}
	if !(0 <= f && f <= 1) {
		return 0, fmt.Errorf("%w: fraction %v outside [0, 1]", ErrInvalidInput, f)
	}
	return quantileSorted(s.sorted(), f, method), nil
}

// Quantiles is the vectorized form of Quantile. It returns one value
// per requested fraction, in request order, sorting s only once.
func Quantiles(s *Sample, fs []float64, method QuantileMethod) ([]float64, error) {
	if len(s.Xs) == 0 {
		return nil, errEmptySample
	}
	if !method.valid() {
		return nil, fmt.Errorf("%w: unknown quantile method %d", ErrInvalidInput, int(method))
	}
	xs := s.sorted()
	out := make([]float64, len(fs))
	for i, f := range fs {
		if !(0 <= f && f <= 1) {
			return nil, fmt.Errorf("%w: fraction %v outside [0, 1]", ErrInvalidInput, f)
		}
		out[i] = quantileSorted(xs, f, method)
	}
	return out, nil
}

func quantileSorted(xs []float64, f float64, method QuantileMethod) float64 {
	n := len(xs)
	if n == 1 {
		return xs[0]
	}
	h := method.rank(f, n)
	if h <= 0 {
		return xs[0]
	}
	if h >= float64(n-1) {
		return xs[n-1]
	}
	lo := int(math.Floor(h))
	w := h - float64(lo)
	return xs[lo]*(1-w) + xs[lo+1]*w
}

// Median returns the 0.5-quantile of s under MethodLinear.
func Median(s *Sample) (float64, error) {
	return Quantile(s, 0.5, MethodLinear)
}

// IQR returns the interquartile range of s, the span between its
// 0.25- and 0.75-quantiles under the given method.
func IQR(s *Sample, method QuantileMethod) (float64, error) {
	qs, err := Quantiles(s, []float64{0.25, 0.75}, method)
	if err != nil {
		return 0, err
	}
	return qs[1] - qs[0], nil
}
