// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The worked example from Cleveland: ten values whose sorted order
// is [8 9 9 10 12 13 14 15 15 15].
var tutorialBatch = []float64{12, 9, 14, 8, 15, 15, 15, 10, 9, 13}

func newTutorialSample() *Sample {
	return &Sample{Xs: append([]float64(nil), tutorialBatch...)}
}

func TestEmpiricalFractions(t *testing.T) {
	s := newTutorialSample()
	vfs, err := EmpiricalFractions(s, MethodCleveland)
	require.NoError(t, err)
	require.Len(t, vfs, 10)

	wantValues := []float64{8, 9, 9, 10, 12, 13, 14, 15, 15, 15}
	wantFs := []float64{0.05, 0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.75, 0.85, 0.95}
	for i, vf := range vfs {
		assert.Equal(t, wantValues[i], vf.Value)
		assert.InDelta(t, wantFs[i], vf.F, 1e-12)
	}

	// The input batch is not modified.
	assert.Equal(t, tutorialBatch, s.Xs)

	// Deterministic: a second call yields identical pairs.
	vfs2, err := EmpiricalFractions(s, MethodCleveland)
	require.NoError(t, err)
	assert.Equal(t, vfs, vfs2)
}

func TestEmpiricalFractionsLinear(t *testing.T) {
	vfs, err := EmpiricalFractions(&Sample{Xs: []float64{3, 1, 2}}, MethodLinear)
	require.NoError(t, err)
	want := []ValueFraction{{1, 0}, {2, 0.5}, {3, 1}}
	assert.Equal(t, want, vfs)
}

func TestQuantile(t *testing.T) {
	s := newTutorialSample()
	for _, test := range []struct {
		method QuantileMethod
		f      float64
		want   float64
	}{
		// f=0.5 falls midway between the fractions of the
		// 5th and 6th order statistics under every method.
		{MethodLinear, 0.5, 12.5},
		{MethodCleveland, 0.5, 12.5},
		{MethodWeibull, 0.5, 12.5},

		{MethodLinear, 0.25, 9.25},
		{MethodLinear, 0.75, 14.75},
		{MethodLinear, 0, 8},
		{MethodLinear, 1, 15},

		// (i-0.5)/n puts 0.25 exactly on the 3rd order
		// statistic and 0.75 on the 8th.
		{MethodCleveland, 0.25, 9},
		{MethodCleveland, 0.75, 15},
		{MethodCleveland, 0.05, 8},
		{MethodCleveland, 0.95, 15},
		// Beyond the extreme fractions, clamp.
		{MethodCleveland, 0, 8},
		{MethodCleveland, 1, 15},
		{MethodCleveland, 0.01, 8},
		{MethodCleveland, 0.99, 15},

		{MethodWeibull, 0.25, 9},
		{MethodWeibull, 0.75, 15},
		{MethodWeibull, 0, 8},
		{MethodWeibull, 1, 15},
	} {
		got, err := Quantile(s, test.f, test.method)
		require.NoError(t, err)
		assert.InDelta(t, test.want, got, 1e-12, "method=%v f=%v", test.method, test.f)
	}
	assert.Equal(t, tutorialBatch, s.Xs, "input batch modified")
}

func TestQuantileMedian(t *testing.T) {
	odd := &Sample{Xs: []float64{5, 1, 9, 3, 7}}
	even := &Sample{Xs: []float64{4, 1, 3, 2}}
	for _, m := range []QuantileMethod{MethodLinear, MethodCleveland, MethodWeibull} {
		got, err := Quantile(odd, 0.5, m)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got, "odd n, method=%v", m)

		got, err = Quantile(even, 0.5, m)
		require.NoError(t, err)
		assert.Equal(t, 2.5, got, "even n, method=%v", m)
	}

	got, err := Median(odd)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestQuantileMonotoneInRange(t *testing.T) {
	s := newTutorialSample()
	min, max := 8.0, 15.0
	for _, m := range []QuantileMethod{MethodLinear, MethodCleveland, MethodWeibull} {
		prev, err := Quantile(s, 0, m)
		require.NoError(t, err)
		for f := 0.01; f <= 1.0; f += 0.01 {
			q, err := Quantile(s, f, m)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q, prev, "method=%v f=%v", m, f)
			assert.GreaterOrEqual(t, q, min, "method=%v f=%v", m, f)
			assert.LessOrEqual(t, q, max, "method=%v f=%v", m, f)
			prev = q
		}
	}
}

func TestQuantileSingleValue(t *testing.T) {
	s := &Sample{Xs: []float64{42}}
	for _, m := range []QuantileMethod{MethodLinear, MethodCleveland, MethodWeibull} {
		for _, f := range []float64{0, 0.1, 0.5, 0.9, 1} {
			got, err := Quantile(s, f, m)
			require.NoError(t, err)
			assert.Equal(t, 42.0, got, "method=%v f=%v", m, f)
		}
	}

	vfs, err := EmpiricalFractions(s, MethodCleveland)
	require.NoError(t, err)
	assert.Equal(t, []ValueFraction{{42, 0.5}}, vfs)
}

func TestQuantiles(t *testing.T) {
	s := newTutorialSample()
	// Results come back in request order, not sorted order.
	got, err := Quantiles(s, []float64{0.75, 0.5, 0.25}, MethodCleveland)
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 12.5, 9}, got)

	got, err = Quantiles(s, nil, MethodLinear)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuantileErrors(t *testing.T) {
	s := newTutorialSample()
	empty := &Sample{}

	_, err := Quantile(empty, 0.5, MethodLinear)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EmpiricalFractions(empty, MethodLinear)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Quantiles(empty, []float64{0.5}, MethodLinear)
	assert.ErrorIs(t, err, ErrInvalidInput)

	for _, f := range []float64{-0.1, 1.1} {
		_, err = Quantile(s, f, MethodLinear)
		assert.ErrorIs(t, err, ErrInvalidInput, "f=%v", f)

		_, err = Quantiles(s, []float64{0.5, f}, MethodLinear)
		assert.ErrorIs(t, err, ErrInvalidInput, "f=%v", f)
	}

	_, err = Quantile(s, 0.5, QuantileMethod(42))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EmpiricalFractions(s, QuantileMethod(42))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseQuantileMethod(t *testing.T) {
	for _, m := range []QuantileMethod{MethodLinear, MethodCleveland, MethodWeibull} {
		got, err := ParseQuantileMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseQuantileMethod("nearest")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestIQR(t *testing.T) {
	s := newTutorialSample()
	for _, m := range []QuantileMethod{MethodLinear, MethodCleveland, MethodWeibull} {
		iqr, err := IQR(s, m)
		require.NoError(t, err)
		q1, err := Quantile(s, 0.25, m)
		require.NoError(t, err)
		q3, err := Quantile(s, 0.75, m)
		require.NoError(t, err)
		assert.InDelta(t, q3-q1, iqr, 1e-12, "method=%v", m)
	}
}
