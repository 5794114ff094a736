// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// BoxplotStats are the components of a box-and-whisker plot of a
// sample.
type BoxplotStats struct {
	// Q1, Median, and Q3 are the 0.25-, 0.5-, and 0.75-quantiles
	// of the sample under the chosen method.
	Q1, Median, Q3 float64

	// IQR is Q3 - Q1.
	IQR float64

	// WhiskerLow and WhiskerHigh are the most extreme sample
	// values within the Tukey fences [Q1-k*IQR, Q3+k*IQR].
	WhiskerLow, WhiskerHigh float64

	// Outliers are the sample values beyond the fences, in
	// ascending order.
	Outliers []float64
}

// Boxplot computes boxplot statistics for s using the given quantile
// method. k is the Tukey fence coefficient; if it is <= 0 it
// defaults to 1.5. s is not modified.
func Boxplot(s *Sample, method QuantileMethod, k float64) (*BoxplotStats, error) {
	if k <= 0 {
		k = 1.5
	}
	qs, err := Quantiles(s, []float64{0.25, 0.5, 0.75}, method)
	if err != nil {
		return nil, err
	}
	b := &BoxplotStats{
		Q1:     qs[0],
		Median: qs[1],
		Q3:     qs[2],
		IQR:    qs[2] - qs[0],
	}

	loFence := b.Q1 - k*b.IQR
	hiFence := b.Q3 + k*b.IQR
	xs := s.sorted()
	b.WhiskerLow, b.WhiskerHigh = b.Q1, b.Q3
	first := true
	for _, x := range xs {
		if x < loFence || x > hiFence {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if first {
			b.WhiskerLow = x
			first = false
		}
		b.WhiskerHigh = x
	}
	return b, nil
}
