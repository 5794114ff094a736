// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Bin is one interval of a histogram. Bins are open on the right,
// except for the last bin, which is closed on both sides (the Matlab
// and NumPy convention).
type Bin struct {
	// Left and Right are the bin's bounds.
	Left, Right float64

	// Count is the number of sample values in the bin.
	Count int

	// Density is the bin's normalized height, Count/(n*width), so
	// the bins integrate to 1.
	Density float64
}

// Histogram bins s into nbins equal-width intervals spanning the
// sample's range. If nbins is <= 0, the bin count is chosen by
// Sturges' formula. A sample with no spread produces a single unit
// bin centered on the value. s is not modified.
func Histogram(s *Sample, nbins int) ([]Bin, error) {
	n := len(s.Xs)
	if n == 0 {
		return nil, errEmptySample
	}
	if nbins <= 0 {
		nbins = int(math.Ceil(math.Log2(float64(n)))) + 1
	}

	min, max := s.Bounds()
	if min == max {
		return []Bin{{Left: min - 0.5, Right: min + 0.5, Count: n, Density: 1}}, nil
	}

	width := (max - min) / float64(nbins)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Left = min + float64(i)*width
		bins[i].Right = min + float64(i+1)*width
	}
	bins[nbins-1].Right = max

	for _, x := range s.Xs {
		i := int((x - min) / width)
		// The maximum lands in the last bin, not past it.
		if i >= nbins {
			i = nbins - 1
		}
		bins[i].Count++
	}
	for i := range bins {
		bins[i].Density = float64(bins[i].Count) / (float64(n) * width)
	}
	return bins, nil
}
