// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides order statistics and distribution summaries
// for batches of observations.
//
// The central operation is f-quantile computation with selectable
// plotting-position conventions (see Quantile and QuantileMethod).
// Around it, the package provides the summaries typically drawn from
// a batch during exploratory analysis: empirical CDFs, kernel
// density estimates, histogram bins, and boxplot statistics.
//
// All functions are pure: they never mutate a Sample they did not
// construct, and they are safe to call concurrently.
package stats
