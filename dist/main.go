// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers on stdin and describes their
// distribution.
//
// For example,
//
//	$ seq 1 20 | grep -v 1 | dist
//	N 9  sum 64  mean 7.11111  gmean 5.78509  std dev 5.34894  variance 28.6111
//
//	     min 2
//	   1%ile 2.08
//	   5%ile 2.4
//	  25%ile 4
//	  median 6
//	  75%ile 8
//	  95%ile 15.6
//	  99%ile 19.12
//	     max 20
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/eda-tools/batchstats/numio"
	"github.com/eda-tools/batchstats/stats"
)

func main() {
	methodFlag := flag.String("method", "linear", "quantile `method`: linear, cleveland, or weibull")
	flag.Parse()

	method, err := stats.ParseQuantileMethod(*methodFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	xs, err := numio.ReadValues(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}
	s := (&stats.Sample{Xs: xs}).Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Println()

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		q, err := stats.Quantile(s, float64(p)/100, method)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%8s %.6g\n", label, q)
	}
}
