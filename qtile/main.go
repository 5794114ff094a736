// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// qtile reads numbers on stdin and prints the requested f-quantiles,
// one per line, in request order.
//
// For example,
//
//	$ seq 1 100 | qtile -q 0.25,0.5,0.75
//	25.75
//	50.5
//	75.25
//
// With -csv, stdin is parsed as CSV and the batch is taken from the
// named column.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eda-tools/batchstats/numio"
	"github.com/eda-tools/batchstats/stats"
)

func main() {
	qFlag := flag.String("q", "0.25,0.5,0.75", "comma-separated `fractions` in [0,1]")
	methodFlag := flag.String("method", "linear", "quantile `method`: linear, cleveland, or weibull")
	csvFlag := flag.String("csv", "", "read stdin as CSV and use `column`")
	flag.Parse()

	method, err := stats.ParseQuantileMethod(*methodFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var fs []float64
	for _, part := range strings.Split(*qFlag, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad fraction %q: %v\n", part, err)
			os.Exit(2)
		}
		fs = append(fs, f)
	}

	var xs []float64
	if *csvFlag != "" {
		xs, err = numio.ReadCSVColumn(os.Stdin, *csvFlag)
	} else {
		xs, err = numio.ReadValues(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	qs, err := stats.Quantiles(&stats.Sample{Xs: xs}, fs, method)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, q := range qs {
		fmt.Printf("%g\n", q)
	}
}
