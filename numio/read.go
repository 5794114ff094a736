// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numio reads numeric batches from text and CSV input.
package numio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadValues reads whitespace-separated numbers from r, one batch
// value per field. Blank lines are skipped. It returns an error
// naming the offending line if a field does not parse as a number.
func ReadValues(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, field := range strings.Fields(line) {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineno)
			}
			xs = append(xs, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}

// ReadCSVColumn reads the named column of a CSV stream whose first
// record is a header row. Empty fields are skipped.
func ReadCSVColumn(r io.Reader, col string) ([]float64, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("missing CSV header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading CSV header")
	}

	ci := -1
	for i, name := range header {
		if strings.TrimSpace(name) == col {
			ci = i
			break
		}
	}
	if ci < 0 {
		return nil, errors.Errorf("no column %q in CSV header", col)
	}

	var xs []float64
	for rec := 2; ; rec++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", rec)
		}
		field := strings.TrimSpace(record[ci])
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d, column %q", rec, col)
		}
		xs = append(xs, x)
	}
	return xs, nil
}
