// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/natefinch/atomic"
)

// saveDataset writes d as a JSON list of [states, transitions, seconds]
// triples, one triple per line so that reruns diff cleanly. The write is
// atomic: a crash mid-save never leaves a truncated file where a multi-hour
// sweep's results used to be.
func saveDataset(path string, d Dataset) error {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, m := range d {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		row, err := json.Marshal([]any{m.States, m.Transitions, m.Seconds})
		if err != nil {
			return err
		}
		buf.Write(row)
	}
	buf.WriteString("\n]\n")
	return atomic.WriteFile(path, &buf)
}

// loadDataset reads a dataset back in the exact order and with the exact
// values it was saved with. Coordinates must decode as integers; only the
// duration is a float.
func loadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rows [][]json.Number
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", errDatasetFormat, err)
	}

	d := make(Dataset, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3", errDatasetFormat, i, len(row))
		}
		states, err := strconv.Atoi(row[0].String())
		if err != nil {
			return nil, fmt.Errorf("%w: row %d states %q", errDatasetFormat, i, row[0])
		}
		transitions, err := strconv.Atoi(row[1].String())
		if err != nil {
			return nil, fmt.Errorf("%w: row %d transitions %q", errDatasetFormat, i, row[1])
		}
		secs, err := row[2].Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d duration %q", errDatasetFormat, i, row[2])
		}
		d = append(d, Measurement{States: states, Transitions: transitions, Seconds: secs})
	}
	return d, nil
}
