// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
)

// A Measurement is one observed comparator run on a random LTS of the given
// size.
type Measurement struct {
	States      int
	Transitions int
	Seconds     float64
}

// A Dataset is an ordered measurement sequence. The order is the sweep
// enumeration order (states outer, transitions inner, both ascending) and is
// load-bearing: Bounds and the renderer index it positionally. Nothing may
// sort it.
type Dataset []Measurement

// A SweepSpec defines the measured grid. Both coordinates range over
// {Width, 2*Width, ..., Steps*Width}; the sweep visits the full cross
// product, Steps*Steps cells.
type SweepSpec struct {
	Width int
	Steps int
}

// Bounds are the grid corners of a canonically ordered dataset.
type Bounds struct {
	MinStates      int
	MaxStates      int
	MinTransitions int
	MaxTransitions int
}

// Bounds derives the grid corners from the first and last measurements. That
// derivation is only meaningful on a dataset in canonical sweep order; a
// dataset from any other source has no defined bounds.
func (d Dataset) Bounds() (Bounds, error) {
	if len(d) == 0 {
		return Bounds{}, errEmptyDataset
	}
	first, last := d[0], d[len(d)-1]
	return Bounds{
		MinStates:      first.States,
		MaxStates:      last.States,
		MinTransitions: first.Transitions,
		MaxTransitions: last.Transitions,
	}, nil
}

// runSweep measures every cell of the grid, one at a time. Sequential
// invocation is a correctness requirement: concurrent cells would contend
// for CPU and cache and skew the very timings being measured, and the
// runner's transient artifact path is shared. A failed cell aborts the whole
// sweep; nothing partial is returned.
func runSweep(spec SweepSpec, algo Algorithm, m measurer) (Dataset, error) {
	if spec.Width < 1 || spec.Steps < 1 {
		return nil, errBadGrid
	}

	data := make(Dataset, 0, spec.Steps*spec.Steps)
	for s := spec.Width; s <= spec.Width*spec.Steps; s += spec.Width {
		for t := spec.Width; t <= spec.Width*spec.Steps; t += spec.Width {
			secs, err := m.Measure(s, t, algo)
			if err != nil {
				return nil, fmt.Errorf("cell %dx%d: %w", s, t, err)
			}
			data = append(data, Measurement{States: s, Transitions: t, Seconds: secs})
			log.Printf("finished %dx%d", s, t)
		}
	}
	return data, nil
}
