// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
)

// Algorithm selects which bisimilarity implementation the comparator runs.
// The names are the ccs binary's own, passed through its -a flag.
type Algorithm string

const (
	AlgoNaive       Algorithm = "naive"
	AlgoPaigeTarjan Algorithm = "paige-tarjan"
)

// tookRe locates the timing report inside the comparator's free-text output.
// This regexp is the single seam coupling the harness to that output format.
var tookRe = regexp.MustCompile(`took (\d+\.?\d*\S*)`)

// measurer yields one timed comparator run for a grid cell.
type measurer interface {
	Measure(states, transitions int, algo Algorithm) (float64, error)
}

// ccsRunner drives the external ccs binary: it generates one random LTS of
// the requested size, times the bisimilarity comparison on it, and removes
// the transient artifact again. The artifact path is fixed across calls, so
// invocations must not overlap; runSweep is strictly sequential for exactly
// that reason (and for timing fidelity).
type ccsRunner struct {
	bin     string
	ltsPath string
	actions int
}

func (r *ccsRunner) Measure(states, transitions int, algo Algorithm) (float64, error) {
	if err := r.generate(states, transitions); err != nil {
		return 0, err
	}
	defer os.Remove(r.ltsPath)

	out, err := r.compare(algo)
	if err != nil {
		return 0, err
	}
	return secondsFromOutput(out)
}

// generate asks the ccs binary for a random LTS of the given size and
// captures it in the transient artifact file. A non-zero exit status is
// fatal; parsing the comparator's output for a half-written input would only
// produce a bogus measurement.
func (r *ccsRunner) generate(states, transitions int) error {
	f, err := os.Create(r.ltsPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errGeneration, err)
	}

	cmd := exec.Command(r.bin, "random-lts",
		"-s", strconv.Itoa(states),
		"-t", strconv.Itoa(transitions),
		"-a", strconv.Itoa(r.actions))
	cmd.Stdout = f
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	if closeErr := f.Close(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		os.Remove(r.ltsPath)
		return fmt.Errorf("%w: %v", errGeneration, runErr)
	}
	return nil
}

func (r *ccsRunner) compare(algo Algorithm) (string, error) {
	cmd := exec.Command(r.bin, "bisimilarity", "-b", "-a", string(algo), r.ltsPath)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvocation, err)
	}
	return string(out), nil
}

// secondsFromOutput cuts the "took <duration>" report out of the comparator
// output and converts it to seconds. When no report is found the full output
// rides along on the error; a sweep that dies hours in should at least leave
// something to diagnose.
func secondsFromOutput(out string) (float64, error) {
	m := tookRe.FindStringSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("%w:\n%s", errNoTiming, out)
	}
	return parseSeconds(m[1])
}
