// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"regexp"
	"strconv"
)

// The comparator reports wall-clock time as a decimal magnitude glued to a
// unit suffix, e.g. "12.5ms" or "981ns". The alternation lists multi-rune
// suffixes before "s" so that "ms" never matches as an "s" with leftovers.
// The microsecond suffix is U+00B5, the byte sequence Go's time package
// emits.
var durationRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ns|µs|ms|s)`)

var unitScale = map[string]float64{
	"ns": 1e-9,
	"µs": 1e-6,
	"ms": 1e-3,
	"s":  1,
}

// parseSeconds converts a duration token into seconds. The match is anchored
// at the start of the token only; text after the unit suffix is ignored,
// since the token is cut out of prose and may drag punctuation along.
func parseSeconds(token string) (float64, error) {
	m := durationRe.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", errDurationFormat, token)
	}
	mag, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errDurationFormat, token)
	}
	return mag * unitScale[m[2]], nil
}
