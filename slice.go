// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// The slicing helpers cut cross-sections out of a dataset. Each returns a
// fresh Dataset in the parent's order; the input is never modified.

// byStates keeps the measurements taken at exactly the given state count.
func byStates(d Dataset, states int) Dataset {
	var out Dataset
	for _, m := range d {
		if m.States == states {
			out = append(out, m)
		}
	}
	return out
}

// byTransitions keeps the measurements taken at exactly the given transition
// count.
func byTransitions(d Dataset, transitions int) Dataset {
	var out Dataset
	for _, m := range d {
		if m.Transitions == transitions {
			out = append(out, m)
		}
	}
	return out
}

// byRatio keeps the measurements whose states:transitions ratio is exactly
// num:den. Cross-multiplied integer comparison; both coordinates are
// integers and the ratio is rational, so floating-point division would only
// invite spurious mismatches.
func byRatio(d Dataset, num, den int) Dataset {
	var out Dataset
	for _, m := range d {
		if m.States*den == m.Transitions*num {
			out = append(out, m)
		}
	}
	return out
}
