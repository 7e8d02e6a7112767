// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "gonum.org/v1/gonum/stat"

// A trend is the least-squares line through one cross-section, duration
// regressed on the free coordinate. It gives a quick read on whether a slice
// grows roughly linearly and how steeply, without claiming to be a
// complexity proof.
type trend struct {
	name      string
	n         int
	slope     float64
	intercept float64
	r2        float64
}

// fitTrend fits seconds ~ slope*x + intercept over the slice. Slices with
// fewer than two points carry no trend and are reported as such.
func fitTrend(name string, slice Dataset, x func(Measurement) float64) trend {
	tr := trend{name: name, n: len(slice)}
	if len(slice) < 2 {
		return tr
	}

	xs := make([]float64, len(slice))
	ys := make([]float64, len(slice))
	for i, m := range slice {
		xs[i] = x(m)
		ys[i] = m.Seconds
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	tr.intercept = alpha
	tr.slope = beta
	tr.r2 = stat.RSquared(xs, ys, nil, alpha, beta)
	return tr
}
