// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "errors"

var (
	errDurationFormat   = errors.New("unrecognized duration format")
	errNoTiming         = errors.New("no \"took <duration>\" in comparator output")
	errGeneration       = errors.New("lts generation failed")
	errInvocation       = errors.New("comparator invocation failed")
	errDatasetFormat    = errors.New("malformed dataset file")
	errEmptyDataset     = errors.New("dataset is empty")
	errUnknownAlgorithm = errors.New("unknown algorithm")
	errBadGrid          = errors.New("step width and step count must be positive")
)
