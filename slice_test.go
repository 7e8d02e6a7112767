// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// grid22 is the canonical width-100, two-step sweep.
var grid22 = Dataset{
	{100, 100, 1},
	{100, 200, 2},
	{200, 100, 3},
	{200, 200, 4},
}

func TestByStates(t *testing.T) {
	got := byStates(grid22, 100)
	want := Dataset{{100, 100, 1}, {100, 200, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("byStates mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, byStates(grid22, 150))
}

func TestByTransitions(t *testing.T) {
	got := byTransitions(grid22, 100)
	want := Dataset{{100, 100, 1}, {200, 100, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("byTransitions mismatch (-want +got):\n%s", diff)
	}
}

func TestByRatio(t *testing.T) {
	for _, tt := range []struct {
		name     string
		num, den int
		want     Dataset
	}{
		{"1to1", 1, 1, Dataset{{100, 100, 1}, {200, 200, 4}}},
		// 2:1 states to transitions, i.e. states = 2*transitions.
		{"2to1", 2, 1, Dataset{{200, 100, 3}}},
		{"1to2", 1, 2, Dataset{{100, 200, 2}}},
		{"none", 3, 1, nil},
	} {
		got := byRatio(grid22, tt.num, tt.den)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: byRatio mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestSlicesPreserveOrderAndInput(t *testing.T) {
	in := Dataset{
		{300, 100, 1},
		{100, 100, 2},
		{200, 100, 3},
	}
	got := byTransitions(in, 100)
	// Input order is inherited, never sorted.
	want := Dataset{{300, 100, 1}, {100, 100, 2}, {200, 100, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order not preserved (-want +got):\n%s", diff)
	}

	got[0].Seconds = 99
	assert.Equal(t, 1.0, in[0].Seconds, "input dataset must stay untouched")
}
