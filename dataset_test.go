// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetRoundTrip(t *testing.T) {
	want := Dataset{
		{100, 100, 0.0125},
		{100, 200, 981e-9},
		{200, 100, 3},
		{200, 200, 0.1 + 0.2}, // an awkward float must survive untouched
	}
	path := filepath.Join(t.TempDir(), "benchmark.json")

	require.NoError(t, saveDataset(path, want))
	got, err := loadDataset(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetRoundTripEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark.json")
	require.NoError(t, saveDataset(path, nil))
	got, err := loadDataset(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveDatasetFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark.json")
	require.NoError(t, saveDataset(path, Dataset{{100, 200, 0.0125}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// One triple per line, coordinates kept integral.
	assert.Contains(t, string(raw), "[100,200,0.0125]")
	assert.NotContains(t, string(raw), "100.0")
	assert.True(t, strings.HasPrefix(string(raw), "["), "file starts with a JSON list")
}

func TestLoadDatasetMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"not json":         "hello",
		"not a list":       `{"a": 1}`,
		"short row":        "[[100, 200]]",
		"long row":         "[[100, 200, 0.1, 4]]",
		"float states":     "[[100.5, 200, 0.1]]",
		"string duration":  `[[100, 200, "fast"]]`,
		"nested non-tuple": `[["a", "b", "c"]]`,
	} {
		path := filepath.Join(t.TempDir(), "benchmark.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := loadDataset(path)
		require.Error(t, err, "case %q", name)
		assert.ErrorIs(t, err, errDatasetFormat, "case %q", name)
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := loadDataset(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
	assert.NotErrorIs(t, err, errDatasetFormat)
}
