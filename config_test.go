// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.hujson")
	require.NoError(t, os.WriteFile(path, []byte(`{
	// smaller grid for quick local runs
	"step_width": 100,
	"steps": 3,
	"algo": "paige-tarjan", // trailing comma ahead
}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 3, cfg.Steps)
	assert.Equal(t, string(AlgoPaigeTarjan), cfg.Algo)
	// Untouched fields keep their defaults.
	assert.Equal(t, defaultConfig().Bin, cfg.Bin)
	assert.Equal(t, defaultConfig().OutDir, cfg.OutDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.hujson"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.hujson")
	require.NoError(t, os.WriteFile(path, []byte(`{"steps": }`), 0o644))
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	for _, tt := range []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, errBadGrid},
		{"negative steps", func(c *Config) { c.Steps = -1 }, errBadGrid},
		{"bogus algorithm", func(c *Config) { c.Algo = "quantum" }, errUnknownAlgorithm},
	} {
		cfg := defaultConfig()
		tt.mutate(&cfg)
		err := cfg.validate()
		require.Error(t, err, tt.name)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}
}
