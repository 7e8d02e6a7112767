// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds every knob of the harness. What used to be process-wide
// constants in earlier incarnations (the transient artifact name, the output
// directory) is carried as explicit values here, so a future parallel sweep
// only has to hand each worker its own artifact path.
type Config struct {
	Bin      string `json:"bin"`
	Width    int    `json:"step_width"`
	Steps    int    `json:"steps"`
	Algo     string `json:"algo"`
	Actions  int    `json:"actions"`
	DataFile string `json:"data_file"`
	OutDir   string `json:"out_dir"`
	LTSFile  string `json:"lts_file"`
}

func defaultConfig() Config {
	return Config{
		Bin:      "./target/release/ccs",
		Width:    100000,
		Steps:    10,
		Algo:     string(AlgoNaive),
		Actions:  1,
		DataFile: "benchmark.json",
		OutDir:   "figures",
		LTSFile:  filepath.Join(os.TempDir(), "benchmark.ccs"),
	}
}

// loadConfig overlays a HuJSON config file (comments and trailing commas
// allowed) onto the defaults. An empty path returns the defaults untouched.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %v", path, err)
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %v", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 1 || c.Steps < 1 {
		return errBadGrid
	}
	switch Algorithm(c.Algo) {
	case AlgoNaive, AlgoPaigeTarjan:
	default:
		return fmt.Errorf("%w: %q", errUnknownAlgorithm, c.Algo)
	}
	return nil
}
