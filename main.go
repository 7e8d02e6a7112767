// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ccs-bench measures the wall-clock cost of the ccs bisimilarity checker
// over a grid of random LTS sizes and renders the results.
//
// Usage:
//
//	ccs-bench [options] sweep
//	ccs-bench [options] render
//
// The sweep command asks the ccs binary for one random LTS per grid cell,
// times the bisimilarity comparison on it, and writes the collected
// (states, transitions, seconds) triples to the dataset file. States and
// transitions both range over {width, 2*width, ..., steps*width}; every one
// of the steps^2 cells is measured exactly once, strictly one after another
// so the measurements never contend with each other.
//
// The render command reads the dataset back and writes plots into the output
// directory: a duration-colored scatter of the whole grid (bench3d) plus 2D
// cross-sections with one coordinate fixed at its low, middle and high grid
// values and along the 1:1, 2:1 and 1:2 states-to-transitions ratios, each
// as SVG and PNG. It also prints a least-squares growth trend per
// cross-section. With --show only the scatter is written.
//
// Example:
//
//	ccs-bench --bin ./target/release/ccs --width 100 --steps 10 sweep
//	ccs-bench render
//
// Options may also come from a HuJSON config file given with --config;
// explicit flags win over the file.
package main

import (
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"
)

var (
	flagConfig = flag.String("config", "", "optional HuJSON config file")
	flagBin    = flag.String("bin", defaultConfig().Bin, "path to the ccs binary")
	flagWidth  = flag.Int("width", defaultConfig().Width, "grid step width")
	flagSteps  = flag.Int("steps", defaultConfig().Steps, "grid steps per axis")
	flagAlgo   = flag.String("algo", defaultConfig().Algo, `bisimilarity algorithm {"naive", "paige-tarjan"}`)
	flagData   = flag.String("data", defaultConfig().DataFile, "dataset file")
	flagOut    = flag.String("out", defaultConfig().OutDir, "plot output directory")
	flagShow   = flag.Bool("show", false, "render only the 3D view")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ccs-bench [options] sweep|render\n")
	fmt.Fprintf(os.Stderr, "measures and plots the runtime of the ccs bisimilarity checker\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("ccs-bench: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(&cfg, flag.CommandLine)
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	switch flag.Arg(0) {
	case "sweep":
		err = sweepCommand(cfg)
	case "render":
		err = renderCommand(cfg, *flagShow)
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// applyFlags lays explicitly set flags over the loaded config.
func applyFlags(cfg *Config, fs *flag.FlagSet) {
	if fs.Changed("bin") {
		cfg.Bin = *flagBin
	}
	if fs.Changed("width") {
		cfg.Width = *flagWidth
	}
	if fs.Changed("steps") {
		cfg.Steps = *flagSteps
	}
	if fs.Changed("algo") {
		cfg.Algo = *flagAlgo
	}
	if fs.Changed("data") {
		cfg.DataFile = *flagData
	}
	if fs.Changed("out") {
		cfg.OutDir = *flagOut
	}
}

func sweepCommand(cfg Config) error {
	log.Printf("benchmarking %s with %d steps of width %d", cfg.Bin, cfg.Steps, cfg.Width)

	runner := &ccsRunner{bin: cfg.Bin, ltsPath: cfg.LTSFile, actions: cfg.Actions}
	d, err := runSweep(SweepSpec{Width: cfg.Width, Steps: cfg.Steps}, Algorithm(cfg.Algo), runner)
	if err != nil {
		return err
	}

	if err := saveDataset(cfg.DataFile, d); err != nil {
		return err
	}
	log.Printf("written data to %s", cfg.DataFile)
	return nil
}

func renderCommand(cfg Config, show bool) error {
	d, err := loadDataset(cfg.DataFile)
	if err != nil {
		return err
	}
	log.Printf("read data from %s", cfg.DataFile)
	return renderAll(d, renderer{outDir: cfg.OutDir}, show, os.Stdout)
}
