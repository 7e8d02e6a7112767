// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// renderer writes plot artifacts into a fixed output directory, each one in
// every format listed in plotFormats.
type renderer struct {
	outDir string
}

var plotFormats = []string{"svg", "png"}

func (r renderer) save(p *plot.Plot, base string) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return err
	}
	for _, ext := range plotFormats {
		name := filepath.Join(r.outDir, base+"."+ext)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
			return err
		}
	}
	return nil
}

// scatter3D projects the (states, transitions, seconds) point cloud onto the
// grid plane, encoding the duration as glyph color.
func (r renderer) scatter3D(d Dataset, base string) error {
	xys := make(plotter.XYs, len(d))
	minSec, maxSec := math.Inf(1), math.Inf(-1)
	for i, m := range d {
		xys[i].X = float64(m.States)
		xys[i].Y = float64(m.Transitions)
		minSec = math.Min(minSec, m.Seconds)
		maxSec = math.Max(maxSec, m.Seconds)
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(minSec)
	if maxSec > minSec {
		cm.SetMax(maxSec)
	} else {
		// A flat dataset still needs a nonempty color range.
		cm.SetMax(minSec + 1)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cm.At(d[i].Seconds)
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}

	p := plot.New()
	p.Title.Text = "bisimilarity wall-clock time"
	p.X.Label.Text = "number of states"
	p.Y.Label.Text = "number of transitions"
	p.Add(sc)
	return r.save(p, base)
}

// line2D plots duration against whichever coordinate the slice leaves free.
// The y axis is clamped at zero for readability; durations are never
// negative.
func (r renderer) line2D(slice Dataset, x func(Measurement) float64, base, xLabel string) error {
	xys := make(plotter.XYs, len(slice))
	for i, m := range slice {
		xys[i].X = x(m)
		xys[i].Y = m.Seconds
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "time in seconds"
	p.Add(line, points)
	p.Y.Min = 0
	return r.save(p, base)
}

// lineSpec names one 2D cross-section artifact.
type lineSpec struct {
	name  string
	slice Dataset
	x     func(Measurement) float64
	label string
}

// slicePlots enumerates the nine standard cross-sections: each coordinate
// fixed at its low, high and half-of-high grid values, plus the 1:1, 2:1 and
// 1:2 states-to-transitions ratios. The half-of-high position can fall
// between grid lines for odd step counts and then yields an empty slice;
// snapping it would silently relabel the cross-section, so it is left alone.
func slicePlots(d Dataset, b Bounds) []lineSpec {
	xStates := func(m Measurement) float64 { return float64(m.States) }
	xTransitions := func(m Measurement) float64 { return float64(m.Transitions) }

	return []lineSpec{
		{"states_low", byTransitions(d, b.MinTransitions), xStates,
			fmt.Sprintf("number of states (%d transitions)", b.MinTransitions)},
		{"states_high", byTransitions(d, b.MaxTransitions), xStates,
			fmt.Sprintf("number of states (%d transitions)", b.MaxTransitions)},
		{"states_med", byTransitions(d, b.MaxTransitions/2), xStates,
			fmt.Sprintf("number of states (%d transitions)", b.MaxTransitions/2)},
		{"transitions_low", byStates(d, b.MinStates), xTransitions,
			fmt.Sprintf("number of transitions (%d states)", b.MinStates)},
		{"transitions_high", byStates(d, b.MaxStates), xTransitions,
			fmt.Sprintf("number of transitions (%d states)", b.MaxStates)},
		{"transitions_med", byStates(d, b.MaxStates/2), xTransitions,
			fmt.Sprintf("number of transitions (%d states)", b.MaxStates/2)},
		{"1to1", byRatio(d, 1, 1), xStates,
			"number of states (1:1 states to transitions)"},
		{"2to1", byRatio(d, 2, 1), xStates,
			"number of states (2:1 states to transitions)"},
		{"1to2", byRatio(d, 1, 2), xStates,
			"number of states (1:2 states to transitions)"},
	}
}

// renderAll writes the 3D scatter and, unless show is set, the nine 2D
// cross-sections followed by the growth-trend report on reportW.
func renderAll(d Dataset, r renderer, show bool, reportW io.Writer) error {
	b, err := d.Bounds()
	if err != nil {
		return err
	}

	if err := r.scatter3D(d, "bench3d"); err != nil {
		return fmt.Errorf("plot bench3d: %w", err)
	}
	if show {
		return nil
	}

	specs := slicePlots(d, b)
	trends := make([]trend, 0, len(specs))
	for _, ls := range specs {
		if len(ls.slice) == 0 {
			log.Printf("skipping %s: empty slice", ls.name)
			trends = append(trends, fitTrend(ls.name, ls.slice, ls.x))
			continue
		}
		if err := r.line2D(ls.slice, ls.x, ls.name, ls.label); err != nil {
			return fmt.Errorf("plot %s: %w", ls.name, err)
		}
		trends = append(trends, fitTrend(ls.name, ls.slice, ls.x))
	}
	writeReport(trends, reportW)
	return nil
}
