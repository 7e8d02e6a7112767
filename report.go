// Copyright ©2024 The ccs-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// writeReport prints the per-slice growth trends as a column-aligned text
// table. Slices too small to fit get a "~" placeholder row.
func writeReport(trends []trend, w io.Writer) {
	table := [][]string{{"slice", "s/unit", "offset", "R^2", "points"}}
	for _, tr := range trends {
		if tr.n < 2 {
			table = append(table, []string{tr.name, "~", "~", "~", strconv.Itoa(tr.n)})
			continue
		}
		table = append(table, []string{
			tr.name,
			fmt.Sprintf("%.3e", tr.slope),
			fmt.Sprintf("%.3e", tr.intercept),
			fmt.Sprintf("%.4f", tr.r2),
			strconv.Itoa(tr.n),
		})
	}

	max := make([]int, len(table[0]))
	for _, row := range table {
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	var buf bytes.Buffer
	for _, row := range table {
		for i, s := range row {
			switch i {
			case 0:
				fmt.Fprintf(&buf, "%-*s", max[i], s)
			case len(row) - 1:
				fmt.Fprintf(&buf, "  %s", s)
			default:
				fmt.Fprintf(&buf, "  %*s", max[i], s)
			}
		}
		fmt.Fprintf(&buf, "\n")
	}
	w.Write(buf.Bytes())
}
