// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "fmt"

// FormatPValue renders a p-value for display: scientific notation
// below 0.001, four decimals otherwise.
func FormatPValue(p float64) string {
	if p < 0.001 {
		return fmt.Sprintf("%.2e", p)
	}
	return fmt.Sprintf("%.4f", p)
}

// SignificanceLabel returns the conventional star marker for a
// p-value: "***" below 0.001, "**" below 0.01, "*" below 0.05, and
// "ns" otherwise. Every test in the engine uses these thresholds.
func SignificanceLabel(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	}
	return "ns"
}
