// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "testing"

func TestFormatPValue(t *testing.T) {
	check := func(p float64, want string) {
		t.Helper()
		if got := FormatPValue(p); got != want {
			t.Errorf("for %v, got %s, want %s", p, got, want)
		}
	}
	check(0.5, "0.5000")
	check(0.0492, "0.0492")
	check(0.001, "0.0010")
	check(0.0009, "9.00e-04")
	check(1.23e-7, "1.23e-07")
	check(1, "1.0000")
}

func TestSignificanceLabel(t *testing.T) {
	check := func(p float64, want string) {
		t.Helper()
		if got := SignificanceLabel(p); got != want {
			t.Errorf("for %v, got %s, want %s", p, got, want)
		}
	}
	check(1, "ns")
	check(0.05, "ns")
	check(0.049, "*")
	check(0.01, "*")
	check(0.0099, "**")
	check(0.001, "**")
	check(0.0009, "***")
	check(0, "***")
}
