// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stattest

import (
	"errors"
	"math"
	"testing"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	// Check that x and y are equal to 8 digits.
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}

func near(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}

func TestWelchTTest(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{6, 7, 8, 9, 10}

	r, err := TTest(a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(r.T, -5) {
		t.Errorf("T = %v, want -5", r.T)
	}
	if !aeq(r.DF, 8) {
		t.Errorf("DF = %v, want 8", r.DF)
	}
	// R: t.test(1:5, 6:10) gives p = 0.001052826.
	if !near(r.P, 0.001052826, 1e-6) {
		t.Errorf("P = %v, want 0.001052826", r.P)
	}
	if got := statmath.SignificanceLabel(r.P); got != "**" {
		t.Errorf("label = %s, want **", got)
	}
	if r.N1 != 5 || r.N2 != 5 {
		t.Errorf("N = %d,%d, want 5,5", r.N1, r.N2)
	}
}

func TestWelchTTestTooSmall(t *testing.T) {
	var insuff *statmath.InsufficientDataError
	_, err := TTest([]float64{1}, []float64{2, 3}, false)
	if !errors.As(err, &insuff) {
		t.Errorf("got %v, want InsufficientDataError", err)
	}
}

func TestPairedTTest(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 3, 6, 5}

	r, err := TTest(a, b, true)
	if err != nil {
		t.Fatal(err)
	}
	// Differences a−b are [-1,-2,0,-2,0]: mean -1, sd 1.
	if !near(r.T, -2.2360679, 1e-6) {
		t.Errorf("T = %v, want -2.2360679", r.T)
	}
	if !aeq(r.DF, 4) {
		t.Errorf("DF = %v, want 4", r.DF)
	}
	// R: t.test(a, b, paired=TRUE) gives p = 0.08904.
	if !near(r.P, 0.0890, 1e-3) {
		t.Errorf("P = %v, want 0.0890", r.P)
	}
}

func TestPairedTTestUnequalLength(t *testing.T) {
	var unequal *statmath.UnequalSampleSizeError
	_, err := TTest([]float64{1, 2, 3}, []float64{1, 2}, true)
	if !errors.As(err, &unequal) {
		t.Errorf("got %v, want UnequalSampleSizeError", err)
	}
}
