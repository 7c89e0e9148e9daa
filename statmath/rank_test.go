// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMidranks(t *testing.T) {
	check := func(xs, want []float64) {
		t.Helper()
		if diff := cmp.Diff(want, Midranks(xs)); diff != "" {
			t.Errorf("for %v (-want +got):\n%s", xs, diff)
		}
	}
	check([]float64{10, 20, 30, 40, 50}, []float64{1, 2, 3, 4, 5})
	check([]float64{10, 10, 30, 40, 50}, []float64{1.5, 1.5, 3, 4, 5})
	check([]float64{50, 10, 30}, []float64{3, 1, 2})
	check([]float64{7, 7, 7}, []float64{2, 2, 2})
	check([]float64{4}, []float64{1})
	check(nil, []float64{})
}

func TestTieCorrection(t *testing.T) {
	check := func(xs []float64, want float64) {
		t.Helper()
		if got := TieCorrection(xs); got != want {
			t.Errorf("for %v, got %v, want %v", xs, got, want)
		}
	}
	check([]float64{1, 2, 3}, 0)
	check([]float64{1, 1, 3}, 6)    // one pair: 2³−2
	check([]float64{2, 2, 2}, 24)   // one triple: 3³−3
	check([]float64{1, 1, 2, 2}, 12)
	check(nil, 0)
}
