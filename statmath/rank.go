// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statmath

import "sort"

// Midranks returns the 1-based ranks of xs in the order the values
// were given, assigning tied values the mean of the ranks they span.
func Midranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j < len(idx) && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// Ranks i+1..j share the midrank.
		mid := float64(i+j+1) / 2
		for ; i < j; i++ {
			ranks[idx[i]] = mid
		}
	}
	return ranks
}

// TieCorrection returns Σ(t³−t) over the groups of tied values in xs.
// Rank-based tests use this sum to correct the variance of their
// statistics for ties.
func TieCorrection(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	var sum float64
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		t := float64(j - i)
		sum += t*t*t - t
		i = j
	}
	return sum
}
