// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posthoc

import (
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

// FriedmanPairwise follows up a Friedman test with Wilcoxon
// signed-rank tests on every pair of matched groups, Bonferroni
// corrected by the k(k−1)/2 comparison count.
func FriedmanPairwise(samples [][]float64, labels []string) ([]Comparison, error) {
	const op = "Friedman post-hoc"
	k := len(samples)
	if k < 2 {
		return nil, &statmath.InsufficientDataError{Op: op, What: "groups", Need: 2, Got: k}
	}
	if err := checkLabels(op, samples, labels); err != nil {
		return nil, err
	}
	for _, s := range samples[1:] {
		if len(s) != len(samples[0]) {
			return nil, &statmath.UnequalSampleSizeError{Op: op, N1: len(samples[0]), N2: len(s)}
		}
	}

	m := float64(k * (k - 1) / 2)
	var cs []Comparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r, err := stattest.WilcoxonSignedRank(samples[i], samples[j])
			if err != nil {
				return nil, err
			}
			c := Comparison{
				Index1: i, Index2: j,
				Label1: labels[i], Label2: labels[j],
				P:          r.P,
				CorrectedP: r.P * m,
			}
			c.finish()
			cs = append(cs, c)
		}
	}
	return cs, nil
}
