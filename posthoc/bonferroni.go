// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posthoc

// Bonferroni runs unpaired Welch t-tests on all k(k−1)/2 pairs and
// multiplies each raw p-value by the number of comparisons.
func Bonferroni(samples [][]float64, labels []string) ([]Comparison, error) {
	cs, err := rawPairwise("Bonferroni post-hoc", samples, labels)
	if err != nil {
		return nil, err
	}
	raw := make([]float64, len(cs))
	for i := range cs {
		raw[i] = cs[i].P
	}
	adj := AdjustBonferroni(raw)
	for i := range cs {
		cs[i].CorrectedP = adj[i]
		cs[i].finish()
	}
	return cs, nil
}

// HolmBonferroni runs unpaired Welch t-tests on all pairs and applies
// the Holm step-down correction.
func HolmBonferroni(samples [][]float64, labels []string) ([]Comparison, error) {
	cs, err := rawPairwise("Holm-Bonferroni post-hoc", samples, labels)
	if err != nil {
		return nil, err
	}
	raw := make([]float64, len(cs))
	for i := range cs {
		raw[i] = cs[i].P
	}
	adj := AdjustHolm(raw)
	for i := range cs {
		cs[i].CorrectedP = adj[i]
		cs[i].finish()
	}
	return cs, nil
}
