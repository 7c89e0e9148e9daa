// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posthoc

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/fredrikwermeling/Visualize-sub000/internal/qdist"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

// TukeyHSD runs Tukey's honestly-significant-difference procedure on
// all pairs, using the Tukey-Kramer standard error for unequal group
// sizes. The raw p-value reported per pair is the unadjusted pooled
// t-test p; the corrected p comes from the studentized range
// distribution on the ANOVA error term.
func TukeyHSD(samples [][]float64, labels []string) ([]Comparison, error) {
	const op = "Tukey HSD post-hoc"
	if err := checkLabels(op, samples, labels); err != nil {
		return nil, err
	}
	av, err := stattest.OneWayANOVA(samples)
	if err != nil {
		return nil, err
	}

	k := len(samples)
	dist := qdist.StudentizedRange{K: k, V: float64(av.DFWithin)}
	tdist := stats.TDist{V: float64(av.DFWithin)}

	var cs []Comparison
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			ni, nj := float64(av.Sizes[i]), float64(av.Sizes[j])
			diff := math.Abs(av.Means[i] - av.Means[j])

			q := diff / math.Sqrt(av.MSWithin/2*(1/ni+1/nj))
			tstat := diff / math.Sqrt(av.MSWithin*(1/ni+1/nj))

			c := Comparison{
				Index1: i, Index2: j,
				Label1: labels[i], Label2: labels[j],
				P:          2 * (1 - tdist.CDF(tstat)),
				CorrectedP: 1 - dist.CDF(q),
			}
			c.finish()
			cs = append(cs, c)
		}
	}
	return cs, nil
}
