// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package posthoc

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/fredrikwermeling/Visualize-sub000/internal/qdist"
	"github.com/fredrikwermeling/Visualize-sub000/statmath"
	"github.com/fredrikwermeling/Visualize-sub000/stattest"
)

// Dunnett compares every group against the control group, producing
// k−1 comparisons instead of all pairs. Corrected p-values come from
// the equicorrelated multivariate-t distribution of the maximum
// absolute contrast.
func Dunnett(samples [][]float64, labels []string, control int) ([]Comparison, error) {
	const op = "Dunnett post-hoc"
	if err := checkLabels(op, samples, labels); err != nil {
		return nil, err
	}
	if control < 0 || control >= len(samples) {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "control index", Value: control}
	}
	av, err := stattest.OneWayANOVA(samples)
	if err != nil {
		return nil, err
	}

	k := len(samples)
	dist := qdist.Dunnett{K: k, V: float64(av.DFWithin)}
	tdist := stats.TDist{V: float64(av.DFWithin)}
	nc := float64(av.Sizes[control])

	var cs []Comparison
	for i := 0; i < k; i++ {
		if i == control {
			continue
		}
		ni := float64(av.Sizes[i])
		tstat := math.Abs(av.Means[i]-av.Means[control]) /
			math.Sqrt(av.MSWithin*(1/ni+1/nc))

		c := Comparison{
			Index1: control, Index2: i,
			Label1: labels[control], Label2: labels[i],
			P:          2 * (1 - tdist.CDF(tstat)),
			CorrectedP: 1 - dist.CDF(tstat),
		}
		c.finish()
		cs = append(cs, c)
	}
	return cs, nil
}
