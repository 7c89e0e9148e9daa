// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regress implements correlation (Pearson, Spearman) and
// ordinary least-squares regression with the derived quantities a
// caller needs to draw confidence bands.
package regress

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A Correlation holds a correlation coefficient and its two-sided
// p-value from the t-distribution with n−2 degrees of freedom.
type Correlation struct {
	R float64 // Pearson's r, or Spearman's ρ for Spearman
	P float64
	N int
}

// Pearson computes the product-moment correlation of x and y.
func Pearson(x, y []float64) (*Correlation, error) {
	if err := checkXY("Pearson correlation", x, y); err != nil {
		return nil, err
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		// A constant input has no defined correlation.
		return nil, &statmath.InvalidParameterError{Op: "Pearson correlation", Param: "input", Value: "zero variance"}
	}
	return &Correlation{R: r, P: correlationP(r, len(x)), N: len(x)}, nil
}

// Spearman computes the rank correlation of x and y: Pearson's r over
// midranks.
func Spearman(x, y []float64) (*Correlation, error) {
	if err := checkXY("Spearman correlation", x, y); err != nil {
		return nil, err
	}
	c, err := Pearson(statmath.Midranks(x), statmath.Midranks(y))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// correlationP returns the two-sided p-value for a correlation r on n
// points.
func correlationP(r float64, n int) float64 {
	if r >= 1 || r <= -1 {
		return 0
	}
	df := float64(n - 2)
	t := math.Abs(r) * math.Sqrt(df/(1-r*r))
	return 2 * (1 - stats.TDist{V: df}.CDF(t))
}

func checkXY(op string, x, y []float64) error {
	if len(x) != len(y) {
		return &statmath.UnequalSampleSizeError{Op: op, N1: len(x), N2: len(y)}
	}
	if len(x) < 3 {
		return &statmath.InsufficientDataError{Op: op, What: "points", Need: 3, Got: len(x)}
	}
	return nil
}
