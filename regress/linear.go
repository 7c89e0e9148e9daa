// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/fredrikwermeling/Visualize-sub000/statmath"
)

// A Result holds an ordinary least-squares fit. MeanX and Sxx are
// retained so callers can reconstruct pointwise prediction bands (see
// BandSE) without reaching back into the fit.
type Result struct {
	Slope, Intercept float64
	R2               float64
	ResidualSE       float64
	SlopeSE          float64
	InterceptSE      float64
	DF               int // n − 2
	MeanX            float64
	Sxx              float64 // Σ(x−meanX)²
	N                int
}

// Linear fits y = intercept + slope·x by ordinary least squares.
func Linear(x, y []float64) (*Result, error) {
	const op = "linear regression"
	if err := checkXY(op, x, y); err != nil {
		return nil, err
	}

	meanX := stat.Mean(x, nil)
	var sxx float64
	for _, v := range x {
		d := v - meanX
		sxx += d * d
	}
	if sxx == 0 {
		return nil, &statmath.InvalidParameterError{Op: op, Param: "x", Value: "zero variance"}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	n := len(x)
	df := n - 2
	var sse float64
	for i := range x {
		r := y[i] - (intercept + slope*x[i])
		sse += r * r
	}
	residualSE := math.Sqrt(sse / float64(df))

	var ssTot float64
	meanY := stat.Mean(y, nil)
	for _, v := range y {
		d := v - meanY
		ssTot += d * d
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - sse/ssTot
	}

	return &Result{
		Slope:       slope,
		Intercept:   intercept,
		R2:          r2,
		ResidualSE:  residualSE,
		SlopeSE:     residualSE / math.Sqrt(sxx),
		InterceptSE: residualSE * math.Sqrt(1/float64(n)+meanX*meanX/sxx),
		DF:          df,
		MeanX:       meanX,
		Sxx:         sxx,
		N:           n,
	}, nil
}

// BandSE returns the standard error of the fitted mean at x,
// residualSE·√(1/n + (x−meanX)²/Sxx). Multiplying by a t quantile on
// DF degrees of freedom gives a pointwise confidence band.
func (r *Result) BandSE(x float64) float64 {
	d := x - r.MeanX
	return r.ResidualSE * math.Sqrt(1/float64(r.N)+d*d/r.Sxx)
}
