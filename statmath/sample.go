// Copyright 2025 The Visualize Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statmath provides sample containers, descriptive statistics,
// and the shared helpers (midranks, typed errors, significance labels)
// used by the rest of the analysis engine.
//
// All functions are pure: they read their arguments, allocate their
// results, and touch no shared state. Degenerate inputs fail fast with
// one of the typed errors in this package rather than producing NaN
// statistics.
package statmath

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a group's observations. The values keep their input
// order, so a Sample can participate in paired tests; order statistics
// sort a copy internally.
type Sample struct {
	// Values are the observations as passed to NewSample.
	Values []float64
}

// NewSample constructs a Sample, rejecting empty input and non-finite
// values. The slice is copied; mutating the argument afterward does not
// affect the Sample.
func NewSample(values []float64) (*Sample, error) {
	if len(values) == 0 {
		return nil, &InsufficientDataError{Op: "sample", What: "observations", Need: 1, Got: 0}
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidParameterError{Op: "sample", Param: "values", Value: v}
		}
	}
	return &Sample{Values: append([]float64(nil), values...)}, nil
}

func (s *Sample) stats() stats.Sample {
	return stats.Sample{Xs: s.Values}
}

// N returns the number of observations.
func (s *Sample) N() int { return len(s.Values) }

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 { return s.stats().Mean() }

// Median returns the 0.5 quantile.
func (s *Sample) Median() float64 { return s.stats().Quantile(0.5) }

// Variance returns the sample variance (n−1 denominator).
func (s *Sample) Variance() float64 { return s.stats().Variance() }

// StdDev returns the sample standard deviation (n−1 denominator).
func (s *Sample) StdDev() float64 { return s.stats().StdDev() }

// StdErr returns the standard error of the mean, StdDev/√n.
func (s *Sample) StdErr() float64 {
	return s.StdDev() / math.Sqrt(float64(len(s.Values)))
}

// Quantile returns the p'th quantile, interpolating between
// observations as go-moremath's stats.Sample does. p outside [0,1] is
// clamped to the extreme observations.
func (s *Sample) Quantile(p float64) float64 {
	return s.stats().Quantile(p)
}
