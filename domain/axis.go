// SPDX-License-Identifier: MIT
// Package: udsp/domain
//
// axis.go - 1-D sample positions.
//
// Contract:
//   - NewAxis(length, sfreq) samples [start, start+length) at sfreq samples per
//     unit: N = round(length*sfreq), x[n] = start + n/sfreq.
//   - An Axis is immutable after construction; Values returns a copy.

package domain

import (
	"fmt"
	"math"
)

// Axis is an ordered, read-only sequence of scalar sample positions.
type Axis struct {
	x     []float64
	sfreq float64
	units string
}

// NewAxis builds a uniformly sampled axis covering length units at sfreq
// samples per unit. length == 0 yields an empty axis.
// Errors: ErrBadDomain for negative/non-finite length or non-positive sfreq.
// Complexity: O(N).
func NewAxis(length, sfreq float64, opts ...AxisOption) (*Axis, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return nil, fmt.Errorf("NewAxis: length %g: %w", length, ErrBadDomain)
	}
	if math.IsNaN(sfreq) || math.IsInf(sfreq, 0) || sfreq <= 0 {
		return nil, fmt.Errorf("NewAxis: sfreq %g: %w", sfreq, ErrBadDomain)
	}
	cfg := newAxisConfig(opts...)

	n := int(math.Round(length * sfreq))
	x := make([]float64, n)
	for i := range x {
		x[i] = cfg.start + float64(i)/sfreq
	}

	return &Axis{x: x, sfreq: sfreq, units: cfg.units}, nil
}

// NewAxisFromValues wraps explicit sample positions (copied).
// The sampling frequency is reported as 0 because spacing may be irregular.
func NewAxisFromValues(x []float64, opts ...AxisOption) (*Axis, error) {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewAxisFromValues: x[%d]=%g: %w", i, v, ErrBadDomain)
		}
	}
	cfg := newAxisConfig(opts...)
	cp := make([]float64, len(x))
	copy(cp, x)

	return &Axis{x: cp, units: cfg.units}, nil
}

// Len returns the number of samples N.
func (a *Axis) Len() int { return len(a.x) }

// At returns the position of sample n. Callers must keep 0 ≤ n < Len().
func (a *Axis) At(n int) float64 { return a.x[n] }

// SampleRate returns the sampling frequency (0 for irregular axes).
func (a *Axis) SampleRate() float64 { return a.sfreq }

// Units returns the axis units label (e.g. "s").
func (a *Axis) Units() string { return a.units }

// Values returns a copy of all sample positions.
func (a *Axis) Values() []float64 {
	out := make([]float64, len(a.x))
	copy(out, a.x)
	return out
}
