// SPDX-License-Identifier: MIT
// Package: udsp/domain
//
// grid.go - 2-D sample positions.
//
// Ordering invariant: cell (n, m) holds Point{y, x}; component 0 is the
// vertical (row) coordinate and component 1 the horizontal (column) one.
// Every 2-D evaluator reads points through Y()/X() and never by position.

package domain

import (
	"fmt"
	"math"
)

// Point is a (y, x) coordinate pair.
type Point [2]float64

// Y returns the vertical coordinate (component 0).
func (p Point) Y() float64 { return p[0] }

// X returns the horizontal coordinate (component 1).
func (p Point) X() float64 { return p[1] }

// Grid is an N×M read-only array of coordinate pairs.
type Grid struct {
	ys, xs []float64
}

// NewGrid builds the Cartesian product of two uniform axes:
// length and sfreq are given as (vertical, horizontal).
// Both resulting dimensions must be positive.
// Complexity: O(N+M) memory, points are computed on access.
func NewGrid(length, sfreq [2]float64, opts ...AxisOption) (*Grid, error) {
	ay, err := NewAxis(length[0], sfreq[0], opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGrid: vertical: %w", err)
	}
	ax, err := NewAxis(length[1], sfreq[1], opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGrid: horizontal: %w", err)
	}
	if ay.Len() == 0 || ax.Len() == 0 {
		return nil, fmt.Errorf("NewGrid: empty %dx%d: %w", ay.Len(), ax.Len(), ErrBadDomain)
	}

	return &Grid{ys: ay.x, xs: ax.x}, nil
}

// NewGridFromAxes builds a grid from explicit vertical and horizontal positions.
func NewGridFromAxes(ys, xs []float64) (*Grid, error) {
	if len(ys) == 0 || len(xs) == 0 {
		return nil, fmt.Errorf("NewGridFromAxes: empty %dx%d: %w", len(ys), len(xs), ErrBadDomain)
	}
	for _, v := range append(append([]float64(nil), ys...), xs...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewGridFromAxes: %g: %w", v, ErrBadDomain)
		}
	}

	return &Grid{ys: append([]float64(nil), ys...), xs: append([]float64(nil), xs...)}, nil
}

// Rows returns N, the number of vertical samples.
func (g *Grid) Rows() int { return len(g.ys) }

// Cols returns M, the number of horizontal samples.
func (g *Grid) Cols() int { return len(g.xs) }

// At returns the coordinate pair of cell (n, m). Callers keep indices in range.
func (g *Grid) At(n, m int) Point { return Point{g.ys[n], g.xs[m]} }
