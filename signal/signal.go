// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// signal.go - the sampled signal values and the single generation pass.
//
// Contract:
//   - A generator builds its Signal1D / Signal2D exactly once, inside its
//     constructor, by running its evaluator over the whole domain.
//   - The result is frozen: accessors return copies, there are no setters.
//   - On any error no signal is returned.

package signal

import (
	"fmt"

	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
)

// evaluator1D is the generation callback of a 1-D generator: (domain) → sequence.
type evaluator1D func(x *domain.Axis) ([]float64, error)

// evaluator2D is the generation callback of a 2-D generator: (domain) → grid.
type evaluator2D func(x *domain.Grid) (*matrix.Dense, error)

// Signal1D is a finite sequence sampled over an Axis.
type Signal1D struct {
	x *domain.Axis
	y []float64
}

// make1D runs gen once over x and checks the result covers every sample.
func make1D(x *domain.Axis, gen evaluator1D) (Signal1D, error) {
	if x == nil {
		return Signal1D{}, ErrNilDomain
	}
	y, err := gen(x)
	if err != nil {
		return Signal1D{}, err
	}
	if len(y) != x.Len() {
		return Signal1D{}, fmt.Errorf("%d samples over %d positions: %w", len(y), x.Len(), ErrLengthMismatch)
	}

	return Signal1D{x: x, y: y}, nil
}

// Domain returns the axis the signal was sampled over.
func (s *Signal1D) Domain() *domain.Axis { return s.x }

// Len returns the number of samples.
func (s *Signal1D) Len() int { return len(s.y) }

// At returns sample n. Callers keep 0 ≤ n < Len().
func (s *Signal1D) At(n int) float64 { return s.y[n] }

// Values returns a copy of all samples.
func (s *Signal1D) Values() []float64 {
	out := make([]float64, len(s.y))
	copy(out, s.y)
	return out
}

// Signal2D is an N×M grid sampled over a Grid.
type Signal2D struct {
	x *domain.Grid
	y *matrix.Dense
}

// make2D runs gen once over x and checks the result matches the grid shape.
func make2D(x *domain.Grid, gen evaluator2D) (Signal2D, error) {
	if x == nil {
		return Signal2D{}, ErrNilDomain
	}
	y, err := gen(x)
	if err != nil {
		return Signal2D{}, err
	}
	if y == nil || y.Rows() != x.Rows() || y.Cols() != x.Cols() {
		return Signal2D{}, fmt.Errorf("grid shape does not match %dx%d domain: %w", x.Rows(), x.Cols(), ErrLengthMismatch)
	}

	return Signal2D{x: x, y: y}, nil
}

// Domain returns the grid the signal was sampled over.
func (s *Signal2D) Domain() *domain.Grid { return s.x }

// Rows returns N.
func (s *Signal2D) Rows() int { return s.y.Rows() }

// Cols returns M.
func (s *Signal2D) Cols() int { return s.y.Cols() }

// At returns sample (n, m) or matrix.ErrIndexOutOfBounds.
func (s *Signal2D) At(n, m int) (float64, error) { return s.y.At(n, m) }

// Dense returns a copy of the samples.
func (s *Signal2D) Dense() *matrix.Dense { return s.y.Clone() }
