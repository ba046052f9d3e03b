// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// waveform2d.go - closed-form 2-D generators over a Grid of (y, x) points.
//
//	Const2D     y = k
//	Pulse2D     y = a  if |py-cy| ≤ wy/2 and |px-cx| ≤ wx/2, else 0
//	Gaussian2D  y = k·exp(-(py-uy)²/(2sy²) - (px-ux)²/(2sx²))
//
// Parameters name each axis explicitly (…Y is the vertical / row axis,
// …X the horizontal / column axis) so no positional ordering is implied.

package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
)

// gridEvaluator lifts a per-point formula into an evaluator2D.
func gridEvaluator(cfg config, f func(pt domain.Point) float64) evaluator2D {
	return func(x *domain.Grid) (*matrix.Dense, error) {
		return matrix.BuildDense(x.Rows(), x.Cols(), func(n, m int) float64 {
			return f(x.At(n, m))
		}, cfg.buildOpts()...)
	}
}

// -----------------------------------------------------------------------------
// Const2D
// -----------------------------------------------------------------------------

// Const2D is a constant signal over a grid.
type Const2D struct {
	Signal2D
	params ConstParams
	opts   []Option
}

// NewConst2D evaluates k at every point of x.
func NewConst2D(x *domain.Grid, p ConstParams, opts ...Option) (*Const2D, error) {
	if err := finite("NewConst2D", []string{"k"}, p.K); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make2D(x, gridEvaluator(cfg, func(domain.Point) float64 { return p.K }))
	if err != nil {
		return nil, fmt.Errorf("NewConst2D: %w", err)
	}

	return &Const2D{Signal2D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Const2D) Params() ConstParams { return g.params }

// Rebuild returns a new generator over the same grid with p.
func (g *Const2D) Rebuild(p ConstParams) (*Const2D, error) {
	return NewConst2D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Pulse2D
// -----------------------------------------------------------------------------

// Pulse2DParams configures a rectangular plateau.
type Pulse2DParams struct {
	CenterY, CenterX float64
	WidthY, WidthX   float64
	A                float64
}

// DefaultPulse2DParams returns a unit square of height 1 centred at the origin.
func DefaultPulse2DParams() Pulse2DParams {
	return Pulse2DParams{WidthY: 1, WidthX: 1, A: 1}
}

// Pulse2D is a rectangular plateau over a grid.
type Pulse2D struct {
	Signal2D
	params Pulse2DParams
	opts   []Option
}

// NewPulse2D evaluates the plateau at every point of x. Edges on both axes
// belong to the plateau.
func NewPulse2D(x *domain.Grid, p Pulse2DParams, opts ...Option) (*Pulse2D, error) {
	if err := finite("NewPulse2D", []string{"xo_y", "xo_x", "w_y", "w_x", "a"},
		p.CenterY, p.CenterX, p.WidthY, p.WidthX, p.A); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make2D(x, gridEvaluator(cfg, func(pt domain.Point) float64 {
		if inBand(pt.Y(), p.CenterY, p.WidthY) && inBand(pt.X(), p.CenterX, p.WidthX) {
			return p.A
		}
		return 0
	}))
	if err != nil {
		return nil, fmt.Errorf("NewPulse2D: %w", err)
	}

	return &Pulse2D{Signal2D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Pulse2D) Params() Pulse2DParams { return g.params }

// Rebuild returns a new generator over the same grid with p.
func (g *Pulse2D) Rebuild(p Pulse2DParams) (*Pulse2D, error) {
	return NewPulse2D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Gaussian2D
// -----------------------------------------------------------------------------

// Gaussian2DParams configures a separable 2-D Gaussian.
type Gaussian2DParams struct {
	MeanY, MeanX   float64
	SigmaY, SigmaX float64 // both non-zero
	K              float64
}

// DefaultGaussian2DParams returns a unit Gaussian centred at the origin.
func DefaultGaussian2DParams() Gaussian2DParams {
	return Gaussian2DParams{SigmaY: 1, SigmaX: 1, K: 1}
}

// Gaussian2D is a separable Gaussian over a grid.
type Gaussian2D struct {
	Signal2D
	params Gaussian2DParams
	opts   []Option
}

// NewGaussian2D evaluates the Gaussian at every point of x.
func NewGaussian2D(x *domain.Grid, p Gaussian2DParams, opts ...Option) (*Gaussian2D, error) {
	if err := finite("NewGaussian2D", []string{"u_y", "u_x", "s_y", "s_x", "k"},
		p.MeanY, p.MeanX, p.SigmaY, p.SigmaX, p.K); err != nil {
		return nil, err
	}
	if p.SigmaY == 0 || p.SigmaX == 0 {
		return nil, fmt.Errorf("NewGaussian2D: s=(%g,%g): %w", p.SigmaY, p.SigmaX, ErrInvalidParameters)
	}
	cfg := newConfig(opts...)
	sig, err := make2D(x, gridEvaluator(cfg, func(pt domain.Point) float64 {
		return p.K * math.Exp(-gaussTerm(pt.Y(), p.MeanY, p.SigmaY)-gaussTerm(pt.X(), p.MeanX, p.SigmaX))
	}))
	if err != nil {
		return nil, fmt.Errorf("NewGaussian2D: %w", err)
	}

	return &Gaussian2D{Signal2D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Gaussian2D) Params() Gaussian2DParams { return g.params }

// Rebuild returns a new generator over the same grid with p.
func (g *Gaussian2D) Rebuild(p Gaussian2DParams) (*Gaussian2D, error) {
	return NewGaussian2D(g.x, p, g.opts...)
}
