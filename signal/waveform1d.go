// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// waveform1d.go - closed-form 1-D generators.
//
//	Const1D     y = k
//	Pulse1D     y = a  if xo-w/2 ≤ x ≤ xo+w/2, else 0   (closed on both ends)
//	Gaussian1D  y = k·exp(-(x-u)²/(2s²))
//	Sinewave1D  y = a·sin(2πfx + p)
//	Logistic1D  y = a/(1 + exp(-k(x-xo)))
//
// Contract:
//   - Parameters are an immutable struct captured at construction.
//   - The evaluation pass runs once inside New*; Rebuild(p) is the only way
//     to regenerate and it returns a NEW generator over the same axis.
//   - Evaluators are pure; WithWorkers only changes how the pass is scheduled.

package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
)

// -----------------------------------------------------------------------------
// Shared helpers
// -----------------------------------------------------------------------------

// axisEvaluator lifts a per-position formula into an evaluator1D.
func axisEvaluator(cfg config, f func(x float64) float64) evaluator1D {
	return func(x *domain.Axis) ([]float64, error) {
		return matrix.BuildVector(x.Len(), func(n int) float64 {
			return f(x.At(n))
		}, cfg.buildOpts()...)
	}
}

// finite reports an error naming the first NaN/Inf parameter.
func finite(method string, names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s=%g: %w", method, names[i], v, ErrInvalidParameters)
		}
	}
	return nil
}

// inBand reports lo ≤ v ≤ hi for lo = c-w/2, hi = c+w/2.
func inBand(v, c, w float64) bool {
	return c-w/2 <= v && v <= c+w/2
}

// -----------------------------------------------------------------------------
// Const1D
// -----------------------------------------------------------------------------

// ConstParams configures a constant signal.
type ConstParams struct {
	K float64 // value at every position
}

// DefaultConstParams returns K=0.
func DefaultConstParams() ConstParams { return ConstParams{} }

// Const1D is a constant signal over an axis.
type Const1D struct {
	Signal1D
	params ConstParams
	opts   []Option
}

// NewConst1D evaluates k at every position of x.
func NewConst1D(x *domain.Axis, p ConstParams, opts ...Option) (*Const1D, error) {
	if err := finite("NewConst1D", []string{"k"}, p.K); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make1D(x, axisEvaluator(cfg, func(float64) float64 { return p.K }))
	if err != nil {
		return nil, fmt.Errorf("NewConst1D: %w", err)
	}

	return &Const1D{Signal1D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Const1D) Params() ConstParams { return g.params }

// Rebuild returns a new generator over the same axis with p.
func (g *Const1D) Rebuild(p ConstParams) (*Const1D, error) {
	return NewConst1D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Pulse1D
// -----------------------------------------------------------------------------

// PulseParams configures a rectangular pulse.
type PulseParams struct {
	Center float64 // xo
	Width  float64 // w; a negative width yields an all-zero signal
	A      float64 // amplitude inside the pulse
}

// DefaultPulseParams returns Center=0, Width=1, A=1.
func DefaultPulseParams() PulseParams { return PulseParams{Center: 0, Width: 1, A: 1} }

// Pulse1D is a rectangular pulse over an axis.
type Pulse1D struct {
	Signal1D
	params PulseParams
	opts   []Option
}

// NewPulse1D evaluates the pulse at every position of x. Both edges belong
// to the pulse.
func NewPulse1D(x *domain.Axis, p PulseParams, opts ...Option) (*Pulse1D, error) {
	if err := finite("NewPulse1D", []string{"xo", "w", "a"}, p.Center, p.Width, p.A); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make1D(x, axisEvaluator(cfg, func(v float64) float64 {
		if inBand(v, p.Center, p.Width) {
			return p.A
		}
		return 0
	}))
	if err != nil {
		return nil, fmt.Errorf("NewPulse1D: %w", err)
	}

	return &Pulse1D{Signal1D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Pulse1D) Params() PulseParams { return g.params }

// Rebuild returns a new generator over the same axis with p.
func (g *Pulse1D) Rebuild(p PulseParams) (*Pulse1D, error) {
	return NewPulse1D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Gaussian1D
// -----------------------------------------------------------------------------

// GaussianParams configures a Gaussian bell.
type GaussianParams struct {
	Mean  float64 // u
	Sigma float64 // s, non-zero
	K     float64 // peak value at x = u
}

// DefaultGaussianParams returns Mean=0, Sigma=1, K=1.
func DefaultGaussianParams() GaussianParams { return GaussianParams{Mean: 0, Sigma: 1, K: 1} }

// Gaussian1D is a Gaussian bell over an axis.
type Gaussian1D struct {
	Signal1D
	params GaussianParams
	opts   []Option
}

// NewGaussian1D evaluates k·exp(-(x-u)²/(2s²)) at every position of x.
func NewGaussian1D(x *domain.Axis, p GaussianParams, opts ...Option) (*Gaussian1D, error) {
	if err := finite("NewGaussian1D", []string{"u", "s", "k"}, p.Mean, p.Sigma, p.K); err != nil {
		return nil, err
	}
	if p.Sigma == 0 {
		return nil, fmt.Errorf("NewGaussian1D: s=0: %w", ErrInvalidParameters)
	}
	cfg := newConfig(opts...)
	sig, err := make1D(x, axisEvaluator(cfg, func(v float64) float64 {
		return p.K * math.Exp(-gaussTerm(v, p.Mean, p.Sigma))
	}))
	if err != nil {
		return nil, fmt.Errorf("NewGaussian1D: %w", err)
	}

	return &Gaussian1D{Signal1D: sig, params: p, opts: opts}, nil
}

// gaussTerm is (v-u)²/(2s²).
func gaussTerm(v, u, s float64) float64 {
	d := v - u
	return d * d / (2 * s * s)
}

// Params returns the parameters the signal was built with.
func (g *Gaussian1D) Params() GaussianParams { return g.params }

// Rebuild returns a new generator over the same axis with p.
func (g *Gaussian1D) Rebuild(p GaussianParams) (*Gaussian1D, error) {
	return NewGaussian1D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Sinewave1D
// -----------------------------------------------------------------------------

// SinewaveParams configures a sine wave.
type SinewaveParams struct {
	A     float64 // amplitude
	Freq  float64 // f, cycles per axis unit
	Phase float64 // p, radians
}

// DefaultSinewaveParams returns A=1, Freq=1, Phase=0.
func DefaultSinewaveParams() SinewaveParams { return SinewaveParams{A: 1, Freq: 1, Phase: 0} }

// Sinewave1D is a sine wave over an axis.
type Sinewave1D struct {
	Signal1D
	params SinewaveParams
	opts   []Option
}

// NewSinewave1D evaluates a·sin(2πfx + p) at every position of x.
func NewSinewave1D(x *domain.Axis, p SinewaveParams, opts ...Option) (*Sinewave1D, error) {
	if err := finite("NewSinewave1D", []string{"a", "f", "p"}, p.A, p.Freq, p.Phase); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make1D(x, axisEvaluator(cfg, func(v float64) float64 {
		return p.A * math.Sin(2*math.Pi*p.Freq*v+p.Phase)
	}))
	if err != nil {
		return nil, fmt.Errorf("NewSinewave1D: %w", err)
	}

	return &Sinewave1D{Signal1D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Sinewave1D) Params() SinewaveParams { return g.params }

// Rebuild returns a new generator over the same axis with p.
func (g *Sinewave1D) Rebuild(p SinewaveParams) (*Sinewave1D, error) {
	return NewSinewave1D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Logistic1D
// -----------------------------------------------------------------------------

// LogisticParams configures a logistic (sigmoid) curve.
type LogisticParams struct {
	A      float64 // upper asymptote
	K      float64 // steepness
	Center float64 // xo, where y = a/2
}

// DefaultLogisticParams returns A=1, K=1, Center=0.
func DefaultLogisticParams() LogisticParams { return LogisticParams{A: 1, K: 1, Center: 0} }

// Logistic1D is a logistic curve over an axis.
type Logistic1D struct {
	Signal1D
	params LogisticParams
	opts   []Option
}

// NewLogistic1D evaluates a/(1+exp(-k(x-xo))) at every position of x.
func NewLogistic1D(x *domain.Axis, p LogisticParams, opts ...Option) (*Logistic1D, error) {
	if err := finite("NewLogistic1D", []string{"a", "k", "xo"}, p.A, p.K, p.Center); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	sig, err := make1D(x, axisEvaluator(cfg, func(v float64) float64 {
		return p.A / (1 + math.Exp(-p.K*(v-p.Center)))
	}))
	if err != nil {
		return nil, fmt.Errorf("NewLogistic1D: %w", err)
	}

	return &Logistic1D{Signal1D: sig, params: p, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Logistic1D) Params() LogisticParams { return g.params }

// Rebuild returns a new generator over the same axis with p.
func (g *Logistic1D) Rebuild(p LogisticParams) (*Logistic1D, error) {
	return NewLogistic1D(g.x, p, g.opts...)
}
