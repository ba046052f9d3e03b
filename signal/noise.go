// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// noise.go - random generators: one independent draw per position.
//
// Contract:
//   - The domain values are ignored; only the domain size matters.
//   - The distribution config is validated against the registry BEFORE the
//     pass starts, so construction fails atomically.
//   - Each evaluation chunk owns its sampler and random stream. For a fixed
//     (seed, workers) pair the output is reproducible; across different
//     worker counts only the distribution is preserved.
//   - Scan order is index order (1-D) or row-major (2-D) within a chunk.

package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/udsp/dist"
	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
)

// NoiseParams configures a noise generator.
type NoiseParams struct {
	Dist dist.Config
}

// DefaultNoiseParams returns standard normal noise.
func DefaultNoiseParams() NoiseParams { return NoiseParams{Dist: dist.Normal(1)} }

// chunkSamplers binds one sampler per chunk. Samplers are created in chunk
// order by the builders, so stream assignment is deterministic.
type chunkSamplers struct {
	reg    *dist.Registry
	cfg    dist.Config
	stream func(chunk int) rand.Source
	err    error // first binding failure
}

func newChunkSamplers(method string, c config, d dist.Config) (*chunkSamplers, error) {
	if err := c.registry.Validate(d); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &chunkSamplers{reg: c.registry, cfg: d.Clone(), stream: c.streams()}, nil
}

// sampler returns the sampler for chunk. cfg was validated up front; a late
// failure is recorded in s.err and the chunk yields NaN until the pass ends.
func (s *chunkSamplers) sampler(chunk int) dist.Sampler {
	smp, err := s.reg.Sampler(s.cfg, s.stream(chunk))
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return func() float64 { return math.NaN() }
	}
	return smp
}

// -----------------------------------------------------------------------------
// Noise1D
// -----------------------------------------------------------------------------

// Noise1D is a sequence of independent draws over an axis.
type Noise1D struct {
	Signal1D
	params NoiseParams
	opts   []Option
}

// NewNoise1D draws one sample per position of x.
// Errors: dist.ErrUnknownDistribution, dist.ErrInvalidDistributionParameters.
func NewNoise1D(x *domain.Axis, p NoiseParams, opts ...Option) (*Noise1D, error) {
	cfg := newConfig(opts...)
	cs, err := newChunkSamplers("NewNoise1D", cfg, p.Dist)
	if err != nil {
		return nil, err
	}
	sig, err := make1D(x, func(x *domain.Axis) ([]float64, error) {
		y, err := matrix.BuildVectorChunked(x.Len(), func(chunk int) matrix.IndexFunc {
			draw := cs.sampler(chunk)
			return func(int) float64 { return draw() }
		}, cfg.buildOpts()...)
		if err != nil {
			return nil, err
		}
		return y, cs.err
	})
	if err != nil {
		return nil, fmt.Errorf("NewNoise1D: %w", err)
	}

	return &Noise1D{Signal1D: sig, params: NoiseParams{Dist: p.Dist.Clone()}, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Noise1D) Params() NoiseParams { return NoiseParams{Dist: g.params.Dist.Clone()} }

// Rebuild draws a new signal over the same axis with p. With WithSeed the
// draws repeat for an unchanged p; with WithSource the stream continues.
func (g *Noise1D) Rebuild(p NoiseParams) (*Noise1D, error) {
	return NewNoise1D(g.x, p, g.opts...)
}

// -----------------------------------------------------------------------------
// Noise2D
// -----------------------------------------------------------------------------

// Noise2D is a grid of independent draws.
type Noise2D struct {
	Signal2D
	params NoiseParams
	opts   []Option
}

// NewNoise2D draws one sample per point of x in row-major order.
// Errors: dist.ErrUnknownDistribution, dist.ErrInvalidDistributionParameters.
func NewNoise2D(x *domain.Grid, p NoiseParams, opts ...Option) (*Noise2D, error) {
	cfg := newConfig(opts...)
	cs, err := newChunkSamplers("NewNoise2D", cfg, p.Dist)
	if err != nil {
		return nil, err
	}
	sig, err := make2D(x, func(x *domain.Grid) (*matrix.Dense, error) {
		y, err := matrix.BuildDenseChunked(x.Rows(), x.Cols(), func(chunk int) matrix.CellFunc {
			draw := cs.sampler(chunk)
			return func(int, int) float64 { return draw() }
		}, cfg.buildOpts()...)
		if err != nil {
			return nil, err
		}
		return y, cs.err
	})
	if err != nil {
		return nil, fmt.Errorf("NewNoise2D: %w", err)
	}

	return &Noise2D{Signal2D: sig, params: NoiseParams{Dist: p.Dist.Clone()}, opts: opts}, nil
}

// Params returns the parameters the signal was built with.
func (g *Noise2D) Params() NoiseParams { return NoiseParams{Dist: g.params.Dist.Clone()} }

// Rebuild draws a new signal over the same grid with p.
func (g *Noise2D) Rebuild(p NoiseParams) (*Noise2D, error) {
	return NewNoise2D(g.x, p, g.opts...)
}
