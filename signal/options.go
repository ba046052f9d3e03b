// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// options.go - functional options for every generator.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   - newConfig resolves options into an immutable config passed by value.
//
// Deterministic defaults:
//   - registry = dist.NewRegistry()  (the four built-in distributions)
//   - workers  = 1                   (sequential evaluation pass)
//   - seed     = unset               (noise draws a fresh random seed)
//   - logger   = nil                 (no logging)

package signal

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/udsp/dist"
	"github.com/katalvlaran/udsp/matrix"
)

const defaultWorkers = 1

// Option customizes generator construction.
type Option func(*config)

type config struct {
	registry *dist.Registry
	workers  int
	seed     uint64
	seeded   bool
	source   rand.Source
	logger   *slog.Logger
}

// WithSeed makes noise generation reproducible for a fixed (seed, workers) pair.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded = uint64(seed), true
		c.source = nil
	}
}

// WithSource draws noise from src. With one worker every sample comes from
// src directly; with several, per-worker streams are seeded from src.
// The source must not be used concurrently elsewhere. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("signal: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
		c.seeded = false
	}
}

// WithWorkers evaluates the domain on k goroutines (contiguous chunks).
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("signal: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithRegistry replaces the distribution registry used by noise generators.
// Panics on nil.
func WithRegistry(r *dist.Registry) Option {
	if r == nil {
		panic("signal: WithRegistry(nil)")
	}
	return func(c *config) {
		c.registry = r
	}
}

// WithLogger enables debug records for media decoding and buffer release.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("signal: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies options in order; last wins.
func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.registry == nil {
		cfg.registry = dist.NewRegistry()
	}

	return cfg
}

// buildOpts forwards the worker count to the container builders.
func (c config) buildOpts() []matrix.Option {
	return []matrix.Option{matrix.WithWorkers(c.workers)}
}

// streams returns the random source for each evaluation chunk.
// The parent seed is fixed here, before any chunk is created.
func (c config) streams() func(chunk int) rand.Source {
	if c.source != nil && c.workers == 1 {
		src := c.source
		return func(int) rand.Source { return src }
	}

	var parent uint64
	switch {
	case c.source != nil:
		parent = c.source.Uint64()
	case c.seeded:
		parent = c.seed
	default:
		parent = dist.RandomSeed()
	}

	return func(chunk int) rand.Source {
		return dist.DeriveSource(parent, uint64(chunk))
	}
}

func (c config) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
