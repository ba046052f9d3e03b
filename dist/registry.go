// SPDX-License-Identifier: MIT
// Package: udsp/dist
//
// registry.go - distribution name → sampling primitive.
//
// Contract:
//   - A Registry maps a name to a Kind (required/optional parameter keys plus a
//     factory). NewRegistry returns uniform, normal, lorentz and laplace.
//   - Sampler validates a Config once and binds it to a random source; every
//     call of the returned Sampler is an independent draw. Nothing is cached.
//   - Truncation is analytic where the interval's mass is representable:
//     u ~ U[F(lo), F(hi)], x = F⁻¹(u), clamped to [lo, hi]. Far tails fall
//     back to bounded rejection on the log-density.
//   - Register panics on programmer error (empty name, nil factory). Sampling
//     never panics; it returns sentinel errors.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Distribution is the sampling primitive for one configured kind.
// gonum's distuv.Uniform / Normal / Laplace satisfy it directly.
type Distribution interface {
	Rand() float64
	CDF(x float64) float64
	Quantile(p float64) float64
}

// Factory builds a Distribution from validated parameters and a random source.
// It may still reject semantically invalid values (e.g. non-positive scale).
type Factory func(p Params, src rand.Source) (Distribution, error)

// Kind describes one registered distribution.
type Kind struct {
	Required []string // keys that must be present
	Optional []string // keys that may be present
	New      Factory
}

const (
	minInverseMass = 1e-9    // smallest F(hi)-F(lo) sampled by inversion
	maxRejections  = 1 << 12 // proposal budget per truncated tail draw
)

// logDensity is implemented by kinds that expose their log-density
// (gonum's distuv types and lorentz). Truncation into far tails needs it.
type logDensity interface {
	LogProb(x float64) float64
}

// Sampler draws one sample per call.
// A Sampler is bound to its random source and is NOT goroutine-safe.
type Sampler func() float64

// Registry maps distribution names to kinds. The zero value is empty;
// use NewRegistry for the built-ins. Register is not safe for concurrent use
// with lookups; populate a registry before sharing it.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry returns a registry holding the four built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind, 4)}
	r.Register(NameUniform, uniformKind)
	r.Register(NameNormal, normalKind)
	r.Register(NameLorentz, lorentzKind)
	r.Register(NameLaplace, laplaceKind)

	return r
}

// Register adds or replaces a kind. Panics on empty name or nil factory.
func (r *Registry) Register(name string, k Kind) {
	if name == "" {
		panic("dist: Register: empty name")
	}
	if k.New == nil {
		panic("dist: Register: nil factory for " + name)
	}
	if r.kinds == nil {
		r.kinds = make(map[string]Kind)
	}
	r.kinds[name] = k
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Validate checks cfg, including the kind's own value checks, without
// drawing anything.
func (r *Registry) Validate(cfg Config) error {
	k, err := r.lookup(cfg)
	if err != nil {
		return err
	}
	if _, err = k.New(cfg.Params, NewSource(DefaultSeed)); err != nil {
		return fmt.Errorf("Validate(%s): %w", cfg.Name, err)
	}

	return nil
}

// Sampler validates cfg and returns a sampler drawing from src.
// Errors: ErrUnknownDistribution, ErrInvalidDistributionParameters.
func (r *Registry) Sampler(cfg Config, src rand.Source) (Sampler, error) {
	if src == nil {
		return nil, fmt.Errorf("Sampler(%s): nil source: %w", cfg.Name, ErrInvalidDistributionParameters)
	}
	k, err := r.lookup(cfg)
	if err != nil {
		return nil, err
	}
	d, err := k.New(cfg.Params, src)
	if err != nil {
		return nil, fmt.Errorf("Sampler(%s): %w", cfg.Name, err)
	}
	if cfg.Trunc == nil {
		return d.Rand, nil
	}

	return truncated(d, *cfg.Trunc, rand.New(src)), nil
}

// Draw is the one-shot form of Sampler.
func (r *Registry) Draw(cfg Config, src rand.Source) (float64, error) {
	s, err := r.Sampler(cfg, src)
	if err != nil {
		return 0, err
	}

	return s(), nil
}

// lookup resolves the kind and validates parameter keys, values and truncation.
func (r *Registry) lookup(cfg Config) (Kind, error) {
	k, ok := r.kinds[cfg.Name]
	if !ok {
		return Kind{}, fmt.Errorf("Sampler(%q): %w", cfg.Name, ErrUnknownDistribution)
	}
	for _, key := range k.Required {
		if _, ok := cfg.Params[key]; !ok {
			return Kind{}, fmt.Errorf("Sampler(%s): missing %q: %w", cfg.Name, key, ErrInvalidDistributionParameters)
		}
	}
	for key, v := range cfg.Params {
		if !contains(k.Required, key) && !contains(k.Optional, key) {
			return Kind{}, fmt.Errorf("Sampler(%s): unexpected %q: %w", cfg.Name, key, ErrInvalidDistributionParameters)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Kind{}, fmt.Errorf("Sampler(%s): %s=%g: %w", cfg.Name, key, v, ErrInvalidDistributionParameters)
		}
	}
	if t := cfg.Trunc; t != nil {
		if math.IsNaN(t.Lo) || math.IsNaN(t.Hi) || t.Lo >= t.Hi {
			return Kind{}, fmt.Errorf("Sampler(%s): trunc (%g,%g): %w", cfg.Name, t.Lo, t.Hi, ErrInvalidDistributionParameters)
		}
	}

	return k, nil
}

// truncated restricts d to [iv.Lo, iv.Hi].
// Intervals holding at least minInverseMass use inverse-CDF sampling. Deeper
// tails, where F(lo) and F(hi) are no longer distinguishable, switch to
// rejection under a flat envelope when d exposes LogProb; otherwise draws are
// clamped onto the interval. The result is always inside the interval.
func truncated(d Distribution, iv Interval, u *rand.Rand) Sampler {
	lo, hi := d.CDF(iv.Lo), d.CDF(iv.Hi)
	if width := hi - lo; width >= minInverseMass {
		return func() float64 {
			return iv.Clamp(d.Quantile(lo + u.Float64()*width))
		}
	}

	ld, ok := d.(logDensity)
	span := iv.Hi - iv.Lo
	if ok && !math.IsInf(span, 0) {
		// Built-in kinds are unimodal around their median, so the density
		// peaks on the interval at the point nearest to it.
		peak := ld.LogProb(iv.Clamp(d.Quantile(0.5)))
		if !math.IsInf(peak, 0) && !math.IsNaN(peak) {
			return rejection(ld, peak, iv, u)
		}
	}

	return func() float64 { return iv.Clamp(d.Rand()) }
}

// rejection draws x ~ U[lo, hi] and accepts with probability p(x)/p(peak).
// After maxRejections proposals the last one is returned.
func rejection(ld logDensity, peak float64, iv Interval, u *rand.Rand) Sampler {
	span := iv.Hi - iv.Lo

	return func() float64 {
		var x float64
		for i := 0; i < maxRejections; i++ {
			x = iv.Lo + u.Float64()*span
			if math.Log(u.Float64()) <= ld.LogProb(x)-peak {
				break
			}
		}
		return iv.Clamp(x)
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
