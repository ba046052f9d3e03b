// SPDX-License-Identifier: MIT
// Package: udsp/dist
//
// config.go - distribution selection values.

package dist

import "math"

// Built-in distribution names.
const (
	NameUniform = "uniform"
	NameNormal  = "normal"
	NameLorentz = "lorentz"
	NameLaplace = "laplace"
)

// Parameter keys understood by the built-in kinds.
const (
	KeyA     = "a"     // uniform lower bound
	KeyB     = "b"     // uniform upper bound
	KeySigma = "sigma" // normal standard deviation
	KeyGamma = "gamma" // lorentz (Cauchy) scale
	KeyLambd = "lambd" // laplace scale
	KeyMu    = "mu"    // optional location for normal / laplace
	KeyX0    = "x0"    // optional location for lorentz
)

// Params maps parameter keys to values for one distribution.
type Params map[string]float64

// Interval is a closed range [Lo, Hi] used for truncation.
type Interval struct {
	Lo, Hi float64
}

// Clamp returns x limited to [Lo, Hi]; NaN maps to Lo.
func (iv Interval) Clamp(x float64) float64 {
	switch {
	case math.IsNaN(x), x < iv.Lo:
		return iv.Lo
	case x > iv.Hi:
		return iv.Hi
	default:
		return x
	}
}

// Contains reports whether Lo ≤ x ≤ Hi.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Config selects a distribution by name with its parameters and an optional
// truncation interval. Config is a plain value; copying it is safe but Params
// is a map, so callers should not mutate it after handing it to a generator.
type Config struct {
	Name   string
	Params Params
	Trunc  *Interval
}

// WithTrunc returns a copy of c truncated to [lo, hi].
func (c Config) WithTrunc(lo, hi float64) Config {
	c.Trunc = &Interval{Lo: lo, Hi: hi}
	return c
}

// Clone returns a deep copy of c (params map and interval).
func (c Config) Clone() Config {
	out := Config{Name: c.Name}
	if c.Params != nil {
		out.Params = make(Params, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	if c.Trunc != nil {
		iv := *c.Trunc
		out.Trunc = &iv
	}

	return out
}

// Uniform selects U[a, b].
func Uniform(a, b float64) Config {
	return Config{Name: NameUniform, Params: Params{KeyA: a, KeyB: b}}
}

// Normal selects N(0, sigma²).
func Normal(sigma float64) Config {
	return Config{Name: NameNormal, Params: Params{KeySigma: sigma}}
}

// Lorentz selects the Cauchy–Lorentz distribution with scale gamma, centered at 0.
func Lorentz(gamma float64) Config {
	return Config{Name: NameLorentz, Params: Params{KeyGamma: gamma}}
}

// Laplace selects the Laplace distribution with scale lambd, centered at 0.
func Laplace(lambd float64) Config {
	return Config{Name: NameLaplace, Params: Params{KeyLambd: lambd}}
}
