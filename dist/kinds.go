// SPDX-License-Identifier: MIT
// Package: udsp/dist
//
// kinds.go - built-in distribution kinds.
//
// uniform, normal and laplace delegate to gonum's distuv; lorentz (Cauchy) is
// expressed through its closed-form CDF and quantile on the same source.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

var uniformKind = Kind{
	Required: []string{KeyA, KeyB},
	New: func(p Params, src rand.Source) (Distribution, error) {
		a, b := p[KeyA], p[KeyB]
		if a > b {
			return nil, fmt.Errorf("a=%g > b=%g: %w", a, b, ErrInvalidDistributionParameters)
		}
		if a == b {
			return point(a), nil
		}
		return distuv.Uniform{Min: a, Max: b, Src: src}, nil
	},
}

var normalKind = Kind{
	Required: []string{KeySigma},
	Optional: []string{KeyMu},
	New: func(p Params, src rand.Source) (Distribution, error) {
		sigma := p[KeySigma]
		if sigma <= 0 {
			return nil, fmt.Errorf("sigma=%g: %w", sigma, ErrInvalidDistributionParameters)
		}
		return distuv.Normal{Mu: p[KeyMu], Sigma: sigma, Src: src}, nil
	},
}

var laplaceKind = Kind{
	Required: []string{KeyLambd},
	Optional: []string{KeyMu},
	New: func(p Params, src rand.Source) (Distribution, error) {
		lambd := p[KeyLambd]
		if lambd <= 0 {
			return nil, fmt.Errorf("lambd=%g: %w", lambd, ErrInvalidDistributionParameters)
		}
		return distuv.Laplace{Mu: p[KeyMu], Scale: lambd, Src: src}, nil
	},
}

var lorentzKind = Kind{
	Required: []string{KeyGamma},
	Optional: []string{KeyX0},
	New: func(p Params, src rand.Source) (Distribution, error) {
		gamma := p[KeyGamma]
		if gamma <= 0 {
			return nil, fmt.Errorf("gamma=%g: %w", gamma, ErrInvalidDistributionParameters)
		}
		return lorentz{x0: p[KeyX0], gamma: gamma, rnd: rand.New(src)}, nil
	},
}

// lorentz is the Cauchy–Lorentz distribution with location x0 and scale gamma.
type lorentz struct {
	x0, gamma float64
	rnd       *rand.Rand
}

// Rand draws by inverting the CDF at u ∈ (0,1); u == 0 is redrawn so the
// result is always finite.
func (l lorentz) Rand() float64 {
	u := l.rnd.Float64()
	for u == 0 {
		u = l.rnd.Float64()
	}
	return l.Quantile(u)
}

func (l lorentz) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-l.x0)/l.gamma)/math.Pi
}

// LogProb is the log-density -ln(πγ(1+z²)), z = (x-x0)/γ.
func (l lorentz) LogProb(x float64) float64 {
	z := (x - l.x0) / l.gamma
	return -math.Log(math.Pi*l.gamma) - math.Log1p(z*z)
}

func (l lorentz) Quantile(p float64) float64 {
	return l.x0 + l.gamma*math.Tan(math.Pi*(p-0.5))
}

// point is the degenerate distribution used for uniform with a == b.
type point float64

func (v point) Rand() float64 { return float64(v) }

func (v point) CDF(x float64) float64 {
	if x < float64(v) {
		return 0
	}
	return 1
}

func (v point) Quantile(float64) float64 { return float64(v) }
