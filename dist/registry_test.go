package dist_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/udsp/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_Names lists the built-ins in order.
func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"laplace", "lorentz", "normal", "uniform"}, dist.NewRegistry().Names())
}

// TestSampler_Errors table-tests every validation branch.
func TestSampler_Errors(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	for _, tc := range []struct {
		name string
		cfg  dist.Config
		want error
	}{
		{"unknown name", dist.Config{Name: "poisson"}, dist.ErrUnknownDistribution},
		{"empty name", dist.Config{}, dist.ErrUnknownDistribution},
		{"uniform missing b", dist.Config{Name: "uniform", Params: dist.Params{"a": 0}}, dist.ErrInvalidDistributionParameters},
		{"uniform a>b", dist.Uniform(2, 1), dist.ErrInvalidDistributionParameters},
		{"normal missing sigma", dist.Config{Name: "normal"}, dist.ErrInvalidDistributionParameters},
		{"normal zero sigma", dist.Normal(0), dist.ErrInvalidDistributionParameters},
		{"normal NaN sigma", dist.Normal(math.NaN()), dist.ErrInvalidDistributionParameters},
		{"normal unexpected key", dist.Config{Name: "normal", Params: dist.Params{"sigma": 1, "gamma": 2}}, dist.ErrInvalidDistributionParameters},
		{"lorentz negative gamma", dist.Lorentz(-1), dist.ErrInvalidDistributionParameters},
		{"laplace missing lambd", dist.Config{Name: "laplace", Params: dist.Params{"mu": 1}}, dist.ErrInvalidDistributionParameters},
		{"trunc lo == hi", dist.Normal(1).WithTrunc(1, 1), dist.ErrInvalidDistributionParameters},
		{"trunc lo > hi", dist.Laplace(1).WithTrunc(2, -2), dist.ErrInvalidDistributionParameters},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.Sampler(tc.cfg, dist.NewSource(1))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := reg.Sampler(dist.Normal(1), nil)
	require.ErrorIs(t, err, dist.ErrInvalidDistributionParameters)
}

// TestUniform_RangeAndMean checks every draw in [0,1] and mean ≈ 0.5.
func TestUniform_RangeAndMean(t *testing.T) {
	t.Parallel()

	s, err := dist.NewRegistry().Sampler(dist.Uniform(0, 1), dist.NewSource(7))
	require.NoError(t, err)

	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		x := s()
		require.True(t, x >= 0 && x <= 1, "draw %g out of [0,1]", x)
		sum += x
	}
	// σ of the mean is 1/sqrt(12n) ≈ 0.0009; 0.01 is > 10σ.
	assert.InDelta(t, 0.5, sum/n, 0.01)
}

// TestUniform_Degenerate returns a for a == b.
func TestUniform_Degenerate(t *testing.T) {
	t.Parallel()

	x, err := dist.NewRegistry().Draw(dist.Uniform(3, 3), dist.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
}

// TestTruncation_AllKinds verifies draws stay in [lo,hi] for every kind,
// including an interval far in a tail.
func TestTruncation_AllKinds(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	for _, tc := range []struct {
		name   string
		cfg    dist.Config
		lo, hi float64
	}{
		{"uniform", dist.Uniform(-5, 5), -1, 2},
		{"normal", dist.Normal(2), -0.5, 0.5},
		{"normal far tail", dist.Normal(1), 40, 41},
		{"lorentz", dist.Lorentz(3), -1, 1},
		{"laplace", dist.Laplace(0.5), 0, 3},
		{"uniform disjoint", dist.Uniform(0, 1), 5, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := reg.Sampler(tc.cfg.WithTrunc(tc.lo, tc.hi), dist.NewSource(99))
			require.NoError(t, err)
			for i := 0; i < 5000; i++ {
				x := s()
				require.True(t, x >= tc.lo && x <= tc.hi, "draw %g out of [%g,%g]", x, tc.lo, tc.hi)
			}
		})
	}
}

// TestTruncation_FarTails checks that intervals beyond CDF resolution are
// filled with the tail shape instead of collapsing onto a bound.
func TestTruncation_FarTails(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	for _, tc := range []struct {
		name   string
		cfg    dist.Config
		lo, hi float64
		mean   float64
		delta  float64
	}{
		// exp(-40(x-40)) on [40,41]: mean ≈ 40 + 1/40.
		{"normal upper", dist.Normal(1), 40, 41, 40.025, 0.005},
		{"normal lower", dist.Normal(1), -41, -40, -40.025, 0.005},
		// exp(-(x-60)) on [60,61]: mean = 60 + 1 - 1/(e-1).
		{"laplace upper", dist.Laplace(1), 60, 61, 60 + 1 - 1/(math.E-1), 0.03},
		// nearly flat density this far out.
		{"lorentz upper", dist.Lorentz(1), 1e12, 1e12 + 1, 1e12 + 0.5, 0.05},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := reg.Sampler(tc.cfg.WithTrunc(tc.lo, tc.hi), dist.NewSource(5))
			require.NoError(t, err)

			const n = 4000
			var sum float64
			distinct := make(map[float64]struct{})
			for i := 0; i < n; i++ {
				x := s()
				require.True(t, x >= tc.lo && x <= tc.hi, "draw %g out of [%g,%g]", x, tc.lo, tc.hi)
				sum += x
				distinct[x] = struct{}{}
			}
			assert.Greater(t, len(distinct), n/2)
			assert.InDelta(t, tc.mean, sum/n, tc.delta)
		})
	}
}

// TestNormal_Moments checks mean ≈ mu and stddev ≈ sigma.
func TestNormal_Moments(t *testing.T) {
	t.Parallel()

	cfg := dist.Normal(2)
	cfg.Params[dist.KeyMu] = 10
	s, err := dist.NewRegistry().Sampler(cfg, dist.NewSource(3))
	require.NoError(t, err)

	const n = 50000
	var sum, sq float64
	for i := 0; i < n; i++ {
		x := s()
		sum += x
		sq += x * x
	}
	mean := sum / n
	std := math.Sqrt(sq/n - mean*mean)
	assert.InDelta(t, 10, mean, 0.1)
	assert.InDelta(t, 2, std, 0.1)
}

// TestLorentz_Median checks the sample median ≈ x0 and draws are finite.
func TestLorentz_Median(t *testing.T) {
	t.Parallel()

	s, err := dist.NewRegistry().Sampler(dist.Lorentz(1), dist.NewSource(5))
	require.NoError(t, err)
	below := 0
	const n = 20000
	for i := 0; i < n; i++ {
		x := s()
		require.False(t, math.IsInf(x, 0) || math.IsNaN(x))
		if x < 0 {
			below++
		}
	}
	assert.InDelta(t, 0.5, float64(below)/n, 0.02)
}

// TestSampler_Deterministic verifies equal seeds give equal streams and
// derived streams differ.
func TestSampler_Deterministic(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	a, err := reg.Sampler(dist.Laplace(1), dist.NewSource(11))
	require.NoError(t, err)
	b, err := reg.Sampler(dist.Laplace(1), dist.NewSource(11))
	require.NoError(t, err)
	c, err := reg.Sampler(dist.Laplace(1), dist.DeriveSource(11, 1))
	require.NoError(t, err)

	same, differ := true, false
	for i := 0; i < 16; i++ {
		x, y, z := a(), b(), c()
		same = same && x == y
		differ = differ || x != z
	}
	assert.True(t, same, "equal seeds must give equal draws")
	assert.True(t, differ, "derived stream must differ")
}

// TestRegister_Custom registers an extra kind and panics on misuse.
func TestRegister_Custom(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	reg.Register("unit", dist.Kind{
		New: func(dist.Params, rand.Source) (dist.Distribution, error) {
			return constDist(1), nil
		},
	})
	x, err := reg.Draw(dist.Config{Name: "unit"}, dist.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)

	assert.Panics(t, func() { reg.Register("", dist.Kind{}) })
	assert.Panics(t, func() { reg.Register("nil", dist.Kind{}) })
}

type constDist float64

func (c constDist) Rand() float64            { return float64(c) }
func (c constDist) CDF(float64) float64      { return 0.5 }
func (c constDist) Quantile(float64) float64 { return float64(c) }

// TestConfig_Clone ensures clones do not share the params map.
func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	cfg := dist.Normal(1).WithTrunc(-1, 1)
	cp := cfg.Clone()
	cp.Params[dist.KeySigma] = 9
	cp.Trunc.Lo = -9
	assert.Equal(t, 1.0, cfg.Params[dist.KeySigma])
	assert.Equal(t, -1.0, cfg.Trunc.Lo)
}

// TestValidate_RunsKindChecks verifies Validate catches value errors that
// only the kind factory knows about.
func TestValidate_RunsKindChecks(t *testing.T) {
	t.Parallel()

	reg := dist.NewRegistry()
	require.NoError(t, reg.Validate(dist.Normal(1)))
	require.ErrorIs(t, reg.Validate(dist.Normal(-1)), dist.ErrInvalidDistributionParameters)
	require.ErrorIs(t, reg.Validate(dist.Config{Name: "gauss"}), dist.ErrUnknownDistribution)
}
