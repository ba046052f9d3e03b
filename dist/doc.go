// Package dist is the distribution registry used by the noise generators.
//
// A Config names a distribution, carries its parameters and optionally a
// truncation interval:
//
//	name      required   optional   notes
//	-------   --------   --------   ------------------------------------
//	uniform   a, b       -          U[a, b], a ≤ b
//	normal    sigma      mu         N(mu, sigma²), sigma > 0
//	lorentz   gamma      x0         Cauchy–Lorentz, gamma > 0
//	laplace   lambd      mu         Laplace, lambd > 0
//
// Any kind accepts Trunc = &Interval{Lo, Hi} (Lo < Hi); draws then always lie
// in [Lo, Hi].
//
//	reg := dist.NewRegistry()
//	s, err := reg.Sampler(dist.Normal(0.5).WithTrunc(-1, 1), dist.NewSource(42))
//	if err != nil { ... }
//	x := s()
//
// Registries hold no global state; inject one where sampling is needed.
// Sources are deterministic per seed; DeriveSource gives independent
// per-worker streams.
package dist
