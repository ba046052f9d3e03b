// Package udsp is a catalog of deterministic signal generators: closed-form
// waveforms, random noise, and audio/image signals decoded from media files.
//
// What is in the box?
//
//	A small library built around one rule: a generator evaluates its whole
//	domain exactly once, at construction, and is frozen afterwards.
//		• Waveforms: Const, Pulse, Gaussian, Sinewave, Logistic (1-D) and
//		  Const, Pulse, Gaussian (2-D)
//		• Noise: one independent draw per position from uniform, normal,
//		  lorentz or laplace, optionally truncated to [lo, hi]
//		• Media: mono downmix, BT.709 luma, and per-channel / per-plane
//		  splits that share one decoded buffer
//
// Packages:
//
//	domain/ — Axis (1-D sample positions) and Grid (2-D (y, x) points)
//	dist/   — distribution registry, truncation and seeded random streams
//	matrix/ — Dense grids and the (parallel) sequence/grid builders
//	media/  — WAV and image decoding, downmix, luma, shared buffers
//	signal/ — the generators themselves
//
// Quick example:
//
//	x, _ := domain.NewAxis(1, 8000)
//	tone, _ := signal.NewSinewave1D(x, signal.SinewaveParams{A: 1, Freq: 440})
//	hiss, _ := signal.NewNoise1D(x, signal.NoiseParams{Dist: dist.Normal(0.05)},
//		signal.WithSeed(1), signal.WithWorkers(4))
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/udsp
package udsp
