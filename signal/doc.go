// Package signal provides the built-in signal generators: closed-form
// waveforms, random noise, and audio/image signals decoded from media.
//
// Every generator evaluates its whole domain exactly once, inside its
// constructor, and is frozen afterwards. Parameters are plain structs;
// Rebuild(p) returns a new generator over the same domain.
//
// 1-D (over a domain.Axis):
//
//	NewConst1D, NewPulse1D, NewGaussian1D, NewSinewave1D, NewLogistic1D,
//	NewNoise1D, NewMonoAudio, AudioChannels
//
// 2-D (over a domain.Grid of (y, x) points, evaluated row-major):
//
//	NewConst2D, NewPulse2D, NewGaussian2D, NewNoise2D,
//	NewGrayImage, ImageChannels
//
// Options:
//
//	WithWorkers(k)   evaluate on k goroutines, each output written once
//	WithSeed(s)      reproducible noise for a fixed (seed, workers) pair
//	WithSource(src)  draw noise from a caller-owned rand.Source
//	WithRegistry(r)  resolve distribution names in r
//	WithLogger(l)    slog debug records for media load and buffer release
//
// Errors are wrapped sentinels: match them with errors.Is against
// dist.ErrUnknownDistribution, dist.ErrInvalidDistributionParameters,
// media.ErrUnsupportedChannelLayout, media.ErrBufferReleased, ErrNilDomain,
// ErrNilSource, ErrInvalidParameters and ErrLengthMismatch. A failed
// constructor never returns a partial signal.
package signal
