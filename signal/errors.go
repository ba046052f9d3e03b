// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// errors.go - sentinel errors of the generator layer.
//
// Distribution and media errors are NOT redeclared here; generators return
// dist.ErrUnknownDistribution, dist.ErrInvalidDistributionParameters and
// media.ErrUnsupportedChannelLayout wrapped with the constructor name.

package signal

import "errors"

var (
	// ErrNilDomain is returned when a generator is constructed over a nil axis or grid.
	ErrNilDomain = errors.New("signal: nil domain")

	// ErrLengthMismatch means an evaluation pass did not cover the domain exactly.
	ErrLengthMismatch = errors.New("signal: evaluation does not match domain size")

	// ErrInvalidParameters is returned for NaN/Inf waveform parameters or a zero
	// Gaussian width.
	ErrInvalidParameters = errors.New("signal: invalid waveform parameters")

	// ErrNilSource is returned when a media generator is given no source.
	ErrNilSource = errors.New("signal: nil media source")
)
