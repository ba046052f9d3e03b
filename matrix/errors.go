// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w context) and
// tests MUST check them via errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (or negative for vectors).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. composing planes of different sizes or ragged row input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilFunc indicates that a nil evaluation callback was supplied.
	ErrNilFunc = errors.New("matrix: nil evaluation func")
)
