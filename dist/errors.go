// SPDX-License-Identifier: MIT
// Package dist: sentinel errors.
//
// Callers branch with errors.Is; returned errors carry "Sampler(name): ..."
// context wrapped around these sentinels via %w.

package dist

import "errors"

// ErrUnknownDistribution indicates a distribution name that is not registered.
var ErrUnknownDistribution = errors.New("dist: unknown distribution")

// ErrInvalidDistributionParameters indicates a missing, unexpected or
// malformed parameter, a non-positive scale, a uniform range with a > b,
// a truncation interval with lo >= hi, or a nil random source.
var ErrInvalidDistributionParameters = errors.New("dist: invalid distribution parameters")
