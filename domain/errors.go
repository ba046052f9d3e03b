// SPDX-License-Identifier: MIT
// Package domain: sentinel errors.

package domain

import "errors"

// ErrBadDomain indicates an invalid axis/grid request: negative or non-finite
// length, non-positive sampling frequency, or an empty 2-D grid.
// Usage: if errors.Is(err, ErrBadDomain) { /* fix length/sfreq */ }.
var ErrBadDomain = errors.New("domain: invalid domain")
