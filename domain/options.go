// SPDX-License-Identifier: MIT
// Package: udsp/domain
//
// options.go - functional options for axis construction.

package domain

// Deterministic defaults.
const (
	defaultStart = 0.0 // first sample position
	defaultUnits = ""  // unlabeled axis
)

// AxisOption customizes NewAxis / NewGrid.
type AxisOption func(*axisConfig)

type axisConfig struct {
	start float64
	units string
}

// WithStart sets the position of the first sample.
func WithStart(x0 float64) AxisOption {
	return func(c *axisConfig) {
		c.start = x0
	}
}

// WithUnits labels the axis (e.g. "s" for audio time axes).
func WithUnits(units string) AxisOption {
	return func(c *axisConfig) {
		c.units = units
	}
}

// newAxisConfig applies options in order; last wins.
func newAxisConfig(opts ...AxisOption) axisConfig {
	cfg := axisConfig{start: defaultStart, units: defaultUnits}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
