// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the container builders.
//
// Design goals:
//   - Deterministic behavior: chunk boundaries depend only on (size, workers).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// DefaultWorkers is the number of goroutines used by the builders when no
// WithWorkers option is given. 1 means a plain sequential loop.
const DefaultWorkers = 1

const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// WithWorkers sets how many goroutines fill a vector or grid.
// Each goroutine owns one contiguous chunk of indices (rows for grids), so
// every output position is written exactly once.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.workers = workers
	}
}

// gatherOptions applies opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Workers reports the resolved worker count.
func (o Options) Workers() int {
	return o.workers
}
