// SPDX-License-Identifier: MIT
// Package: udsp/matrix
//
// build.go - container construction by per-index evaluation.
//
// Contract:
//   - BuildVector / BuildDense evaluate a callback once per index (row-major for
//     grids) and return the filled container; nothing partial is returned on error.
//   - With WithWorkers(k>1) the index range is split into k contiguous chunks,
//     each filled by its own goroutine. The *Chunked variants hand every chunk
//     its own callback so stateful evaluators (random streams) are never shared.
//   - Chunk callbacks are created sequentially in chunk order before any
//     goroutine starts; derivation order is therefore deterministic.
//   - ComposeVector / ComposeDense fuse several equally shaped inputs point-wise.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// IndexFunc evaluates one sample of a 1-D sequence at index n.
type IndexFunc func(n int) float64

// CellFunc evaluates one sample of a 2-D grid at index pair (n, m).
type CellFunc func(n, m int) float64

// ComposeFunc fuses the values found at the same position in several inputs.
// vals is reused between calls; implementations must not retain it.
type ComposeFunc func(vals []float64) float64

// span is a half-open [lo, hi) index range owned by one chunk.
type span struct{ lo, hi int }

// splitRange divides [0,n) into at most k contiguous spans of near-equal size.
func splitRange(n, k int) []span {
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	size := (n + k - 1) / k
	out := make([]span, 0, k)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, span{lo: lo, hi: hi})
	}

	return out
}

// BuildVector returns a length-n sequence with out[i] = fn(i).
// n == 0 yields an empty, non-nil slice; n < 0 yields ErrInvalidDimensions.
// Complexity: O(n) evaluations, O(n) memory.
func BuildVector(n int, fn IndexFunc, opts ...Option) ([]float64, error) {
	if fn == nil {
		return nil, fmt.Errorf("BuildVector: %w", ErrNilFunc)
	}

	return BuildVectorChunked(n, func(int) IndexFunc { return fn }, opts...)
}

// BuildVectorChunked is BuildVector with one callback per chunk.
// newFn(c) is called once for each chunk c in ascending order.
func BuildVectorChunked(n int, newFn func(chunk int) IndexFunc, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildVector(%d): %w", n, ErrInvalidDimensions)
	}
	if newFn == nil {
		return nil, fmt.Errorf("BuildVector: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)

	out := make([]float64, n)
	spans := splitRange(n, o.workers)
	fns := make([]IndexFunc, len(spans))
	for c := range spans {
		if fns[c] = newFn(c); fns[c] == nil {
			return nil, fmt.Errorf("BuildVector: chunk %d: %w", c, ErrNilFunc)
		}
	}

	// Single chunk: no goroutine overhead.
	if len(spans) == 1 {
		fillVector(out, spans[0], fns[0])
		return out, nil
	}

	var g errgroup.Group
	for c, sp := range spans {
		fn := fns[c]
		g.Go(func() error {
			fillVector(out, sp, fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func fillVector(out []float64, sp span, fn IndexFunc) {
	for i := sp.lo; i < sp.hi; i++ {
		out[i] = fn(i)
	}
}

// BuildDense returns a rows×cols grid with cell (n, m) = fn(n, m), evaluated
// in row-major order within each chunk.
// Complexity: O(rows*cols) evaluations and memory.
func BuildDense(rows, cols int, fn CellFunc, opts ...Option) (*Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("BuildDense: %w", ErrNilFunc)
	}

	return BuildDenseChunked(rows, cols, func(int) CellFunc { return fn }, opts...)
}

// BuildDenseChunked is BuildDense with one callback per chunk of rows.
func BuildDenseChunked(rows, cols int, newFn func(chunk int) CellFunc, opts ...Option) (*Dense, error) {
	if newFn == nil {
		return nil, fmt.Errorf("BuildDense: %w", ErrNilFunc)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	spans := splitRange(rows, o.workers)
	fns := make([]CellFunc, len(spans))
	for c := range spans {
		if fns[c] = newFn(c); fns[c] == nil {
			return nil, fmt.Errorf("BuildDense: chunk %d: %w", c, ErrNilFunc)
		}
	}

	if len(spans) == 1 {
		fillDense(m, spans[0], fns[0])
		return m, nil
	}

	var g errgroup.Group
	for c, sp := range spans {
		fn := fns[c]
		g.Go(func() error {
			fillDense(m, sp, fn)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

func fillDense(m *Dense, sp span, fn CellFunc) {
	var i, j int
	for i = sp.lo; i < sp.hi; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j = range row {
			row[j] = fn(i, j)
		}
	}
}

// ComposeVector fuses equally long sequences point-wise: out[i] = fn(seqs[0][i], seqs[1][i], ...).
// Returns ErrInvalidDimensions for no inputs and ErrDimensionMismatch for unequal lengths.
// Complexity: O(len(seqs) * n).
func ComposeVector(seqs [][]float64, fn ComposeFunc) ([]float64, error) {
	if fn == nil {
		return nil, fmt.Errorf("ComposeVector: %w", ErrNilFunc)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("ComposeVector: no inputs: %w", ErrInvalidDimensions)
	}
	n := len(seqs[0])
	for k, s := range seqs {
		if len(s) != n {
			return nil, fmt.Errorf("ComposeVector: input %d has length %d, want %d: %w", k, len(s), n, ErrDimensionMismatch)
		}
	}

	out := make([]float64, n)
	vals := make([]float64, len(seqs))
	for i := 0; i < n; i++ {
		for k, s := range seqs {
			vals[k] = s[i]
		}
		out[i] = fn(vals)
	}

	return out, nil
}

// ComposeDense fuses equally shaped grids point-wise.
// Returns ErrInvalidDimensions for no inputs and ErrDimensionMismatch for unequal shapes.
// Complexity: O(len(planes) * rows * cols).
func ComposeDense(planes []*Dense, fn ComposeFunc) (*Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("ComposeDense: %w", ErrNilFunc)
	}
	if len(planes) == 0 || planes[0] == nil {
		return nil, fmt.Errorf("ComposeDense: no inputs: %w", ErrInvalidDimensions)
	}
	r, c := planes[0].r, planes[0].c
	for k, p := range planes {
		if p == nil || p.r != r || p.c != c {
			return nil, fmt.Errorf("ComposeDense: plane %d shape mismatch: %w", k, ErrDimensionMismatch)
		}
	}

	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	vals := make([]float64, len(planes))
	for i := range out.data {
		for k, p := range planes {
			vals[k] = p.data[i]
		}
		out.data[i] = fn(vals)
	}

	return out, nil
}
