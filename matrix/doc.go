// Package matrix holds the sample containers shared by every signal
// generator: flat 1-D sequences ([]float64) and the row-major Dense grid.
//
// The package provides:
//
//   - Dense: rows×cols float64 storage with bounds-checked At/Set and deep Clone.
//   - BuildVector / BuildDense: fill a container by evaluating a callback at
//     every index (row-major for grids).
//   - BuildVectorChunked / BuildDenseChunked: the same, but each contiguous
//     chunk gets its own callback so stateful evaluators are never shared
//     between goroutines.
//   - ComposeVector / ComposeDense: point-wise fusion of equally shaped inputs
//     (stereo downmix, RGB to luma).
//
// Parallelism is opt-in through WithWorkers(k). Chunk boundaries depend only on
// (size, k), and every output slot is written by exactly one goroutine.
//
//	grid, err := matrix.BuildDense(480, 640, func(n, m int) float64 {
//		return float64(n * m)
//	}, matrix.WithWorkers(4))
package matrix
