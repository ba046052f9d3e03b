// Package domain supplies the independent-variable sample positions over which
// signals are evaluated.
//
//   - Axis: an ordered 1-D sequence x[0..N-1]. NewAxis(length, sfreq) samples
//     uniformly: N = round(length*sfreq), x[n] = start + n/sfreq.
//   - Grid: an N×M array of Point{y, x}. Component 0 is vertical, component 1
//     horizontal; NewGrid takes (vertical, horizontal) pairs for length and
//     sfreq, so an image of W×H pixels uses length = (H, W).
//
// Axes and grids are immutable once built and safe for concurrent reads.
package domain
