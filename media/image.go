// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// image.go - decoded image planes.

package media

import (
	"fmt"

	"github.com/katalvlaran/udsp/matrix"
)

// ImageMeta describes a decoded raster in pixels.
type ImageMeta struct {
	Width, Height int
}

// ImageSource yields decoded planes, each a Height×Width grid.
// Plane order is L, LA, RGB or RGBA.
type ImageSource interface {
	Metadata() ImageMeta
	Load() ([]*matrix.Dense, error)
}

// ImageBuffer is an in-memory ImageSource.
type ImageBuffer struct {
	meta   ImageMeta
	planes []*matrix.Dense
}

// NewImageBuffer wraps decoded planes; each must be Height×Width.
func NewImageBuffer(meta ImageMeta, planes []*matrix.Dense) (*ImageBuffer, error) {
	if meta.Width <= 0 || meta.Height <= 0 {
		return nil, fmt.Errorf("NewImageBuffer: %dx%d: %w", meta.Width, meta.Height, ErrDecode)
	}
	for k, p := range planes {
		if p == nil || p.Rows() != meta.Height || p.Cols() != meta.Width {
			return nil, fmt.Errorf("NewImageBuffer: plane %d shape mismatch: %w", k, ErrShapeMismatch)
		}
	}

	return &ImageBuffer{meta: meta, planes: planes}, nil
}

// Metadata returns the raster size.
func (b *ImageBuffer) Metadata() ImageMeta { return b.meta }

// Load returns the plane list (shared, read-only).
func (b *ImageBuffer) Load() ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(b.planes))
	copy(out, b.planes)
	return out, nil
}
