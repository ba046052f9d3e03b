// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// image.go - image generators over a pixel grid.
//
// The grid has Height rows and Width columns, one unit apart, so the point
// at (n, m) is (y=n, x=m). GrayImage and ImageChannels mirror MonoAudio and
// AudioChannels: one load, fuse-or-share, then release.

package signal

import (
	"fmt"

	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
	"github.com/katalvlaran/udsp/media"
)

func pixelGrid(meta media.ImageMeta) (*domain.Grid, error) {
	return domain.NewGrid(
		[2]float64{float64(meta.Height), float64(meta.Width)},
		[2]float64{1, 1},
		domain.WithUnits("px"),
	)
}

// -----------------------------------------------------------------------------
// GrayImage
// -----------------------------------------------------------------------------

// GrayImage is a single-plane (luma) image signal.
type GrayImage struct {
	Signal2D
}

// NewGrayImage converts src to luma (ITU-R BT.709); alpha is ignored.
// Errors: media.ErrUnsupportedChannelLayout for plane counts outside 1..4.
func NewGrayImage(src media.ImageSource, opts ...Option) (*GrayImage, error) {
	if src == nil {
		return nil, fmt.Errorf("NewGrayImage: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	meta := src.Metadata()
	x, err := pixelGrid(meta)
	if err != nil {
		return nil, fmt.Errorf("NewGrayImage: %w", err)
	}

	sig, err := make2D(x, func(*domain.Grid) (*matrix.Dense, error) {
		planes, err := src.Load()
		if err != nil {
			return nil, err
		}
		cfg.debug("image loaded", "planes", len(planes), "width", meta.Width, "height", meta.Height)
		l, err := media.Luma(planes)
		if err != nil {
			return nil, err
		}
		return l.Clone(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("NewGrayImage: %w", err)
	}

	return &GrayImage{Signal2D: sig}, nil
}

// GrayImageFile decodes the image file at path and converts it to luma.
func GrayImageFile(path string, opts ...Option) (*GrayImage, error) {
	buf, err := media.OpenImage(path)
	if err != nil {
		return nil, err
	}

	return NewGrayImage(buf, opts...)
}

// -----------------------------------------------------------------------------
// ImageChannel
// -----------------------------------------------------------------------------

// ImageChannel is one plane of a multi-plane image.
type ImageChannel struct {
	Signal2D
	id int
}

func newImageChannel(x *domain.Grid, shared *media.Shared[*matrix.Dense], id int) (*ImageChannel, error) {
	sig, err := make2D(x, func(*domain.Grid) (*matrix.Dense, error) {
		p, err := shared.Take(id)
		if err != nil {
			return nil, err
		}
		return p.Clone(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("plane %d: %w", id, err)
	}

	return &ImageChannel{Signal2D: sig, id: id}, nil
}

// ImageChannels splits src into one generator per plane from a single load.
// Errors: media.ErrUnsupportedChannelLayout for plane counts outside 1..4.
func ImageChannels(src media.ImageSource, opts ...Option) ([]*ImageChannel, error) {
	if src == nil {
		return nil, fmt.Errorf("ImageChannels: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	meta := src.Metadata()
	x, err := pixelGrid(meta)
	if err != nil {
		return nil, fmt.Errorf("ImageChannels: %w", err)
	}
	planes, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("ImageChannels: %w", err)
	}
	if len(planes) < 1 || len(planes) > maxImagePlanes {
		return nil, fmt.Errorf("ImageChannels: %d planes: %w", len(planes), media.ErrUnsupportedChannelLayout)
	}

	nplanes := len(planes)
	shared := media.Share(planes, nplanes)
	defer func() {
		shared.Release()
		cfg.debug("image buffer released", "planes", nplanes)
	}()

	out := make([]*ImageChannel, nplanes)
	for id := range out {
		if out[id], err = newImageChannel(x, shared, id); err != nil {
			return nil, fmt.Errorf("ImageChannels: %w", err)
		}
	}

	return out, nil
}

// ImageChannelsFile decodes the image file at path and splits it.
func ImageChannelsFile(path string, opts ...Option) ([]*ImageChannel, error) {
	buf, err := media.OpenImage(path)
	if err != nil {
		return nil, err
	}

	return ImageChannels(buf, opts...)
}

// ID returns the plane index in the source (0=R or L, 1=G or A, 2=B, 3=A).
func (c *ImageChannel) ID() int { return c.id }

const maxImagePlanes = 4
