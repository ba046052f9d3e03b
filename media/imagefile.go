// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// imagefile.go - raster decoding into L / RGB / RGBA planes.
//
// Formats: PNG, JPEG and GIF from the standard library; BMP, TIFF and WebP
// from golang.org/x/image. Plane layout follows the color model:
//   - Gray, Gray16                 → 1 plane  (L)
//   - YCbCr, CMYK, opaque RGBA(64)  → 3 planes (RGB)
//   - everything else              → 4 planes (RGBA, non-premultiplied)
//
// 16-bit models keep 16-bit values; all others are 8-bit.

package media

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/katalvlaran/udsp/matrix"
)

// OpenImage decodes the image file at path.
func OpenImage(path string) (*ImageBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("OpenImage(%s): %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("OpenImage(%s): %w", path, err)
	}

	return buf, nil
}

// DecodeImage decodes any registered format and splits it into planes.
func DecodeImage(r io.Reader) (*ImageBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeImage: %v: %w", err, ErrDecode)
	}

	return PlanesFromImage(img)
}

// PlanesFromImage splits an already decoded image into planes.
func PlanesFromImage(img image.Image) (*ImageBuffer, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("PlanesFromImage: empty %dx%d: %w", w, h, ErrDecode)
	}

	nplanes, pixel := planeLayout(img)
	rows := make([][][]float64, nplanes)
	for k := range rows {
		rows[k] = make([][]float64, h)
		for row := range rows[k] {
			rows[k][row] = make([]float64, w)
		}
	}
	px := make([]float64, nplanes)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			pixel(b.Min.X+col, b.Min.Y+row, px)
			for k, v := range px {
				rows[k][row][col] = v
			}
		}
	}

	planes := make([]*matrix.Dense, nplanes)
	for k := range planes {
		p, err := matrix.NewDenseFromRows(rows[k])
		if err != nil {
			return nil, fmt.Errorf("PlanesFromImage: plane %d: %w", k, err)
		}
		planes[k] = p
	}

	return NewImageBuffer(ImageMeta{Width: w, Height: h}, planes)
}

// opaquer is implemented by the concrete image types of image and x/image.
type opaquer interface {
	Opaque() bool
}

// planeLayout picks the plane count and the per-pixel reader for img.
// Premultiplied RGBA that is fully opaque is RGB data (PNG and BMP decode
// truecolor files into *image.RGBA); straight-alpha NRGBA stays RGBA.
func planeLayout(img image.Image) (int, func(x, y int, out []float64)) {
	switch img.ColorModel() {
	case color.GrayModel:
		return planesL, func(x, y int, out []float64) {
			out[0] = float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	case color.Gray16Model:
		return planesL, func(x, y int, out []float64) {
			out[0] = float64(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
		}
	case color.YCbCrModel, color.CMYKModel:
		return planesRGB, rgb8(img)
	case color.RGBAModel:
		if isOpaque(img) {
			return planesRGB, rgb8(img)
		}
	case color.RGBA64Model:
		if isOpaque(img) {
			return planesRGB, func(x, y int, out []float64) {
				c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
				out[0], out[1], out[2] = float64(c.R), float64(c.G), float64(c.B)
			}
		}
		return planesRGBA, rgba16(img)
	case color.NRGBA64Model:
		return planesRGBA, rgba16(img)
	}

	return planesRGBA, func(x, y int, out []float64) {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		out[0], out[1], out[2], out[3] = float64(c.R), float64(c.G), float64(c.B), float64(c.A)
	}
}

func isOpaque(img image.Image) bool {
	o, ok := img.(opaquer)
	return ok && o.Opaque()
}

func rgb8(img image.Image) func(x, y int, out []float64) {
	return func(x, y int, out []float64) {
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		out[0], out[1], out[2] = float64(c.R), float64(c.G), float64(c.B)
	}
}

func rgba16(img image.Image) func(x, y int, out []float64) {
	return func(x, y int, out []float64) {
		c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
		out[0], out[1], out[2], out[3] = float64(c.R), float64(c.G), float64(c.B), float64(c.A)
	}
}
