// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// decompose.go - fusing multi-channel media into one channel.
//
// Rounding: both rules round half to even (RoundToEven), so a stereo pair
// (4, 5) downmixes to 4 and (5, 6) to 6.

package media

import (
	"fmt"
	"math"

	"github.com/katalvlaran/udsp/matrix"
)

// ITU-R BT.709 luma weights.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Supported layouts.
const (
	monoChannels   = 1
	stereoChannels = 2
	planesL        = 1
	planesLA       = 2
	planesRGB      = 3
	planesRGBA     = 4
)

// Downmix fuses audio channels into one:
//   - 1 channel  → returned as-is;
//   - 2 channels → RoundToEven((left + right) / 2) per sample;
//   - otherwise  → ErrUnsupportedChannelLayout.
//
// Complexity: O(n).
func Downmix(channels [][]float64) ([]float64, error) {
	switch len(channels) {
	case monoChannels:
		return channels[0], nil
	case stereoChannels:
		out, err := matrix.ComposeVector(channels, func(v []float64) float64 {
			return math.RoundToEven((v[0] + v[1]) / 2)
		})
		if err != nil {
			return nil, fmt.Errorf("Downmix: %w", ErrShapeMismatch)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("Downmix: %d channels: %w", len(channels), ErrUnsupportedChannelLayout)
	}
}

// Luma fuses image planes into one brightness plane:
//   - 1 or 2 planes (L, LA)     → plane 0, alpha ignored;
//   - 3 or 4 planes (RGB, RGBA) → RoundToEven(0.2126 R + 0.7152 G + 0.0722 B), alpha ignored;
//   - otherwise                 → ErrUnsupportedChannelLayout.
//
// Complexity: O(rows*cols).
func Luma(planes []*matrix.Dense) (*matrix.Dense, error) {
	switch len(planes) {
	case planesL, planesLA:
		if planes[0] == nil {
			return nil, fmt.Errorf("Luma: nil plane: %w", ErrShapeMismatch)
		}
		return planes[0], nil
	case planesRGB, planesRGBA:
		out, err := matrix.ComposeDense(planes[:planesRGB], func(v []float64) float64 {
			return math.RoundToEven(LumaR*v[0] + LumaG*v[1] + LumaB*v[2])
		})
		if err != nil {
			return nil, fmt.Errorf("Luma: %w", ErrShapeMismatch)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("Luma: %d planes: %w", len(planes), ErrUnsupportedChannelLayout)
	}
}
