// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// wav.go - RIFF/WAVE decoding into per-channel integer sample sequences.
//
// Contract:
//   - Linear PCM only (WAVE_FORMAT_PCM, or EXTENSIBLE carrying integer PCM);
//     samples keep their integer values.
//   - Any channel count ≥ 1 is decoded; interleaved frames are split into one
//     sequence per channel. A trailing partial frame is dropped.
//   - Zero channels fail with ErrUnsupportedChannelLayout; everything else
//     that cannot be read fails with ErrDecode.

package media

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1      // WAVE_FORMAT_PCM
	wavFormatExtensible = 0xFFFE // WAVE_FORMAT_EXTENSIBLE, used by most >2 channel files
)

// OpenWAV decodes the WAV file at path.
func OpenWAV(path string) (*AudioBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("OpenWAV(%s): %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("OpenWAV(%s): %w", path, err)
	}

	return buf, nil
}

// DecodeWAV reads a complete WAV stream in one pass.
// Errors: ErrDecode for malformed or non-PCM data; ErrUnsupportedChannelLayout
// for zero channels.
func DecodeWAV(r io.ReadSeeker) (*AudioBuffer, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("DecodeWAV: header: %v: %w", err, ErrDecode)
	}
	if d.WavAudioFormat != wavFormatPCM && d.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("DecodeWAV: audio format %d: %w", d.WavAudioFormat, ErrDecode)
	}
	nch := int(d.NumChans)
	if nch < 1 {
		return nil, fmt.Errorf("DecodeWAV: %d channels: %w", nch, ErrUnsupportedChannelLayout)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("DecodeWAV: samples: %v: %w", err, ErrDecode)
	}

	frames := len(pcm.Data) / nch
	channels := make([][]float64, nch)
	for c := range channels {
		ch := make([]float64, frames)
		for i := range ch {
			ch[i] = float64(pcm.Data[i*nch+c])
		}
		channels[c] = ch
	}

	return NewAudioBuffer(AudioMeta{
		Size:          frames,
		SampleRate:    int(d.SampleRate),
		BitsPerSample: int(d.BitDepth),
	}, channels)
}
