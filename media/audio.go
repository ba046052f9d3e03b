// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// audio.go - decoded audio buffers.

package media

import "fmt"

// AudioMeta describes a decoded audio stream.
type AudioMeta struct {
	Size          int // samples per channel
	SampleRate    int // samples per second
	BitsPerSample int // sample resolution
}

// Duration returns the stream length in seconds (Size / SampleRate).
func (m AudioMeta) Duration() float64 {
	if m.SampleRate <= 0 {
		return 0
	}
	return float64(m.Size) / float64(m.SampleRate)
}

// AudioSource yields decoded per-channel sample sequences.
// Load may be called once per derived signal set; implementations may hand
// out shared slices, which callers must treat as read-only.
type AudioSource interface {
	Metadata() AudioMeta
	Load() ([][]float64, error)
}

// AudioBuffer is an in-memory AudioSource.
type AudioBuffer struct {
	meta     AudioMeta
	channels [][]float64
}

// NewAudioBuffer wraps decoded channels. Every channel must hold meta.Size
// samples and meta.SampleRate must be positive.
func NewAudioBuffer(meta AudioMeta, channels [][]float64) (*AudioBuffer, error) {
	if meta.SampleRate <= 0 || meta.Size < 0 {
		return nil, fmt.Errorf("NewAudioBuffer: rate=%d size=%d: %w", meta.SampleRate, meta.Size, ErrDecode)
	}
	for c, ch := range channels {
		if len(ch) != meta.Size {
			return nil, fmt.Errorf("NewAudioBuffer: channel %d has %d samples, want %d: %w", c, len(ch), meta.Size, ErrShapeMismatch)
		}
	}

	return &AudioBuffer{meta: meta, channels: channels}, nil
}

// Metadata returns the stream description.
func (b *AudioBuffer) Metadata() AudioMeta { return b.meta }

// Load returns the channel list (shared, read-only).
func (b *AudioBuffer) Load() ([][]float64, error) {
	out := make([][]float64, len(b.channels))
	copy(out, b.channels)
	return out, nil
}
