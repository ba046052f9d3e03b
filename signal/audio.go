// SPDX-License-Identifier: MIT
// Package: udsp/signal
//
// audio.go - audio generators over a time axis.
//
// Contract:
//   - MonoAudio loads the source once, downmixes 1 or 2 channels and drops
//     the decoded buffer; only the fused sequence is retained.
//   - AudioChannels loads the source once and shares the channels through a
//     media.Shared handle. Each AudioChannel takes exactly its own channel;
//     the handle is released when the last one has taken it, or on error.
//   - The axis spans size/sampleRate seconds at sampleRate samples per second.

package signal

import (
	"fmt"

	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/media"
)

const unitsSeconds = "s"

// audioAxis builds the time axis of an audio source.
func audioAxis(meta media.AudioMeta) (*domain.Axis, error) {
	return domain.NewAxis(meta.Duration(), float64(meta.SampleRate), domain.WithUnits(unitsSeconds))
}

// -----------------------------------------------------------------------------
// MonoAudio
// -----------------------------------------------------------------------------

// MonoAudio is a single-channel audio signal.
type MonoAudio struct {
	Signal1D
	bits int
}

// NewMonoAudio downmixes src to one channel.
// Errors: media.ErrUnsupportedChannelLayout for more than two channels,
// ErrNilSource, media.ErrDecode from the source.
func NewMonoAudio(src media.AudioSource, opts ...Option) (*MonoAudio, error) {
	if src == nil {
		return nil, fmt.Errorf("NewMonoAudio: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	meta := src.Metadata()
	x, err := audioAxis(meta)
	if err != nil {
		return nil, fmt.Errorf("NewMonoAudio: %w", err)
	}

	sig, err := make1D(x, func(*domain.Axis) ([]float64, error) {
		channels, err := src.Load()
		if err != nil {
			return nil, err
		}
		cfg.debug("audio loaded", "channels", len(channels), "size", meta.Size, "rate", meta.SampleRate)
		mono, err := media.Downmix(channels)
		if err != nil {
			return nil, err
		}
		// channels goes out of scope here; only the fused copy survives.
		out := make([]float64, len(mono))
		copy(out, mono)
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("NewMonoAudio: %w", err)
	}

	return &MonoAudio{Signal1D: sig, bits: meta.BitsPerSample}, nil
}

// MonoAudioFile decodes the WAV file at path and downmixes it.
func MonoAudioFile(path string, opts ...Option) (*MonoAudio, error) {
	buf, err := media.OpenWAV(path)
	if err != nil {
		return nil, err
	}

	return NewMonoAudio(buf, opts...)
}

// SampleResolution returns the bits per sample of the source.
func (a *MonoAudio) SampleResolution() int { return a.bits }

// -----------------------------------------------------------------------------
// AudioChannel
// -----------------------------------------------------------------------------

// AudioChannel is one channel of a multi-channel audio source.
type AudioChannel struct {
	Signal1D
	id   int
	bits int
}

// newAudioChannel takes channel id from the shared handle.
func newAudioChannel(x *domain.Axis, shared *media.Shared[[]float64], id, bits int) (*AudioChannel, error) {
	sig, err := make1D(x, func(*domain.Axis) ([]float64, error) {
		ch, err := shared.Take(id)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(ch))
		copy(out, ch)
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("channel %d: %w", id, err)
	}

	return &AudioChannel{Signal1D: sig, id: id, bits: bits}, nil
}

// AudioChannels splits src into one generator per channel from a single load.
// Any channel count ≥ 1 is accepted. On error no channel is returned.
func AudioChannels(src media.AudioSource, opts ...Option) ([]*AudioChannel, error) {
	if src == nil {
		return nil, fmt.Errorf("AudioChannels: %w", ErrNilSource)
	}
	cfg := newConfig(opts...)
	meta := src.Metadata()
	x, err := audioAxis(meta)
	if err != nil {
		return nil, fmt.Errorf("AudioChannels: %w", err)
	}
	channels, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("AudioChannels: %w", err)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("AudioChannels: no channels: %w", media.ErrUnsupportedChannelLayout)
	}

	nch := len(channels)
	shared := media.Share(channels, nch)
	defer func() {
		shared.Release()
		cfg.debug("audio buffer released", "channels", nch)
	}()

	out := make([]*AudioChannel, nch)
	for id := range out {
		if out[id], err = newAudioChannel(x, shared, id, meta.BitsPerSample); err != nil {
			return nil, fmt.Errorf("AudioChannels: %w", err)
		}
	}

	return out, nil
}

// AudioChannelsFile decodes the WAV file at path and splits it.
func AudioChannelsFile(path string, opts ...Option) ([]*AudioChannel, error) {
	buf, err := media.OpenWAV(path)
	if err != nil {
		return nil, err
	}

	return AudioChannels(buf, opts...)
}

// ID returns the channel index in the source.
func (a *AudioChannel) ID() int { return a.id }

// SampleResolution returns the bits per sample of the source.
func (a *AudioChannel) SampleResolution() int { return a.bits }
