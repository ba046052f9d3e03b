// SPDX-License-Identifier: MIT
// Package media: sentinel errors.

package media

import "errors"

// ErrUnsupportedChannelLayout indicates a channel/plane count outside the
// supported set: audio downmix accepts 1 or 2 channels, luma accepts 1..4
// planes, and split decomposition needs at least one channel.
// Usage: if errors.Is(err, ErrUnsupportedChannelLayout) { /* reject file */ }.
var ErrUnsupportedChannelLayout = errors.New("media: unsupported channel layout")

// ErrBufferReleased indicates a read from a Shared handle after its buffer was
// dropped (all holders took their slice, or the owner released it).
var ErrBufferReleased = errors.New("media: shared buffer already released")

// ErrDecode indicates malformed or unsupported media data.
var ErrDecode = errors.New("media: decode failed")

// ErrShapeMismatch indicates channels of unequal length or planes of unequal
// size, or data that disagrees with its metadata.
var ErrShapeMismatch = errors.New("media: channel shape mismatch")
