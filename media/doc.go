// Package media turns decoded audio and images into the channel/plane
// buffers consumed by the media signal generators.
//
// Sources:
//   - AudioSource / AudioBuffer: per-channel sample sequences plus
//     AudioMeta{Size, SampleRate, BitsPerSample}. OpenWAV / DecodeWAV read PCM WAV.
//   - ImageSource / ImageBuffer: Height×Width planes (L, LA, RGB, RGBA) plus
//     ImageMeta{Width, Height}. OpenImage / DecodeImage read PNG, JPEG, GIF,
//     BMP, TIFF and WebP.
//
// Decomposition:
//   - Downmix: mono as-is, stereo averaged with round-half-to-even.
//   - Luma: L/LA plane 0, RGB/RGBA fused with BT.709 weights, round-half-to-even.
//   - Shared: a reference-counted handle that lets K channel generators take
//     their slice of one decoded buffer and drops it after the last take.
//
// Unsupported layouts fail with ErrUnsupportedChannelLayout.
package media
