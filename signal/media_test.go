package signal_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	audiowav "github.com/go-audio/wav"
	"github.com/youpy/go-wav"

	"github.com/katalvlaran/udsp/matrix"
	"github.com/katalvlaran/udsp/media"
	"github.com/katalvlaran/udsp/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAudio is an AudioSource that records how often it is loaded.
type countingAudio struct {
	meta     media.AudioMeta
	channels [][]float64
	loads    int
	err      error
}

func (s *countingAudio) Metadata() media.AudioMeta { return s.meta }

func (s *countingAudio) Load() ([][]float64, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.channels, nil
}

// countingImage is the ImageSource counterpart.
type countingImage struct {
	meta   media.ImageMeta
	planes []*matrix.Dense
	loads  int
}

func (s *countingImage) Metadata() media.ImageMeta { return s.meta }

func (s *countingImage) Load() ([]*matrix.Dense, error) {
	s.loads++
	return s.planes, nil
}

func audioBuffer(t *testing.T, rate int, channels ...[]float64) *media.AudioBuffer {
	t.Helper()
	buf, err := media.NewAudioBuffer(media.AudioMeta{Size: len(channels[0]), SampleRate: rate, BitsPerSample: 16}, channels)
	require.NoError(t, err)
	return buf
}

func planeImage(t *testing.T, h, w int, planes ...[][]float64) *countingImage {
	t.Helper()
	src := &countingImage{meta: media.ImageMeta{Width: w, Height: h}}
	for _, rows := range planes {
		p, err := matrix.NewDenseFromRows(rows)
		require.NoError(t, err)
		src.planes = append(src.planes, p)
	}
	return src
}

// TestMonoAudio_StereoTieBreak pins (4,5) → 4 and (5,6) → 6.
func TestMonoAudio_StereoTieBreak(t *testing.T) {
	t.Parallel()

	g, err := signal.NewMonoAudio(audioBuffer(t, 2, []float64{4, 5}, []float64{5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, g.Values())
	assert.Equal(t, 16, g.SampleResolution())

	x := g.Domain()
	assert.Equal(t, "s", x.Units())
	assert.Equal(t, 2.0, x.SampleRate())
	assert.Equal(t, []float64{0, 0.5}, x.Values())
}

// TestMonoAudio_Mono uses the single channel as-is and does not alias it.
func TestMonoAudio_Mono(t *testing.T) {
	t.Parallel()

	ch := []float64{1, -2, 3}
	g, err := signal.NewMonoAudio(audioBuffer(t, 3, ch))
	require.NoError(t, err)
	assert.Equal(t, ch, g.Values())
	ch[0] = 100
	assert.Equal(t, 1.0, g.At(0))
}

// TestMonoAudio_Unsupported rejects three channels.
func TestMonoAudio_Unsupported(t *testing.T) {
	t.Parallel()

	g, err := signal.NewMonoAudio(audioBuffer(t, 1, []float64{1}, []float64{2}, []float64{3}))
	assert.ErrorIs(t, err, media.ErrUnsupportedChannelLayout)
	assert.Nil(t, g)

	_, err = signal.NewMonoAudio(nil)
	assert.ErrorIs(t, err, signal.ErrNilSource)
}

// TestAudioChannels_RoundTrip splits three channels from one load.
func TestAudioChannels_RoundTrip(t *testing.T) {
	t.Parallel()

	chs := [][]float64{{1, 2, 3, 4}, {-1, -2, -3, -4}, {0, 10, 0, 10}}
	src := &countingAudio{
		meta:     media.AudioMeta{Size: 4, SampleRate: 4, BitsPerSample: 24},
		channels: chs,
	}
	out, err := signal.AudioChannels(src)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 1, src.loads)
	for i, c := range out {
		assert.Equal(t, i, c.ID())
		assert.Equal(t, 24, c.SampleResolution())
		assert.Equal(t, chs[i], c.Values())
		assert.Equal(t, 4, c.Domain().Len())
	}

	// Channels own their samples.
	chs[0][0] = 99
	assert.Equal(t, 1.0, out[0].At(0))
}

// TestAudioChannels_Errors returns no channels on any failure.
func TestAudioChannels_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := signal.AudioChannels(&countingAudio{meta: media.AudioMeta{Size: 1, SampleRate: 1}, err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = signal.AudioChannels(&countingAudio{meta: media.AudioMeta{Size: 1, SampleRate: 1}})
	assert.ErrorIs(t, err, media.ErrUnsupportedChannelLayout)

	// Second channel is shorter than the axis.
	out, err := signal.AudioChannels(&countingAudio{
		meta:     media.AudioMeta{Size: 2, SampleRate: 1},
		channels: [][]float64{{1, 2}, {1}},
	})
	assert.ErrorIs(t, err, signal.ErrLengthMismatch)
	assert.Nil(t, out)

	_, err = signal.AudioChannels(nil)
	assert.ErrorIs(t, err, signal.ErrNilSource)
}

// TestGrayImage_Luma pins RGB(10,20,30) → 19 and ignores alpha.
func TestGrayImage_Luma(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		planes [][][]float64
		want   float64
	}{
		{"L", [][][]float64{{{42}}}, 42},
		{"LA", [][][]float64{{{42}}, {{7}}}, 42},
		{"RGB", [][][]float64{{{10}}, {{20}}, {{30}}}, 19},
		{"RGBA", [][][]float64{{{10}}, {{20}}, {{30}}, {{0}}}, 19},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := planeImage(t, 1, 1, tc.planes...)
			g, err := signal.NewGrayImage(src)
			require.NoError(t, err)
			v, err := g.At(0, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, 1, src.loads)
		})
	}
}

// TestGrayImage_Unsupported rejects five planes.
func TestGrayImage_Unsupported(t *testing.T) {
	t.Parallel()

	src := planeImage(t, 1, 1, [][]float64{{1}}, [][]float64{{2}}, [][]float64{{3}}, [][]float64{{4}}, [][]float64{{5}})
	_, err := signal.NewGrayImage(src)
	assert.ErrorIs(t, err, media.ErrUnsupportedChannelLayout)
	_, err = signal.ImageChannels(src)
	assert.ErrorIs(t, err, media.ErrUnsupportedChannelLayout)
}

// TestImageChannels_RoundTrip splits RGB planes over a pixel grid.
func TestImageChannels_RoundTrip(t *testing.T) {
	t.Parallel()

	r := [][]float64{{1, 2, 3}, {4, 5, 6}}
	g := [][]float64{{7, 8, 9}, {10, 11, 12}}
	b := [][]float64{{0, 0, 0}, {255, 255, 255}}
	src := planeImage(t, 2, 3, r, g, b)

	out, err := signal.ImageChannels(src)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 1, src.loads)
	for i, c := range out {
		assert.Equal(t, i, c.ID())
		assert.True(t, src.planes[i].Equal(c.Dense()))
	}
	pt := out[0].Domain().At(1, 2)
	assert.Equal(t, 1.0, pt.Y())
	assert.Equal(t, 2.0, pt.X())
}

// TestMediaFiles decodes WAV and PNG from disk, with a logger attached.
func TestMediaFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	wavPath := filepath.Join(dir, "stereo.wav")
	wbuf := &bytes.Buffer{}
	w := wav.NewWriter(wbuf, 3, 2, 8000, 16)
	require.NoError(t, w.WriteSamples([]wav.Sample{{Values: [2]int{4, 5}}, {Values: [2]int{-2, 2}}, {Values: [2]int{7, 8}}}))
	require.NoError(t, os.WriteFile(wavPath, wbuf.Bytes(), 0o600))

	mono, err := signal.MonoAudioFile(wavPath, signal.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 8}, mono.Values())

	chs, err := signal.AudioChannelsFile(wavPath, signal.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, chs, 2)
	assert.Equal(t, []float64{5, 2, 8}, chs[1].Values())
	assert.Contains(t, logs.String(), `msg="audio buffer released" channels=2`)

	pngPath := filepath.Join(dir, "px.png")
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	gray, err := signal.GrayImageFile(pngPath)
	require.NoError(t, err)
	want, _ := matrix.NewDenseFromRows([][]float64{{19, 255}})
	assert.True(t, want.Equal(gray.Dense()), "got %v", gray.Dense())

	planes, err := signal.ImageChannelsFile(pngPath, signal.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, planes, 3) // opaque truecolor PNG carries no alpha plane
	blue, _ := planes[2].At(0, 0)
	assert.Equal(t, 30.0, blue)

	_, err = signal.MonoAudioFile(filepath.Join(dir, "missing.wav"))
	assert.Error(t, err)
	_, err = signal.GrayImageFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

// writeMultiWAV writes interleaved 16-bit PCM with any channel count.
func writeMultiWAV(t *testing.T, path string, rate int, channels [][]int) {
	t.Helper()
	nch := len(channels)
	data := make([]int, 0, nch*len(channels[0]))
	for i := range channels[0] {
		for c := range channels {
			data = append(data, channels[c][i])
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	enc := audiowav.NewEncoder(f, rate, 16, nch, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nch, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

// TestAudioChannelsFile_ThreeChannels splits a 3-channel WAV from disk;
// only the mono downmix rejects that layout.
func TestAudioChannelsFile_ThreeChannels(t *testing.T) {
	t.Parallel()

	want := [][]int{{1, 2, 3, 4}, {-5, -6, -7, -8}, {1000, 0, -1000, 0}}
	path := filepath.Join(t.TempDir(), "three.wav")
	writeMultiWAV(t, path, 4, want)

	chs, err := signal.AudioChannelsFile(path)
	require.NoError(t, err)
	require.Len(t, chs, 3)
	for c, ch := range chs {
		assert.Equal(t, c, ch.ID())
		assert.Equal(t, 16, ch.SampleResolution())
		require.Equal(t, len(want[c]), ch.Len())
		for i, v := range want[c] {
			assert.Equal(t, float64(v), ch.At(i), "channel %d sample %d", c, i)
		}
	}

	_, err = signal.MonoAudioFile(path)
	assert.ErrorIs(t, err, media.ErrUnsupportedChannelLayout)
}
