package signal_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/udsp/dist"
	"github.com/katalvlaran/udsp/domain"
	"github.com/katalvlaran/udsp/matrix"
	"github.com/katalvlaran/udsp/media"
	"github.com/katalvlaran/udsp/signal"
)

// ExampleNewPulse1D shows the closed pulse edges on a 4 Hz axis.
func ExampleNewPulse1D() {
	x, _ := domain.NewAxis(1, 4, domain.WithStart(-0.5)) // -0.5 -0.25 0 0.25
	g, err := signal.NewPulse1D(x, signal.PulseParams{Center: 0, Width: 0.5, A: 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Values())

	h, _ := g.Rebuild(signal.PulseParams{Center: 0, Width: 0, A: 2})
	fmt.Println(h.Values())
	// Output:
	// [0 1 1 1]
	// [0 0 2 0]
}

// ExampleNewNoise1D draws truncated Laplace noise reproducibly.
func ExampleNewNoise1D() {
	x, _ := domain.NewAxis(1, 1000)
	cfg := dist.Laplace(1).WithTrunc(-1, 1)
	a, _ := signal.NewNoise1D(x, signal.NoiseParams{Dist: cfg}, signal.WithSeed(7), signal.WithWorkers(4))
	b, _ := signal.NewNoise1D(x, signal.NoiseParams{Dist: cfg}, signal.WithSeed(7), signal.WithWorkers(4))

	inside := true
	for _, v := range a.Values() {
		inside = inside && v >= -1 && v <= 1
	}
	fmt.Println(a.Len(), inside, a.At(500) == b.At(500))

	_, err := signal.NewNoise1D(x, signal.NoiseParams{Dist: dist.Config{Name: "poisson"}})
	fmt.Println(errors.Is(err, dist.ErrUnknownDistribution))
	// Output:
	// 1000 true true
	// true
}

// ExampleNewMonoAudio downmixes a stereo buffer with round-half-to-even.
func ExampleNewMonoAudio() {
	buf, _ := media.NewAudioBuffer(
		media.AudioMeta{Size: 2, SampleRate: 2, BitsPerSample: 16},
		[][]float64{{4, 5}, {5, 6}},
	)
	g, _ := signal.NewMonoAudio(buf)
	fmt.Println(g.Values(), g.SampleResolution())
	// Output:
	// [4 6] 16
}

// ExampleImageChannels splits an RGB pixel and converts it to luma.
func ExampleImageChannels() {
	planes := make([]*matrix.Dense, 3)
	for k, v := range []float64{10, 20, 30} {
		planes[k], _ = matrix.NewDenseFromRows([][]float64{{v}})
	}
	img, _ := media.NewImageBuffer(media.ImageMeta{Width: 1, Height: 1}, planes)

	chs, _ := signal.ImageChannels(img)
	parts := make([]string, len(chs))
	for i, c := range chs {
		v, _ := c.At(0, 0)
		parts[i] = fmt.Sprint(c.ID(), "=", v)
	}
	fmt.Println(strings.Join(parts, " "))

	gray, _ := signal.NewGrayImage(img)
	v, _ := gray.At(0, 0)
	fmt.Println(v)
	// Output:
	// 0=10 1=20 2=30
	// 19
}
