package pcm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-pcm/internal/testutil"
)

func TestNewResamplerValidation(t *testing.T) {
	_, err := NewResampler(0, 48000, 1)
	assert.ErrorIs(t, err, ErrZeroRate)

	_, err = NewResampler(44100, 0, 1)
	assert.ErrorIs(t, err, ErrZeroRate)

	_, err = NewResampler(44100, 48000, 0)
	assert.ErrorIs(t, err, ErrBadChannels)

	_, err = NewResampler(44100, 48000, MaxChannels+1)
	assert.ErrorIs(t, err, ErrBadChannels)

	// 2^32-5 is prime relative to 2, so the ratio cannot be reduced and
	// the filter design overflows 32-bit arithmetic.
	_, err = NewResampler(4294967291, 2, 1)
	assert.ErrorIs(t, err, ErrRatioOverflow)
}

func TestResamplerAccessors(t *testing.T) {
	r, err := NewResampler(44100, 48000, 2)
	require.NoError(t, err)

	assert.Equal(t, uint32(44100), r.InputRate())
	assert.Equal(t, uint32(48000), r.OutputRate())
	assert.Equal(t, 2, r.Channels())

	num, den := r.Ratio()
	assert.Equal(t, uint32(147), num)
	assert.Equal(t, uint32(160), den)

	assert.Equal(t, 80, r.InputLatency())
	assert.Equal(t, 87, r.OutputLatency())
}

func TestOutputFrames(t *testing.T) {
	assert.Equal(t, 279, OutputFrames(256, 44100, 48000))
	assert.Equal(t, 100, OutputFrames(100, 48000, 48000))
	assert.Equal(t, 128, OutputFrames(256, 96000, 48000))
	assert.Equal(t, 0, OutputFrames(0, 44100, 48000))
	assert.Equal(t, 0, OutputFrames(100, 0, 48000))
}

func TestPipeUnityRatioCopiesExactly(t *testing.T) {
	r, err := NewResampler(RateDAT, RateDAT, Stereo)
	require.NoError(t, err)

	src := NewAudio[Ch16](RateDAT, Stereo, 64)
	for i := 0; i < src.Len(); i++ {
		src.SetFrame(i, NewFrame(Ch16(i*100), Ch16(-i*100)))
	}
	dst := NewAudio[Ch16](RateDAT, Stereo, 64)

	n, err := Pipe(r, src, dst.SinkAll())
	require.NoError(t, err)
	assert.Equal(t, 64, n)
	assert.Equal(t, src.Data(), dst.Data())

	// Nothing is buffered at unity ratio.
	flushed, err := Flush(r, dst.SinkAll())
	require.NoError(t, err)
	assert.Equal(t, 0, flushed)
}

func TestResampleAudioSilence(t *testing.T) {
	src := NewAudio[Ch16](RateCD, Mono, 256)
	out, err := ResampleAudio[Ch16](src, RateDAT)
	require.NoError(t, err)

	assert.Equal(t, uint32(RateDAT), out.SampleRate())
	assert.Equal(t, Mono, out.Channels())
	assert.Equal(t, 279, out.Len())
	for _, v := range out.Data() {
		assert.Equal(t, Ch16Mid, v)
	}
}

func TestResampleAudioSameRateConverts(t *testing.T) {
	src := NewAudio[Ch16](RateCD, Mono, 4)
	src.SetFrame(0, NewFrame(Ch16Max))
	out, err := ResampleAudio[Ch24](src, RateCD)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Len())
	assert.Equal(t, NewFrame(Ch24Max), out.Frame(0))
}

func TestResampleAudioPreservesTone(t *testing.T) {
	const (
		inRate  = RateTelephony // 8000 Hz
		outRate = 16000
		freq    = 1000.0
		fftSize = 4096
	)
	samples := testutil.Sine(int(inRate), freq, 0.5, inRate)
	src := AudioFromFloat64(inRate, Mono, samples)

	out, err := ResampleAudio[Ch64](src, outRate)
	require.NoError(t, err)
	assert.Equal(t, OutputFrames(src.Len(), inRate, outRate), out.Len())

	// Analyze a window well past the filter transient.
	window := Float64Data(out)[512 : 512+fftSize]
	testutil.AssertNoNaNOrInf(t, window)

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, window)
	peakBin, peakMag := 0, 0.0
	for k := 1; k < len(coeffs); k++ {
		if mag := cmplxAbs(coeffs[k]); mag > peakMag {
			peakBin, peakMag = k, mag
		}
	}
	wantBin := int(freq * fftSize / outRate)
	assert.InDelta(t, wantBin, peakBin, 1, "dominant tone moved")

	// The tone's amplitude survives resampling.
	testutil.AssertRelativeError(t, 0.5, 2*peakMag/fftSize, 0.05)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func TestResamplerReset(t *testing.T) {
	r, err := NewResampler(RateCD, RateDAT, Mono)
	require.NoError(t, err)

	samples := testutil.Sine(512, 440, 0.8, RateCD)
	src := AudioFromFloat64(RateCD, Mono, samples)

	first := NewAudio[Ch64](RateDAT, Mono, 1024)
	n1, err := Pipe(r, src, first.SinkAll())
	require.NoError(t, err)
	require.Positive(t, n1)

	r.Reset()
	second := NewAudio[Ch64](RateDAT, Mono, 1024)
	n2, err := Pipe(r, src, second.SinkAll())
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, first.Data(), second.Data())
}

func TestPipeMidStreamRateChange(t *testing.T) {
	r, err := NewResampler(RateCD, RateDAT, Mono)
	require.NoError(t, err)

	dst := NewAudio[Ch64](RateDAT, Mono, 2048)
	sink := dst.SinkAll()

	chunk := AudioFromFloat64(RateCD, Mono, testutil.Sine(256, 440, 0.5, RateCD))
	n1, err := Pipe(r, chunk, sink)
	require.NoError(t, err)
	require.Positive(t, n1)

	// The source drops to 32 kHz mid-stream; the resampler glides to the
	// new ratio instead of clicking.
	slower := AudioFromFloat64(32000, Mono, testutil.Sine(256, 440, 0.5, 32000))
	n2, err := Pipe(r, slower, sink)
	require.NoError(t, err)
	assert.Positive(t, n2)
	assert.Equal(t, uint32(32000), r.InputRate())

	num, den := r.Ratio()
	assert.Equal(t, uint32(2), num)
	assert.Equal(t, uint32(3), den)

	testutil.AssertAllInRange(t, Float64Data(dst)[:n1+n2], -1, 1)
}

func TestPipePanicsOnMismatch(t *testing.T) {
	r, err := NewResampler(RateCD, RateDAT, Mono)
	require.NoError(t, err)

	src := NewAudio[Ch16](RateCD, Mono, 16)
	wrongRate := NewAudio[Ch16](RateCD, Mono, 16)
	assert.Panics(t, func() { _, _ = Pipe(r, src, wrongRate.SinkAll()) })

	stereo := NewAudio[Ch16](RateCD, Stereo, 16)
	dst := NewAudio[Ch16](RateDAT, Mono, 16)
	assert.Panics(t, func() { _, _ = Pipe(r, stereo, dst.SinkAll()) })

	assert.Panics(t, func() { _, _ = Flush(r, wrongRate.SinkAll()) })
}

func TestConvertAudio(t *testing.T) {
	src := NewAudio[Ch16](RateCD, Stereo, 2)
	src.SetFrame(0, NewFrame(Ch16Max, Ch16Min))
	out := ConvertAudio[Ch24](src)
	assert.Equal(t, uint32(RateCD), out.SampleRate())
	assert.Equal(t, NewFrame(Ch24Max, Ch24Min), out.Frame(0))
	assert.Equal(t, NewFrame(Ch24(128), Ch24(128)), out.Frame(1))
}

func TestRemixAudio(t *testing.T) {
	src := NewAudio[Ch64](RateCD, Stereo, 3)
	for i := 0; i < src.Len(); i++ {
		src.SetFrame(i, NewFrame(Ch64(0.4), Ch64(0.4)))
	}
	mono := RemixAudio(src, Mono)
	assert.Equal(t, Mono, mono.Channels())
	assert.Equal(t, 3, mono.Len())
	// Left and right fold at half gain each.
	assert.InDelta(t, 0.4, float64(mono.Frame(0).Chan(0)), testutil.MixTolerance)

	same := RemixAudio(src, Stereo)
	assert.Equal(t, src.Data(), same.Data())
	assert.NotSame(t, src, same)
}

func TestRemixAudioMonoToStereoDuplicates(t *testing.T) {
	src := AudioFromFloat64(RateCD, Mono, []float64{0, 0.25, 0.5, 0.75})
	out := RemixAudio(src, Stereo)
	require.Equal(t, 4, out.Len())
	for i := 0; i < out.Len(); i++ {
		f := out.Frame(i)
		assert.Equal(t, f.Chan(0), f.Chan(1), "frame %d", i)
		assert.Equal(t, src.Frame(i).Chan(0), f.Chan(0), "frame %d", i)
	}
}

func TestConvertAudioFullScaleRoundTrip(t *testing.T) {
	src := AudioFromInt16(RateCD, Mono, []int16{-32768, 0, 32767})
	wide := ConvertAudio[Ch32](src)
	back := ConvertAudio[Ch16](wide)
	assert.Equal(t, []int16{-32768, 0, 32767}, Int16Data(back))
}
