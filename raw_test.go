package pcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioFromInt16SharesStorage(t *testing.T) {
	data := []int16{1, 2, 3, 4}
	a := AudioFromInt16(RateCD, Stereo, data)

	require.Equal(t, 2, a.Len())
	assert.Equal(t, NewFrame(Ch16(1), Ch16(2)), a.Frame(0))

	// Writes through the Audio are visible in the source slice.
	a.SetFrame(0, NewFrame(Ch16(9), Ch16(8)))
	assert.Equal(t, []int16{9, 8, 3, 4}, data)

	// And the exposed view aliases the same memory.
	Int16Data(a)[3] = 7
	assert.Equal(t, int16(7), data[3])
}

func TestAudioFromInt16PanicsOnPartialFrame(t *testing.T) {
	assert.Panics(t, func() { AudioFromInt16(RateCD, Stereo, []int16{1, 2, 3}) })
	assert.Panics(t, func() { AudioFromInt16(RateCD, 0, nil) })
}

func TestAudioFromInt24(t *testing.T) {
	data := []int32{-8388608, 8388607}
	a := AudioFromInt24(RateCD, Mono, data)
	assert.Equal(t, NewFrame(Ch24Min), a.Frame(0))
	assert.Equal(t, NewFrame(Ch24Max), a.Frame(1))
	assert.Equal(t, data, Int24Data(a))
}

func TestAudioFromFloat32(t *testing.T) {
	data := []float32{-1, 0.5}
	a := AudioFromFloat32(RateDAT, Mono, data)
	assert.Equal(t, NewFrame(Ch32(-1)), a.Frame(0))

	Float32Data(a)[1] = 0.25
	assert.Equal(t, float32(0.25), data[1])
}

func TestAudioFromFloat64(t *testing.T) {
	data := []float64{0.125, -0.125}
	a := AudioFromFloat64(RateDAT, Stereo, data)
	require.Equal(t, 1, a.Len())
	assert.Equal(t, NewFrame(Ch64(0.125), Ch64(-0.125)), a.Frame(0))
	assert.Equal(t, data, Float64Data(a))
}

func TestRawRoundTripPreservesLayout(t *testing.T) {
	a := NewAudio[Ch16](RateCD, Stereo, 2)
	a.SetFrame(0, NewFrame(Ch16(10), Ch16(20)))
	a.SetFrame(1, NewFrame(Ch16(30), Ch16(40)))
	assert.Equal(t, []int16{10, 20, 30, 40}, Int16Data(a))
}
