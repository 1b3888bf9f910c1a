package pcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Channel mid-point float values. Fixed-point zero sits half a step
// above the exact center of the biased unsigned range, so its float
// image is one part in the full span rather than exactly zero.
const (
	ch16MidFloat = 1.0 / 65535.0
	ch24MidFloat = 1.0 / 16777215.0
)

func TestCh16Constants(t *testing.T) {
	assert.Equal(t, Ch16(-32768), Ch16Min)
	assert.Equal(t, Ch16(0), Ch16Mid)
	assert.Equal(t, Ch16(32767), Ch16Max)
}

func TestCh24Constants(t *testing.T) {
	assert.Equal(t, Ch24(-8388608), Ch24Min)
	assert.Equal(t, Ch24(0), Ch24Mid)
	assert.Equal(t, Ch24(8388607), Ch24Max)
}

func TestCh16FloatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Ch16
		f    float64
	}{
		{"Min", Ch16Min, -1.0},
		{"Mid", Ch16Mid, ch16MidFloat},
		{"Max", Ch16Max, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.f, tt.c.Float64(), 1e-12)
			assert.Equal(t, tt.c, Ch16FromFloat(tt.c.Float64()))
		})
	}
}

func TestCh24FloatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Ch24
		f    float64
	}{
		{"Min", Ch24Min, -1.0},
		{"Mid", Ch24Mid, ch24MidFloat},
		{"Max", Ch24Max, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.f, tt.c.Float64(), 1e-12)
			assert.Equal(t, tt.c, Ch24FromFloat(tt.c.Float64()))
		})
	}
}

func TestCh16FromFloatClamps(t *testing.T) {
	assert.Equal(t, Ch16Min, Ch16FromFloat(-2.0))
	assert.Equal(t, Ch16Max, Ch16FromFloat(2.0))
}

func TestCh32FromFloatClamps(t *testing.T) {
	assert.Equal(t, Ch32(-1), Ch32FromFloat(-3.5))
	assert.Equal(t, Ch32(1), Ch32FromFloat(1.5))
	assert.Equal(t, Ch32(0.25), Ch32FromFloat(0.25))
}

func TestCh16SaturatingAdd(t *testing.T) {
	assert.Equal(t, Ch16Max, Ch16Max.Add(Ch16Max))
	assert.Equal(t, Ch16Min, Ch16Min.Add(Ch16Min))
	assert.Equal(t, Ch16(300), Ch16(100).Add(Ch16(200)))
	assert.Equal(t, Ch16Max, Ch16(32000).Add(Ch16(1000)))
}

func TestCh16SaturatingSub(t *testing.T) {
	assert.Equal(t, Ch16Min, Ch16Min.Sub(Ch16Max))
	assert.Equal(t, Ch16Max, Ch16Max.Sub(Ch16Min))
	assert.Equal(t, Ch16(-100), Ch16(100).Sub(Ch16(200)))
}

func TestCh24SaturatingArith(t *testing.T) {
	assert.Equal(t, Ch24Max, Ch24Max.Add(Ch24Max))
	assert.Equal(t, Ch24Min, Ch24Min.Add(Ch24Min))
	assert.Equal(t, Ch24Min, Ch24Min.Sub(Ch24Max))
	assert.Equal(t, Ch24Max, Ch24Max.Sub(Ch24Min))
}

func TestCh32ArithDoesNotSaturate(t *testing.T) {
	// Float encodings follow IEEE semantics and may exceed full scale.
	assert.Equal(t, Ch32(2), Ch32(1).Add(Ch32(1)))
	assert.Equal(t, Ch32(-2), Ch32(-1).Add(Ch32(-1)))
	assert.Equal(t, Ch64(1.5), Ch64(0.75).Add(Ch64(0.75)))
}

func TestCh16Mul(t *testing.T) {
	assert.Equal(t, Ch16Max, Ch16Max.Mul(Ch16Max))
	assert.Equal(t, Ch16Max, Ch16Min.Mul(Ch16Min))
	assert.Equal(t, Ch16Min, Ch16Max.Mul(Ch16Min))
	assert.Equal(t, Ch16Mid, Ch16Mid.Mul(Ch16Max))
}

func TestCh24Mul(t *testing.T) {
	assert.Equal(t, Ch24Max, Ch24Max.Mul(Ch24Max))
	assert.Equal(t, Ch24Max, Ch24Min.Mul(Ch24Min))
	assert.Equal(t, Ch24Min, Ch24Max.Mul(Ch24Min))
}

func TestCh32Mul(t *testing.T) {
	assert.Equal(t, Ch32(0.25), Ch32(0.5).Mul(Ch32(0.5)))
	assert.Equal(t, Ch64(-0.5), Ch64(1).Mul(Ch64(-0.5)))
}

// Fixed-point negation is the unsigned complement, so the negative of
// MAX is exactly MIN and vice versa.
func TestCh16Neg(t *testing.T) {
	assert.Equal(t, Ch16Min, Ch16Max.Neg())
	assert.Equal(t, Ch16Max, Ch16Min.Neg())
	assert.Equal(t, Ch16(-1), Ch16Mid.Neg())
	assert.Equal(t, Ch16(-124), Ch16(123).Neg())
}

func TestCh24Neg(t *testing.T) {
	assert.Equal(t, Ch24Min, Ch24Max.Neg())
	assert.Equal(t, Ch24Max, Ch24Min.Neg())
	assert.Equal(t, Ch24(-1), Ch24Mid.Neg())
}

func TestCh32Neg(t *testing.T) {
	assert.Equal(t, Ch32(-1), Ch32(1).Neg())
	assert.Equal(t, Ch64(0.5), Ch64(-0.5).Neg())
}

func TestCh16Lerp(t *testing.T) {
	// t at MID keeps the start, t at MAX reaches the end.
	assert.Equal(t, Ch16(1000), Ch16(1000).Lerp(Ch16(2000), Ch16Mid))
	assert.Equal(t, Ch16(2000), Ch16(1000).Lerp(Ch16(2000), Ch16Max))
}

func TestCh32Lerp(t *testing.T) {
	assert.Equal(t, Ch32(0.5), Ch32(0).Lerp(Ch32(1), Ch32(0.5)))
	assert.Equal(t, Ch64(0.25), Ch64(0).Lerp(Ch64(1), Ch64(0.25)))
}

// 16 to 24 bit widening replicates the high byte into the new low
// byte, so full scale maps to full scale and narrowing back is exact.
func TestCh16Ch24Conversion(t *testing.T) {
	tests := []struct {
		name string
		c16  Ch16
		c24  Ch24
	}{
		{"Min", Ch16Min, Ch24Min},
		{"Mid", Ch16Mid, Ch24(128)},
		{"Max", Ch16Max, Ch24Max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.c24, tt.c16.Ch24())
			assert.Equal(t, tt.c16, tt.c24.Ch16())
		})
	}
}

func TestCh16RoundTripThroughWider(t *testing.T) {
	samples := []Ch16{Ch16Min, -12345, -1, 0, 1, 4660, 32000, Ch16Max}
	for _, c := range samples {
		assert.Equal(t, c, c.Ch24().Ch16(), "via Ch24")
		assert.Equal(t, c, c.Ch32().Ch16(), "via Ch32")
		assert.Equal(t, c, c.Ch64().Ch16(), "via Ch64")
	}
}

func TestCh24RoundTripThroughWider(t *testing.T) {
	samples := []Ch24{Ch24Min, -54321, -1, 0, 1, 1193046, Ch24Max}
	for _, c := range samples {
		assert.Equal(t, c, c.Ch32().Ch24(), "via Ch32")
		assert.Equal(t, c, c.Ch64().Ch24(), "via Ch64")
	}
}

func TestCh32RoundTripThroughCh64(t *testing.T) {
	samples := []Ch32{-1, -0.5, 0, 0.25, 1}
	for _, c := range samples {
		assert.Equal(t, c, c.Ch64().Ch32())
	}
}

func TestLossyNarrowingWithinOneStep(t *testing.T) {
	// 24 to 16 bit loses precision bounded by one quantization step.
	c := Ch24(1193046)
	back := c.Ch16().Ch24()
	diff := int32(c) - int32(back)
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, int32(256))
}

func TestToChannelDispatch(t *testing.T) {
	assert.Equal(t, Ch24(128), ToChannel[Ch24](Ch16Mid))
	assert.Equal(t, Ch16Max, ToChannel[Ch16](Ch24Max))
	assert.Equal(t, Ch16(100), ToChannel[Ch16](Ch16(100)))
	assert.InDelta(t, 1.0, float64(ToChannel[Ch64](Ch16Max)), 1e-12)
	assert.Equal(t, Ch16Min, ToChannel[Ch16](Ch32(-1)))
}

func TestFromFloat64Dispatch(t *testing.T) {
	assert.Equal(t, Ch16Max, FromFloat64[Ch16](1.0))
	assert.Equal(t, Ch24Min, FromFloat64[Ch24](-1.0))
	assert.Equal(t, Ch32(0.5), FromFloat64[Ch32](0.5))
	assert.Equal(t, Ch64(-0.25), FromFloat64[Ch64](-0.25))
}
