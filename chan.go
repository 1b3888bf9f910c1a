package pcm

import "math"

// Channel value ranges and interesting constants.
//
// Each encoding defines MIN (full-scale negative), MID (digital silence) and
// MAX (full-scale positive). For the integer encodings the signed range is
// asymmetric around zero, so MID does not map to exactly 0.0 in floating
// point: Ch16Mid converts to 1/65535 (~0.0000153) and Ch24Mid to 1/16777215.
// This asymmetry is intentional and preserved for bit-compatibility with
// existing PCM pipelines; do not "fix" it by rounding to zero.
const (
	// Ch16Min is the most negative 16-bit sample value.
	Ch16Min Ch16 = math.MinInt16
	// Ch16Mid is 16-bit digital silence.
	Ch16Mid Ch16 = 0
	// Ch16Max is the most positive 16-bit sample value.
	Ch16Max Ch16 = math.MaxInt16

	// Ch24Min is the most negative 24-bit sample value.
	Ch24Min Ch24 = -8388608
	// Ch24Mid is 24-bit digital silence.
	Ch24Mid Ch24 = 0
	// Ch24Max is the most positive 24-bit sample value.
	Ch24Max Ch24 = 8388607

	// Ch32Min is full-scale negative for 32-bit float samples.
	Ch32Min Ch32 = -1.0
	// Ch32Mid is 32-bit float digital silence.
	Ch32Mid Ch32 = 0.0
	// Ch32Max is full-scale positive for 32-bit float samples.
	Ch32Max Ch32 = 1.0

	// Ch64Min is full-scale negative for 64-bit float samples.
	Ch64Min Ch64 = -1.0
	// Ch64Mid is 64-bit float digital silence.
	Ch64Mid Ch64 = 0.0
	// Ch64Max is full-scale positive for 64-bit float samples.
	Ch64Max Ch64 = 1.0
)

// Scaling factors mapping [-1, 1] float onto the integer ranges.
// The half-step scale (32767.5 rather than 32767) together with floor
// rounding makes the float mapping bijective on MIN/MID/MAX.
const (
	ch16Scale  = 32767.5
	ch16Offset = 1.0 / 65535.0

	ch24Scale  = 8388607.5
	ch24Offset = 1.0 / 16777215.0
)

// Ch16 is a 16-bit signed integer sample channel.
type Ch16 int16

// Ch24 is a 24-bit signed integer sample channel stored in a 32-bit cell.
// Valid values are in [Ch24Min, Ch24Max]; the top byte is sign extension.
type Ch24 int32

// Ch32 is a 32-bit IEEE floating point sample channel.
// Nominal full scale is [-1, 1] but arithmetic does not clamp, so transient
// values outside that range are representable (matching unclamped IEEE
// summation semantics).
type Ch32 float32

// Ch64 is a 64-bit IEEE floating point sample channel.
type Ch64 float64

// Channel is the constraint satisfied by the four sample encodings.
// Generic code converts through float64 with FromFloat64 and Float64;
// encoding-exact conversions go through ToChannel.
type Channel interface {
	Ch16 | Ch24 | Ch32 | Ch64

	// Float64 returns the sample's amplitude as a 64-bit float.
	Float64() float64
}

// clampUnit limits f to the nominal [-1, 1] amplitude range.
func clampUnit(f float64) float64 {
	return math.Min(1.0, math.Max(-1.0, f))
}

// NewCh16 creates a 16-bit channel value.
func NewCh16(v int16) Ch16 { return Ch16(v) }

// NewCh24 creates a 24-bit channel value, saturating v into the valid
// 24-bit range.
func NewCh24(v int32) Ch24 {
	if v > int32(Ch24Max) {
		return Ch24Max
	}
	if v < int32(Ch24Min) {
		return Ch24Min
	}
	return Ch24(v)
}

// NewCh32 creates a 32-bit float channel value clamped to [-1, 1].
func NewCh32(v float32) Ch32 {
	return Ch32(clampUnit(float64(v)))
}

// NewCh64 creates a 64-bit float channel value clamped to [-1, 1].
func NewCh64(v float64) Ch64 {
	return Ch64(clampUnit(v))
}

// Ch16FromFloat converts an amplitude in [-1, 1] to a 16-bit sample.
// Input is clamped first; the scaled value is rounded with floor so that
// -1.0 maps to Ch16Min and 1.0 maps to Ch16Max exactly.
func Ch16FromFloat(f float64) Ch16 {
	return Ch16(math.Floor(clampUnit(f) * ch16Scale))
}

// Ch24FromFloat converts an amplitude in [-1, 1] to a 24-bit sample.
func Ch24FromFloat(f float64) Ch24 {
	return Ch24(math.Floor(clampUnit(f) * ch24Scale))
}

// Ch32FromFloat converts an amplitude to a 32-bit float sample,
// clamping to [-1, 1].
func Ch32FromFloat(f float64) Ch32 {
	return Ch32(clampUnit(f))
}

// Ch64FromFloat converts an amplitude to a 64-bit float sample,
// clamping to [-1, 1].
func Ch64FromFloat(f float64) Ch64 {
	return Ch64(clampUnit(f))
}

// Float64 returns the amplitude of the sample. Note the documented MID
// asymmetry: Ch16Mid.Float64() is 1/65535, not 0.
func (c Ch16) Float64() float64 {
	return float64(c)/ch16Scale + ch16Offset
}

// Float64 returns the amplitude of the sample.
func (c Ch24) Float64() float64 {
	return float64(c)/ch24Scale + ch24Offset
}

// Float64 returns the amplitude of the sample.
func (c Ch32) Float64() float64 { return float64(c) }

// Float64 returns the amplitude of the sample.
func (c Ch64) Float64() float64 { return float64(c) }

// saturate16 clamps a widened intermediate back into the 16-bit range.
func saturate16(v int32) Ch16 {
	if v > math.MaxInt16 {
		return Ch16Max
	}
	if v < math.MinInt16 {
		return Ch16Min
	}
	return Ch16(v)
}

// saturate24 clamps a widened intermediate back into the 24-bit range.
func saturate24(v int64) Ch24 {
	if v > int64(Ch24Max) {
		return Ch24Max
	}
	if v < int64(Ch24Min) {
		return Ch24Min
	}
	return Ch24(v)
}

// Add returns c + o, saturating at Ch16Min/Ch16Max.
func (c Ch16) Add(o Ch16) Ch16 { return saturate16(int32(c) + int32(o)) }

// Sub returns c - o, saturating at Ch16Min/Ch16Max.
func (c Ch16) Sub(o Ch16) Ch16 { return saturate16(int32(c) - int32(o)) }

// Mul returns the full-scale product of two samples: multiplying two
// full-scale values yields full scale. The product is computed in a wider
// integer and shifted back down, so it cannot overflow.
func (c Ch16) Mul(o Ch16) Ch16 {
	return Ch16((int32(c) + 1) * int32(o) >> 15)
}

// Neg inverts the sound wave. This is the unsigned-complement inversion
// (-x-1), not arithmetic negation: Ch16Max.Neg() == Ch16Min and
// Ch16Min.Neg() == Ch16Max with no overflow at the boundary.
func (c Ch16) Neg() Ch16 { return ^c }

// Lerp linearly interpolates from c toward o by t, using the encoding's
// saturating arithmetic.
func (c Ch16) Lerp(o, t Ch16) Ch16 {
	return c.Add(t.Mul(o.Sub(c)))
}

// Add returns c + o, saturating at Ch24Min/Ch24Max.
func (c Ch24) Add(o Ch24) Ch24 { return saturate24(int64(c) + int64(o)) }

// Sub returns c - o, saturating at Ch24Min/Ch24Max.
func (c Ch24) Sub(o Ch24) Ch24 { return saturate24(int64(c) - int64(o)) }

// Mul returns the full-scale product of two samples.
func (c Ch24) Mul(o Ch24) Ch24 {
	return Ch24((int64(c) + 1) * int64(o) >> 23)
}

// Neg inverts the sound wave by unsigned complement (see Ch16.Neg).
func (c Ch24) Neg() Ch24 { return ^c }

// Lerp linearly interpolates from c toward o by t.
func (c Ch24) Lerp(o, t Ch24) Ch24 {
	return c.Add(t.Mul(o.Sub(c)))
}

// Add returns c + o. Float channels do not saturate.
func (c Ch32) Add(o Ch32) Ch32 { return c + o }

// Sub returns c - o.
func (c Ch32) Sub(o Ch32) Ch32 { return c - o }

// Mul returns c * o.
func (c Ch32) Mul(o Ch32) Ch32 { return c * o }

// Neg inverts the sound wave.
func (c Ch32) Neg() Ch32 { return -c }

// Lerp linearly interpolates from c toward o by t.
func (c Ch32) Lerp(o, t Ch32) Ch32 {
	return c + t*(o-c)
}

// Add returns c + o. Float channels do not saturate.
func (c Ch64) Add(o Ch64) Ch64 { return c + o }

// Sub returns c - o.
func (c Ch64) Sub(o Ch64) Ch64 { return c - o }

// Mul returns c * o.
func (c Ch64) Mul(o Ch64) Ch64 { return c * o }

// Neg inverts the sound wave.
func (c Ch64) Neg() Ch64 { return -c }

// Lerp linearly interpolates from c toward o by t.
func (c Ch64) Lerp(o, t Ch64) Ch64 {
	return c + t*(o-c)
}

// Ch24 widens a 16-bit sample to 24 bits by byte replication, the exact
// inverse of Ch24.Ch16 on round trips.
func (c Ch16) Ch24() Ch24 {
	u := uint16(c) + 0x8000
	v := uint32(u)<<8 | uint32(u)>>8
	return Ch24(int32(v) - 8388608)
}

// Ch32 converts a 16-bit sample to 32-bit float.
func (c Ch16) Ch32() Ch32 {
	return Ch32(float32(c)/ch16Scale + ch16Offset)
}

// Ch64 converts a 16-bit sample to 64-bit float.
func (c Ch16) Ch64() Ch64 { return Ch64(c.Float64()) }

// Ch16 narrows a 24-bit sample to 16 bits by dropping the low byte.
func (c Ch24) Ch16() Ch16 { return Ch16(c >> 8) }

// Ch32 converts a 24-bit sample to 32-bit float. The 24-bit mantissa of
// float32 is wide enough that converting back recovers the sample exactly.
func (c Ch24) Ch32() Ch32 { return Ch32(c.Float64()) }

// Ch64 converts a 24-bit sample to 64-bit float.
func (c Ch24) Ch64() Ch64 { return Ch64(c.Float64()) }

// Ch16 quantizes a 32-bit float sample to 16 bits.
func (c Ch32) Ch16() Ch16 { return Ch16FromFloat(float64(c)) }

// Ch24 quantizes a 32-bit float sample to 24 bits.
func (c Ch32) Ch24() Ch24 { return Ch24FromFloat(float64(c)) }

// Ch64 widens a 32-bit float sample, clamping to [-1, 1].
func (c Ch32) Ch64() Ch64 { return Ch64FromFloat(float64(c)) }

// Ch16 quantizes a 64-bit float sample to 16 bits.
func (c Ch64) Ch16() Ch16 { return Ch16FromFloat(float64(c)) }

// Ch24 quantizes a 64-bit float sample to 24 bits.
func (c Ch64) Ch24() Ch24 { return Ch24FromFloat(float64(c)) }

// Ch32 narrows a 64-bit float sample, clamping to [-1, 1].
func (c Ch64) Ch32() Ch32 { return Ch32FromFloat(float64(c)) }
