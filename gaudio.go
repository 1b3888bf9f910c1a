package pcm

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

// Interop with github.com/go-audio buffers. These conversions copy: the
// go-audio buffers store samples as int or float64 regardless of bit
// depth, so there is no shared layout to reinterpret. Buffer contents
// come from outside the program, so malformed buffers are reported as
// errors rather than panics.

// Buffer interop errors
var (
	// ErrNilBuffer is returned when the buffer or its format is nil.
	ErrNilBuffer = errors.New("pcm: nil buffer")

	// ErrBadChannels is returned when the buffer's channel count is
	// outside [1, MaxChannels] or does not divide the sample count.
	ErrBadChannels = errors.New("pcm: bad channel count")

	// ErrBadBitDepth is returned when an int buffer's bit depth does
	// not match the requested encoding.
	ErrBadBitDepth = errors.New("pcm: bad bit depth")
)

func audioFormat[C Channel](a *Audio[C]) *audio.Format {
	return &audio.Format{
		NumChannels: a.Channels(),
		SampleRate:  int(a.SampleRate()),
	}
}

// AudioFromIntBuffer converts a 16-bit or 24-bit go-audio buffer. The
// returned audio uses Ch16 for 16-bit sources and is widened from Ch24
// otherwise; use AudioFromIntBuffer24 to keep 24-bit precision.
func AudioFromIntBuffer(buf *audio.IntBuffer) (*Audio[Ch16], error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNilBuffer
	}
	channels := buf.Format.NumChannels
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if len(buf.Data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrBadChannels, len(buf.Data), channels)
	}
	switch buf.SourceBitDepth {
	case 0, 16:
	case 24:
		wide, err := AudioFromIntBuffer24(buf)
		if err != nil {
			return nil, err
		}
		return ConvertAudio[Ch16](wide), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadBitDepth, buf.SourceBitDepth)
	}
	a := NewAudio[Ch16](uint32(buf.Format.SampleRate), channels, len(buf.Data)/channels)
	for i, v := range buf.Data {
		a.data[i] = Ch16(saturate16(int32(v)))
	}
	return a, nil
}

// AudioFromIntBuffer24 converts a 24-bit go-audio buffer without losing
// precision.
func AudioFromIntBuffer24(buf *audio.IntBuffer) (*Audio[Ch24], error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNilBuffer
	}
	channels := buf.Format.NumChannels
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if len(buf.Data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrBadChannels, len(buf.Data), channels)
	}
	if buf.SourceBitDepth != 0 && buf.SourceBitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", ErrBadBitDepth, buf.SourceBitDepth)
	}
	a := NewAudio[Ch24](uint32(buf.Format.SampleRate), channels, len(buf.Data)/channels)
	for i, v := range buf.Data {
		a.data[i] = Ch24(saturate24(int64(v)))
	}
	return a, nil
}

// ToIntBuffer converts 16-bit audio into a go-audio int buffer.
func ToIntBuffer(a *Audio[Ch16]) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         audioFormat(a),
		SourceBitDepth: 16,
		Data:           make([]int, len(a.data)),
	}
	for i, v := range a.data {
		buf.Data[i] = int(v)
	}
	return buf
}

// ToIntBuffer24 converts 24-bit audio into a go-audio int buffer.
func ToIntBuffer24(a *Audio[Ch24]) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         audioFormat(a),
		SourceBitDepth: 24,
		Data:           make([]int, len(a.data)),
	}
	for i, v := range a.data {
		buf.Data[i] = int(v)
	}
	return buf
}

// AudioFromFloatBuffer converts a go-audio float buffer. Samples outside
// [-1, 1] are kept as-is; float encodings do not clamp stored values.
func AudioFromFloatBuffer(buf *audio.FloatBuffer) (*Audio[Ch64], error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNilBuffer
	}
	channels := buf.Format.NumChannels
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if len(buf.Data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrBadChannels, len(buf.Data), channels)
	}
	a := NewAudio[Ch64](uint32(buf.Format.SampleRate), channels, len(buf.Data)/channels)
	for i, v := range buf.Data {
		a.data[i] = Ch64(v)
	}
	return a, nil
}

// ToFloatBuffer converts 64-bit float audio into a go-audio float
// buffer.
func ToFloatBuffer(a *Audio[Ch64]) *audio.FloatBuffer {
	buf := &audio.FloatBuffer{
		Format: audioFormat(a),
		Data:   make([]float64, len(a.data)),
	}
	for i, v := range a.data {
		buf.Data[i] = float64(v)
	}
	return buf
}

// AudioFromFloat32Buffer converts a go-audio float32 buffer.
func AudioFromFloat32Buffer(buf *audio.Float32Buffer) (*Audio[Ch32], error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNilBuffer
	}
	channels := buf.Format.NumChannels
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	if len(buf.Data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrBadChannels, len(buf.Data), channels)
	}
	a := NewAudio[Ch32](uint32(buf.Format.SampleRate), channels, len(buf.Data)/channels)
	for i, v := range buf.Data {
		a.data[i] = Ch32(v)
	}
	return a, nil
}

// ToFloat32Buffer converts 32-bit float audio into a go-audio float32
// buffer.
func ToFloat32Buffer(a *Audio[Ch32]) *audio.Float32Buffer {
	buf := &audio.Float32Buffer{
		Format: audioFormat(a),
		Data:   make([]float32, len(a.data)),
	}
	for i, v := range a.data {
		buf.Data[i] = float32(v)
	}
	return buf
}
