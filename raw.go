package pcm

import (
	"fmt"
	"unsafe"
)

// Zero-copy interop with flat scalar buffers. A frame is exactly its
// channel count of contiguous scalars with no padding, so an interleaved
// scalar slice and an Audio of the matching encoding share one memory
// layout. The conversions below reinterpret the storage; no samples are
// copied, and writes through either view are visible in the other.

func checkRaw(n, channels int) {
	if channels < 1 || channels > MaxChannels {
		panic(fmt.Sprintf("pcm: audio channel count %d out of range [1, %d]", channels, MaxChannels))
	}
	if n%channels != 0 {
		panic(fmt.Sprintf("pcm: raw sample count %d is not a multiple of %d channels", n, channels))
	}
}

func rawAudio[C Channel, S int16 | int32 | float32 | float64](rate uint32, channels int, data []S) *Audio[C] {
	checkRaw(len(data), channels)
	return &Audio[C]{
		rate:     rate,
		channels: uint8(channels),
		data:     unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(data))), len(data)),
	}
}

func rawData[S int16 | int32 | float32 | float64, C Channel](a *Audio[C]) []S {
	return unsafe.Slice((*S)(unsafe.Pointer(unsafe.SliceData(a.data))), len(a.data))
}

// AudioFromInt16 wraps an interleaved int16 buffer as 16-bit audio.
// Panics if the sample count is not a multiple of the channel count.
func AudioFromInt16(rate uint32, channels int, data []int16) *Audio[Ch16] {
	return rawAudio[Ch16](rate, channels, data)
}

// Int16Data exposes 16-bit audio as its interleaved int16 storage.
func Int16Data(a *Audio[Ch16]) []int16 { return rawData[int16](a) }

// AudioFromInt24 wraps an interleaved buffer of 24-bit samples, each
// sign-extended into an int32 cell, as 24-bit audio. Panics if the
// sample count is not a multiple of the channel count.
func AudioFromInt24(rate uint32, channels int, data []int32) *Audio[Ch24] {
	return rawAudio[Ch24](rate, channels, data)
}

// Int24Data exposes 24-bit audio as its interleaved int32 storage.
func Int24Data(a *Audio[Ch24]) []int32 { return rawData[int32](a) }

// AudioFromFloat32 wraps an interleaved float32 buffer as 32-bit float
// audio. Panics if the sample count is not a multiple of the channel
// count.
func AudioFromFloat32(rate uint32, channels int, data []float32) *Audio[Ch32] {
	return rawAudio[Ch32](rate, channels, data)
}

// Float32Data exposes 32-bit float audio as its interleaved float32
// storage.
func Float32Data(a *Audio[Ch32]) []float32 { return rawData[float32](a) }

// AudioFromFloat64 wraps an interleaved float64 buffer as 64-bit float
// audio. Panics if the sample count is not a multiple of the channel
// count.
func AudioFromFloat64(rate uint32, channels int, data []float64) *Audio[Ch64] {
	return rawAudio[Ch64](rate, channels, data)
}

// Float64Data exposes 64-bit float audio as its interleaved float64
// storage.
func Float64Data(a *Audio[Ch64]) []float64 { return rawData[float64](a) }
