package pcm

import (
	"fmt"
	"iter"
	"time"
)

func rangePanic(what string, got, max int) string {
	return fmt.Sprintf("pcm: %s %d out of range [0, %d]", what, got, max)
}

// Audio is an in-memory buffer of interleaved frames at a fixed sample
// rate. All frames share the same channel count and encoding. The zero
// value of every encoding is silence, so a freshly allocated buffer is
// silent.
type Audio[C Channel] struct {
	rate     uint32
	channels uint8
	data     []C
}

// NewAudio allocates a silent buffer of the given length in frames.
// Panics if channels is out of range [1, MaxChannels].
func NewAudio[C Channel](rate uint32, channels, frames int) *Audio[C] {
	if channels < 1 || channels > MaxChannels {
		panic(fmt.Sprintf("pcm: audio channel count %d out of range [1, %d]", channels, MaxChannels))
	}
	return &Audio[C]{
		rate:     rate,
		channels: uint8(channels),
		data:     make([]C, channels*frames),
	}
}

// NewAudioFrames builds a buffer from existing frames. All frames must
// share the same channel count; panics otherwise, or if frames is empty.
func NewAudioFrames[C Channel](rate uint32, frames []Frame[C]) *Audio[C] {
	if len(frames) == 0 {
		panic("pcm: audio needs at least one frame")
	}
	a := NewAudio[C](rate, frames[0].Count(), len(frames))
	for i, f := range frames {
		a.SetFrame(i, f)
	}
	return a
}

// SampleRate returns the sample rate in hertz.
func (a *Audio[C]) SampleRate() uint32 { return a.rate }

// Channels returns the channel count of every frame.
func (a *Audio[C]) Channels() int { return int(a.channels) }

// Len returns the buffer length in frames.
func (a *Audio[C]) Len() int { return len(a.data) / int(a.channels) }

// Duration returns the playback time of the buffer.
func (a *Audio[C]) Duration() time.Duration {
	return time.Duration(a.Len()) * time.Second / time.Duration(a.rate)
}

// Data returns the interleaved sample storage. The slice aliases the
// buffer; writes through it are visible to the Audio.
func (a *Audio[C]) Data() []C { return a.data }

// Frame returns the frame at index i. Panics if i is out of range.
func (a *Audio[C]) Frame(i int) Frame[C] {
	if i < 0 || i >= a.Len() {
		panic(rangePanic("frame index", i, a.Len()-1))
	}
	n := int(a.channels)
	return NewFrame(a.data[i*n : (i+1)*n]...)
}

// SetFrame replaces the frame at index i. Panics if i is out of range
// or the channel count differs.
func (a *Audio[C]) SetFrame(i int, f Frame[C]) {
	if i < 0 || i >= a.Len() {
		panic(rangePanic("frame index", i, a.Len()-1))
	}
	if f.Count() != int(a.channels) {
		panic(fmt.Sprintf("pcm: frame has %d channels, audio has %d", f.Count(), a.channels))
	}
	n := int(a.channels)
	copy(a.data[i*n:(i+1)*n], f.Channels())
}

// Frames iterates the buffer front to back.
func (a *Audio[C]) Frames() iter.Seq[Frame[C]] {
	return func(yield func(Frame[C]) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.Frame(i)) {
				return
			}
		}
	}
}

func (a *Audio[C]) checkRegion(from, to int) {
	if from < 0 || from > a.Len() {
		panic(rangePanic("region start", from, a.Len()))
	}
	if to < from || to > a.Len() {
		panic(rangePanic("region end", to, a.Len()))
	}
}

// Slice returns a view of the frames in [from, to). The view shares
// storage with a; writes through either are visible in both. Panics if
// the region is out of range.
func (a *Audio[C]) Slice(from, to int) *Audio[C] {
	a.checkRegion(from, to)
	n := int(a.channels)
	return &Audio[C]{
		rate:     a.rate,
		channels: a.channels,
		data:     a.data[from*n : to*n],
	}
}

// Silence overwrites the frames in [from, to) with silence.
// Panics if the region is out of range.
func (a *Audio[C]) Silence(from, to int) {
	a.checkRegion(from, to)
	n := int(a.channels)
	var zero C
	for i := from * n; i < to*n; i++ {
		a.data[i] = zero
	}
}

// Extend appends every frame of a bounded stream, converting encodings
// and channel counts as needed. Panics if the stream is unbounded.
func (a *Audio[C]) Extend(s Stream[C]) {
	n, ok := s.Len()
	if !ok {
		panic("pcm: cannot extend audio with an unbounded stream")
	}
	grown := make([]C, len(a.data), len(a.data)+n*int(a.channels))
	copy(grown, a.data)
	a.data = grown
	for f := range s.Frames() {
		f = f.Convert(int(a.channels))
		a.data = append(a.data, f.Channels()...)
	}
}
