package pcm

import (
	"fmt"
	"iter"
)

// Stream produces a lazy sequence of frames. A stream may lack an
// inherent sample rate (a silence generator has none) and may be
// unbounded; both properties report ok=false in that case. Operations
// that consume a whole stream must reject unbounded streams rather than
// truncate them.
type Stream[C Channel] interface {
	// SampleRate returns the stream's rate in hertz, or ok=false when
	// the stream has no inherent rate.
	SampleRate() (uint32, bool)

	// Len returns the number of frames remaining, or ok=false when the
	// stream is unbounded.
	Len() (int, bool)

	// Frames yields the stream's frames in order. The sequence may be
	// ranged over once; bounded streams end, unbounded streams do not.
	Frames() iter.Seq[Frame[C]]
}

// Sink accepts frames into a fixed-capacity destination at a concrete
// sample rate.
type Sink[C Channel] interface {
	// SampleRate returns the destination rate in hertz.
	SampleRate() uint32

	// Len returns the remaining frame capacity.
	Len() int

	// SinkWith writes frames from the sequence until the sink is full
	// or the sequence ends, and returns the number of frames written.
	// Frames are remixed to the sink's channel count as needed.
	SinkWith(frames iter.Seq[Frame[C]]) int
}

// AudioStream is a bounded read-only view over a region of an Audio.
type AudioStream[C Channel] struct {
	audio    *Audio[C]
	from, to int
}

// Stream returns a bounded stream over the frames in [from, to).
// Panics if the region is out of range.
func (a *Audio[C]) Stream(from, to int) *AudioStream[C] {
	a.checkRegion(from, to)
	return &AudioStream[C]{audio: a, from: from, to: to}
}

// StreamAll returns a bounded stream over the whole buffer.
func (a *Audio[C]) StreamAll() *AudioStream[C] { return a.Stream(0, a.Len()) }

func (s *AudioStream[C]) SampleRate() (uint32, bool) { return s.audio.rate, true }

func (s *AudioStream[C]) Len() (int, bool) { return s.to - s.from, true }

func (s *AudioStream[C]) Frames() iter.Seq[Frame[C]] {
	return func(yield func(Frame[C]) bool) {
		for i := s.from; i < s.to; i++ {
			if !yield(s.audio.Frame(i)) {
				return
			}
		}
	}
}

// AudioDrain is a stream that consumes its Audio: frames taken from it
// are removed from the front of the buffer once iteration stops.
type AudioDrain[C Channel] struct {
	audio *Audio[C]
}

// Drain returns a stream that removes frames from the front of the
// buffer as they are consumed.
func (a *Audio[C]) Drain() *AudioDrain[C] { return &AudioDrain[C]{audio: a} }

func (d *AudioDrain[C]) SampleRate() (uint32, bool) { return d.audio.rate, true }

func (d *AudioDrain[C]) Len() (int, bool) { return d.audio.Len(), true }

func (d *AudioDrain[C]) Frames() iter.Seq[Frame[C]] {
	return func(yield func(Frame[C]) bool) {
		taken := 0
		defer func() {
			n := int(d.audio.channels)
			d.audio.data = d.audio.data[:copy(d.audio.data, d.audio.data[taken*n:])]
		}()
		for taken < d.audio.Len() {
			if !yield(d.audio.Frame(taken)) {
				taken++
				return
			}
			taken++
		}
	}
}

// AudioSink writes frames into a region of an Audio. Successive
// SinkWith calls continue where the previous one stopped.
type AudioSink[C Channel] struct {
	audio *Audio[C]
	pos   int
	to    int
}

// Sink returns a sink over the frames in [from, to). Panics if the
// region is out of range.
func (a *Audio[C]) Sink(from, to int) *AudioSink[C] {
	a.checkRegion(from, to)
	return &AudioSink[C]{audio: a, pos: from, to: to}
}

// SinkAll returns a sink over the whole buffer.
func (a *Audio[C]) SinkAll() *AudioSink[C] { return a.Sink(0, a.Len()) }

func (k *AudioSink[C]) SampleRate() uint32 { return k.audio.rate }

func (k *AudioSink[C]) Len() int { return k.to - k.pos }

func (k *AudioSink[C]) SinkWith(frames iter.Seq[Frame[C]]) int {
	written := 0
	for f := range frames {
		if k.pos >= k.to {
			break
		}
		k.audio.SetFrame(k.pos, f.Convert(k.audio.Channels()))
		k.pos++
		written++
	}
	return written
}

// SilenceStream is an unbounded stream of silent frames with no
// inherent sample rate.
type SilenceStream[C Channel] struct {
	channels int
}

// Silence returns an unbounded silent stream with the given channel
// count. Panics if channels is out of range [1, MaxChannels].
func Silence[C Channel](channels int) *SilenceStream[C] {
	if channels < 1 || channels > MaxChannels {
		panic(fmt.Sprintf("pcm: silence channel count %d out of range [1, %d]", channels, MaxChannels))
	}
	return &SilenceStream[C]{channels: channels}
}

func (s *SilenceStream[C]) SampleRate() (uint32, bool) { return 0, false }

func (s *SilenceStream[C]) Len() (int, bool) { return 0, false }

func (s *SilenceStream[C]) Frames() iter.Seq[Frame[C]] {
	var zero [MaxChannels]C
	f := NewFrame(zero[:s.channels]...)
	return func(yield func(Frame[C]) bool) {
		for yield(f) {
		}
	}
}

// LimitStream bounds another stream to a maximum number of frames.
type LimitStream[C Channel] struct {
	inner Stream[C]
	limit int
}

// Limit wraps a stream so it yields at most n frames. Limiting an
// already shorter bounded stream does not extend it.
func Limit[C Channel](s Stream[C], n int) *LimitStream[C] {
	if n < 0 {
		n = 0
	}
	return &LimitStream[C]{inner: s, limit: n}
}

func (l *LimitStream[C]) SampleRate() (uint32, bool) { return l.inner.SampleRate() }

func (l *LimitStream[C]) Len() (int, bool) {
	if n, ok := l.inner.Len(); ok && n < l.limit {
		return n, true
	}
	return l.limit, true
}

func (l *LimitStream[C]) Frames() iter.Seq[Frame[C]] {
	return func(yield func(Frame[C]) bool) {
		n := 0
		for f := range l.inner.Frames() {
			if n >= l.limit || !yield(f) {
				return
			}
			n++
		}
	}
}
