package pcm

import "fmt"

// Speaker configurations by channel count
const (
	// Mono is a single centered channel.
	Mono = 1
	// Stereo is front left and front right.
	Stereo = 2
	// Surround30 is stereo plus a front center channel.
	Surround30 = 3
	// Surround40 is front left/right plus back left/right.
	Surround40 = 4
	// Surround50 adds a front center channel to Surround40.
	Surround50 = 5
	// Surround51 adds a low-frequency effects channel to Surround50.
	Surround51 = 6
	// Surround61 adds a back center channel to Surround51.
	Surround61 = 7
	// Surround71 is Surround51 plus side left/right channels.
	Surround71 = 8

	// MaxChannels is the largest supported frame width.
	MaxChannels = 8
)

// Frame is a single sampling instant across up to MaxChannels channels,
// all in encoding C. The zero Frame is invalid; construct with NewFrame
// or ToFrame.
type Frame[C Channel] struct {
	chans [MaxChannels]C
	count uint8
}

// NewFrame builds a frame from the given channel samples. The channel
// ordering for each count follows the speaker configuration constants:
// stereo is L, R; 5.1 is FL, FR, BL, BR, C, LFE; 7.1 is FL, FR, BL, BR,
// C, LFE, SL, SR. Panics if the channel count is zero or above
// MaxChannels.
func NewFrame[C Channel](chans ...C) Frame[C] {
	if len(chans) < 1 || len(chans) > MaxChannels {
		panic(fmt.Sprintf("pcm: frame channel count %d out of range [1, %d]", len(chans), MaxChannels))
	}
	var f Frame[C]
	f.count = uint8(copy(f.chans[:], chans))
	return f
}

// Count returns the number of channels in the frame.
func (f Frame[C]) Count() int { return int(f.count) }

// Channels returns the frame's samples in channel order.
func (f Frame[C]) Channels() []C { return f.chans[:f.count] }

// Chan returns the sample for channel i. Panics if i is out of range.
func (f Frame[C]) Chan(i int) C {
	if i < 0 || i >= int(f.count) {
		panic(fmt.Sprintf("pcm: channel index %d out of range [0, %d)", i, f.count))
	}
	return f.chans[i]
}

// SetChan replaces the sample for channel i. Panics if i is out of range.
func (f *Frame[C]) SetChan(i int, c C) {
	if i < 0 || i >= int(f.count) {
		panic(fmt.Sprintf("pcm: channel index %d out of range [0, %d)", i, f.count))
	}
	f.chans[i] = c
}

func (f Frame[C]) checkCount(o Frame[C]) {
	if f.count != o.count {
		panic(fmt.Sprintf("pcm: frame channel counts differ: %d vs %d", f.count, o.count))
	}
}

// Add returns the channel-wise saturating sum of two frames.
// Panics if the channel counts differ.
func (f Frame[C]) Add(o Frame[C]) Frame[C] {
	f.checkCount(o)
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanAdd(f.chans[i], o.chans[i])
	}
	return f
}

// Sub returns the channel-wise saturating difference of two frames.
// Panics if the channel counts differ.
func (f Frame[C]) Sub(o Frame[C]) Frame[C] {
	f.checkCount(o)
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanSub(f.chans[i], o.chans[i])
	}
	return f
}

// Mul returns the channel-wise product of two frames.
// Panics if the channel counts differ.
func (f Frame[C]) Mul(o Frame[C]) Frame[C] {
	f.checkCount(o)
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanMul(f.chans[i], o.chans[i])
	}
	return f
}

// Neg returns the frame with every channel negated.
func (f Frame[C]) Neg() Frame[C] {
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanNeg(f.chans[i])
	}
	return f
}

// Lerp linearly interpolates each channel of f toward o by the matching
// channel of t. Panics if the channel counts differ.
func (f Frame[C]) Lerp(o, t Frame[C]) Frame[C] {
	f.checkCount(o)
	f.checkCount(t)
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanLerp(f.chans[i], o.chans[i], t.chans[i])
	}
	return f
}

// Gain scales every channel by the sample g.
func (f Frame[C]) Gain(g C) Frame[C] {
	for i := 0; i < int(f.count); i++ {
		f.chans[i] = chanMul(f.chans[i], g)
	}
	return f
}

// ToFrame converts every channel of a frame to encoding D.
func ToFrame[D, S Channel](f Frame[S]) Frame[D] {
	var d Frame[D]
	d.count = f.count
	for i := 0; i < int(f.count); i++ {
		d.chans[i] = ToChannel[D](f.chans[i])
	}
	return d
}

// Convert remixes the frame to the given channel count using the
// standard downmix and upmix coefficient tables. Converting to the same
// count returns the frame unchanged. Panics if channels is out of range.
func (f Frame[C]) Convert(channels int) Frame[C] {
	if channels < 1 || channels > MaxChannels {
		panic(fmt.Sprintf("pcm: frame channel count %d out of range [1, %d]", channels, MaxChannels))
	}
	if channels == int(f.count) {
		return f
	}
	m := &mixTables[channels][f.count]
	var src [MaxChannels]float64
	for i := 0; i < int(f.count); i++ {
		src[i] = f.chans[i].Float64()
	}
	var out Frame[C]
	out.count = uint8(channels)
	for i := 0; i < channels; i++ {
		out.chans[i] = FromFloat64[C](m.dot(i, src[:f.count]))
	}
	return out
}
