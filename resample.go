package pcm

import (
	"errors"
	"fmt"
	"iter"

	"github.com/tphakala/go-pcm/internal/mathutil"
	"github.com/tphakala/go-pcm/internal/speex"
)

// Resampler errors
var (
	// ErrZeroRate is returned when an input or output rate is zero.
	ErrZeroRate = errors.New("pcm: sample rate must be positive")

	// ErrRatioOverflow is returned when a rate ratio cannot be
	// represented in 32-bit filter arithmetic.
	ErrRatioOverflow = errors.New("pcm: rate ratio overflow")
)

// rampSegments is the number of advance steps used to glide between
// ratios after a mid-stream source rate change.
const rampSegments = 8

// Resampler converts audio between two sample rates with a streaming
// windowed-sinc filter. It carries per-channel filter history and a
// fractional playback position across calls, so a long signal can be
// fed through Pipe in arbitrary slices. A Resampler is stateful and
// must not be shared across goroutines without external
// synchronization.
type Resampler struct {
	inRate   uint32
	outRate  uint32
	num, den uint32 // reduced inRate / outRate
	channels int
	states   []*speex.State
}

// NewResampler creates a resampler for the given rate pair and channel
// count. Returns ErrZeroRate when either rate is zero, ErrBadChannels
// when channels is outside [1, MaxChannels], and ErrRatioOverflow when
// the reduced ratio cannot drive the filter design.
func NewResampler(inRate, outRate uint32, channels int) (*Resampler, error) {
	if inRate == 0 || outRate == 0 {
		return nil, fmt.Errorf("%w: %d Hz -> %d Hz", ErrZeroRate, inRate, outRate)
	}
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channels)
	}
	num, den := mathutil.Simplify(inRate, outRate)
	r := &Resampler{
		inRate:   inRate,
		outRate:  outRate,
		num:      num,
		den:      den,
		channels: channels,
		states:   make([]*speex.State, channels),
	}
	for i := range r.states {
		st := speex.NewState()
		if err := st.UpdateFilter(num, den); err != nil {
			return nil, fmt.Errorf("%w: %d/%d", ErrRatioOverflow, num, den)
		}
		st.SkipZeros()
		r.states[i] = st
	}
	return r, nil
}

// InputRate returns the source rate in hertz.
func (r *Resampler) InputRate() uint32 { return r.inRate }

// OutputRate returns the destination rate in hertz.
func (r *Resampler) OutputRate() uint32 { return r.outRate }

// Channels returns the channel count the resampler was built for.
func (r *Resampler) Channels() int { return r.channels }

// Ratio returns the reduced input/output rate ratio.
func (r *Resampler) Ratio() (num, den uint32) { return r.num, r.den }

// InputLatency returns the filter delay in input samples.
func (r *Resampler) InputLatency() int {
	return int(r.states[0].FilterLength() / 2)
}

// OutputLatency returns the filter delay in output samples.
func (r *Resampler) OutputLatency() int {
	half := r.states[0].FilterLength() / 2
	return int((half*r.den + r.num/2) / r.num)
}

// Reset zeroes filter history and playback position so an unrelated
// stream can be processed. The filter table is kept.
func (r *Resampler) Reset() {
	for _, st := range r.states {
		st.Reset()
		st.SkipZeros()
	}
}

// setInputRate rebuilds the filter for a new source rate and rescales
// the fractional position so the playback phase stays continuous.
func (r *Resampler) setInputRate(hz uint32) error {
	num, den := mathutil.Simplify(hz, r.outRate)
	oldDen := r.den
	for _, st := range r.states {
		if err := st.UpdateFilter(num, den); err != nil {
			return fmt.Errorf("%w: %d/%d", ErrRatioOverflow, num, den)
		}
		if err := st.ScaleFracNum(oldDen, den); err != nil {
			return fmt.Errorf("%w: %d/%d", ErrRatioOverflow, num, den)
		}
	}
	r.inRate = hz
	r.num = num
	r.den = den
	return nil
}

// Pipe resamples src into dst, consuming as much of src as fits the
// sink's remaining capacity. Filter history and fractional position
// persist across calls; call Flush after the last Pipe to push out the
// samples still inside the filter. When the source buffer's rate
// differs from the previous call, the resampler glides to the new ratio
// instead of jumping. Returns the number of frames written to dst.
//
// Panics if dst's rate differs from the resampler's output rate or
// src's channel count differs from the resampler's. Returns
// ErrRatioOverflow if a changed source rate cannot be accommodated.
func Pipe[S, D Channel](r *Resampler, src *Audio[S], dst Sink[D]) (int, error) {
	if dst.SampleRate() != r.outRate {
		panic(fmt.Sprintf("pcm: sink rate %d Hz does not match resampler output rate %d Hz",
			dst.SampleRate(), r.outRate))
	}
	if src.Channels() != r.channels {
		panic(fmt.Sprintf("pcm: source has %d channels, resampler has %d",
			src.Channels(), r.channels))
	}

	oldRate := r.inRate
	if src.SampleRate() != r.inRate {
		if err := r.setInputRate(src.SampleRate()); err != nil {
			return 0, err
		}
	}

	if r.num == 1 && r.den == 1 && oldRate == r.inRate {
		// Unity ratio reproduces the source exactly.
		return dst.SinkWith(convertFrames[D](src.Frames())), nil
	}

	inLen := src.Len()
	if inLen == 0 {
		return 0, nil
	}
	outCap := dst.Len()
	in := deinterleave(src)
	out := make([][]float32, r.channels)
	for ch := range out {
		out[ch] = make([]float32, outCap)
	}

	var produced int
	if oldRate != r.inRate {
		produced = r.processRamp(oldRate, in, out)
	} else {
		produced = r.process(in, out)
	}
	return dst.SinkWith(interleave[D](out, produced)), nil
}

// process feeds the whole per-channel input through every state and
// returns the frames produced, identical across channels.
func (r *Resampler) process(in, out [][]float32) int {
	produced := 0
	for ch, st := range r.states {
		il := uint32(len(in[ch]))
		ol := uint32(len(out[ch]))
		st.Process(in[ch], &il, out[ch], &ol, r.den)
		produced = int(ol)
	}
	return produced
}

// processRamp glides the advance from the old ratio to the new one in
// rampSegments steps across the input, then locks in the final ratio.
func (r *Resampler) processRamp(oldRate uint32, in, out [][]float32) int {
	n := len(in[0])
	produced := 0
	for ch, st := range r.states {
		wrote := 0
		for k := 0; k < rampSegments; k++ {
			hz := int64(oldRate) + (int64(r.inRate)-int64(oldRate))*int64(k+1)/rampSegments
			num := (uint64(hz)*uint64(r.den) + uint64(r.outRate)/2) / uint64(r.outRate)
			if num < 1 {
				num = 1
			}
			st.SetAdvance(uint32(num), r.den)

			lo, hi := n*k/rampSegments, n*(k+1)/rampSegments
			if lo == hi {
				continue
			}
			il := uint32(hi - lo)
			ol := uint32(len(out[ch]) - wrote)
			if ol == 0 {
				break
			}
			st.Process(in[ch][lo:hi], &il, out[ch][wrote:], &ol, r.den)
			wrote += int(ol)
		}
		st.SetAdvance(r.num, r.den)
		produced = wrote
	}
	return produced
}

// Flush pushes the filter's pending tail into dst by feeding one
// input latency of silence, and returns the number of frames written.
// The resampler should be Reset before reuse afterwards.
//
// Panics if dst's rate differs from the resampler's output rate.
func Flush[D Channel](r *Resampler, dst Sink[D]) (int, error) {
	if dst.SampleRate() != r.outRate {
		panic(fmt.Sprintf("pcm: sink rate %d Hz does not match resampler output rate %d Hz",
			dst.SampleRate(), r.outRate))
	}
	if r.num == 1 && r.den == 1 {
		return 0, nil
	}
	latency := r.InputLatency()
	outCap := dst.Len()
	out := make([][]float32, r.channels)
	zeros := make([]float32, latency)
	produced := 0
	for ch, st := range r.states {
		out[ch] = make([]float32, outCap)
		il := uint32(latency)
		ol := uint32(outCap)
		st.Process(zeros, &il, out[ch], &ol, r.den)
		produced = int(ol)
	}
	return dst.SinkWith(interleave[D](out, produced)), nil
}

// deinterleave splits an audio buffer into per-channel float32 slices.
func deinterleave[S Channel](src *Audio[S]) [][]float32 {
	channels := src.Channels()
	frames := src.Len()
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float32(src.data[base+ch].Float64())
		}
	}
	return out
}

// interleave rebuilds frames in encoding D from per-channel samples.
func interleave[D Channel](chans [][]float32, frames int) iter.Seq[Frame[D]] {
	return func(yield func(Frame[D]) bool) {
		var buf [MaxChannels]D
		for i := 0; i < frames; i++ {
			for ch := range chans {
				buf[ch] = FromFloat64[D](float64(chans[ch][i]))
			}
			if !yield(NewFrame(buf[:len(chans)]...)) {
				return
			}
		}
	}
}

// convertFrames re-encodes a frame sequence.
func convertFrames[D, S Channel](frames iter.Seq[Frame[S]]) iter.Seq[Frame[D]] {
	return func(yield func(Frame[D]) bool) {
		for f := range frames {
			if !yield(ToFrame[D](f)) {
				return
			}
		}
	}
}
