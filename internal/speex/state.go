// Package speex implements the windowed-sinc arbitrary-ratio resampler
// derived from the Speex resampler, operating on a single channel of
// float32 samples.
//
// A State carries the reduced rate ratio's advance, the fractional
// playback position, and enough filter history to keep successive
// Process calls seamless. The sinc filter is tabulated either per
// fractional phase (direct mode, small denominators) or at a fixed
// oversampling with cubic interpolation between entries (interpolated
// mode, large denominators).
package speex

import (
	"github.com/tphakala/simd/f32"

	"github.com/tphakala/go-pcm/internal/mathutil"
)

// Quality parameters of the sinc filter
const (
	// baseLength is the filter support width at unity ratio.
	baseLength = 160

	// oversampleBase is the sinc table density for interpolated mode.
	oversampleBase = 16

	// downsampleBandwidth scales the cutoff when reducing the rate.
	downsampleBandwidth = 0.96

	// upsampleBandwidth is the cutoff when raising the rate.
	upsampleBandwidth = 0.96

	// chunkSize is the per-call staging capacity in samples.
	chunkSize = 160
)

type runMode int

const (
	modeDirect runMode = iota
	modeInterpolate
)

// State is a single-channel resampler. The zero value is not usable;
// construct with NewState and configure with UpdateFilter.
type State struct {
	filtLen         uint32
	memAllocSize    uint32
	bufferSize      uint32
	intAdvance      uint32
	fracAdvance     uint32
	cutoff          float32
	oversample      uint32
	started         bool
	mem             []float32
	sincTable       []float32
	sincTableLength uint32
	mode            runMode

	lastSample   uint32
	sampFracNum  uint32
	magicSamples uint32
}

// NewState returns an unconfigured state. UpdateFilter must be called
// before the first Process.
func NewState() *State {
	return &State{
		cutoff:     1.0,
		bufferSize: chunkSize,
	}
}

// FilterLength returns the current sinc filter support width.
func (s *State) FilterLength() uint32 { return s.filtLen }

// Direct reports whether the filter is tabulated per fractional phase
// rather than interpolated.
func (s *State) Direct() bool { return s.mode == modeDirect }

// Oversample returns the sinc table density in interpolated mode.
func (s *State) Oversample() uint32 { return s.oversample }

// SkipZeros positions the stream past the filter's leading zeros so the
// first output sample aligns with the first input sample. Call once on
// a fresh state before processing; mid-stream it would drop audio.
func (s *State) SkipZeros() {
	s.lastSample = s.filtLen / 2
}

// Reset zeroes history and position so an unrelated stream can be
// processed without recomputing the filter table.
func (s *State) Reset() {
	s.lastSample = 0
	s.magicSamples = 0
	s.sampFracNum = 0
	for i := range s.mem {
		s.mem[i] = 0
	}
}

// SetAdvance changes the per-output-sample stride to num/den input
// samples without touching the filter table. Used to ramp between
// ratios across an output buffer.
func (s *State) SetAdvance(num, den uint32) {
	s.intAdvance = num / den
	s.fracAdvance = num % den
}

// ScaleFracNum rescales the fractional position from a previous
// denominator to a new one, keeping the playback phase continuous.
func (s *State) ScaleFracNum(oldDen, newDen uint32) error {
	if oldDen == newDen || oldDen == 0 {
		return nil
	}
	v, err := mathutil.MulDiv(s.sampFracNum, newDen, oldDen)
	if err != nil {
		return err
	}
	if v >= newDen {
		v = newDen - 1
	}
	s.sampFracNum = v
	return nil
}

// UpdateFilter rebuilds the sinc table and filter geometry for the
// reduced ratio num/den (input samples per den output samples). Safe to
// call mid-stream: carried history is recentered for the new support
// width. Returns mathutil.ErrOverflow when the downsample filter length
// cannot be computed in 32 bits.
func (s *State) UpdateFilter(num, den uint32) error {
	oldLength := s.filtLen
	s.intAdvance = num / den
	s.fracAdvance = num % den
	s.oversample = oversampleBase
	s.filtLen = baseLength

	if num > den {
		// Downsampling: widen the filter and drop the cutoff so the
		// stopband stays below the destination Nyquist.
		s.cutoff = downsampleBandwidth * float32(den) / float32(num)
		fl, err := mathutil.MulDiv(s.filtLen, num, den)
		if err != nil {
			return err
		}
		s.filtLen = ((fl - 1) &^ 7) + 8
		for p := uint32(1); p < 5; p++ {
			if (uint32(1)<<p)*den < num {
				s.oversample >>= 1
			}
		}
		if s.oversample < 1 {
			s.oversample = 1
		}
	} else {
		s.cutoff = upsampleBandwidth
	}

	useDirect := s.filtLen*den <= s.filtLen*s.oversample+8 &&
		2147483647/4/uint64(den) >= uint64(s.filtLen)

	var minSincLen uint32
	if useDirect {
		minSincLen = s.filtLen * den
	} else {
		minSincLen = s.filtLen*s.oversample + 8
	}
	if s.sincTableLength < minSincLen {
		s.sincTable = make([]float32, minSincLen)
		s.sincTableLength = minSincLen
	}

	if useDirect {
		s.buildDirectTable(den)
		s.mode = modeDirect
	} else {
		s.buildInterpTable()
		s.mode = modeInterpolate
	}

	minAlloc := s.filtLen - 1 + s.bufferSize
	if minAlloc > s.memAllocSize {
		mem := make([]float32, minAlloc)
		copy(mem, s.mem)
		s.mem = mem
		s.memAllocSize = minAlloc
	}

	switch {
	case !s.started:
		for i := range s.mem {
			s.mem[i] = 0
		}
	case s.filtLen > oldLength:
		s.growMem(oldLength)
	case s.filtLen < oldLength:
		s.shrinkMem(oldLength)
	}
	return nil
}

// buildDirectTable tabulates one full filter per fractional phase.
func (s *State) buildDirectTable(den uint32) {
	n := int(s.filtLen)
	for i := 0; i < int(den); i++ {
		for j := 0; j < n; j++ {
			s.sincTable[i*n+j] = sinc(
				s.cutoff,
				(float32(j)-float32(s.filtLen)/2.0+1.0)-float32(i)/float32(den),
				int32(s.filtLen),
			)
		}
	}
}

// buildInterpTable tabulates the filter at oversample points per input
// sample, to be blended by cubicCoef at run time.
func (s *State) buildInterpTable() {
	count := int(s.oversample*s.filtLen + 8)
	for i := 0; i < count; i++ {
		s.sincTable[i] = sinc(
			s.cutoff,
			float32(i-4)/float32(s.oversample)-float32(s.filtLen)/2.0,
			int32(s.filtLen),
		)
	}
}

// growMem recenters carried history after the filter widened, first
// restoring any magic samples to their pre-offset position, then
// padding the front with zeros and crediting half the growth to the
// stream position.
func (s *State) growMem(oldLength uint32) {
	old := append([]float32(nil), s.mem...)
	magic := s.magicSamples
	end := oldLength - 1 + magic
	if end > uint32(len(s.mem)) {
		end = uint32(len(s.mem))
	}
	copy(s.mem[magic:end], old[:end-magic])
	for i := uint32(0); i < magic; i++ {
		s.mem[i] = 0
	}

	old = append(old[:0], s.mem...)
	olen := oldLength + 2*s.magicSamples
	if s.filtLen > olen {
		newFiltLen := s.filtLen - olen
		copy(s.mem[newFiltLen:s.filtLen-1], old[:olen-1])
		for i := uint32(0); i < newFiltLen; i++ {
			s.mem[i] = 0
		}
		s.magicSamples = 0
		s.lastSample += newFiltLen / 2
	} else {
		s.magicSamples = (olen - s.filtLen) / 2
		end := s.filtLen - 1 + 2*s.magicSamples
		if end > uint32(len(old)) {
			end = uint32(len(old))
		}
		copy(s.mem[:s.filtLen-1+s.magicSamples], old[s.magicSamples:end])
	}
}

// shrinkMem drops history the narrower filter no longer needs,
// rebooking the surplus as magic samples to be replayed on the next
// Process call.
func (s *State) shrinkMem(oldLength uint32) {
	skip := (oldLength - s.filtLen) / 2
	end := s.filtLen - 1 + skip + s.magicSamples + skip
	if end > uint32(len(s.mem)) {
		end = uint32(len(s.mem))
	}
	copy(s.mem[:end-skip], s.mem[skip:end])
	s.magicSamples += skip
}

// Process resamples in into out. On entry *inLen and *outLen hold the
// buffer capacities in samples; on return they hold the samples
// consumed and produced. den is the reduced ratio denominator the
// filter was built for. The buffers must not overlap; in must not be
// empty.
func (s *State) Process(in []float32, inLen *uint32, out []float32, outLen *uint32, den uint32) {
	if len(in) == 0 {
		panic("speex: empty input")
	}
	ilen := *inLen
	olen := *outLen
	filtOffs := int(s.filtLen - 1)
	xlen := s.memAllocSize - s.filtLen - 1

	if s.magicSamples != 0 {
		var written uint32
		written, out = s.processMagic(out, olen, den)
		olen -= written
	}
	if s.magicSamples == 0 {
		for ilen != 0 && olen != 0 {
			ichunk := min(ilen, xlen)
			ochunk := olen
			copy(s.mem[filtOffs:], in[:ichunk])
			s.processNative(&ichunk, out, &ochunk, den)
			ilen -= ichunk
			olen -= ochunk
			out = out[ochunk:]
			in = in[ichunk:]
		}
	}
	*inLen -= ilen
	*outLen -= olen
}

// processNative runs the filter over staged history plus fresh input,
// then compacts the last filtLen-1 samples to the front of mem as
// history for the next call.
func (s *State) processNative(inLen *uint32, out []float32, outLen *uint32, den uint32) {
	n := int(s.filtLen)
	s.started = true

	var outSample uint32
	switch s.mode {
	case modeDirect:
		outSample = s.runDirect(s.mem, *inLen, out, *outLen, den)
	case modeInterpolate:
		outSample = s.runInterpolate(s.mem, *inLen, out, *outLen, den)
	}

	if s.lastSample < *inLen {
		*inLen = s.lastSample
	}
	*outLen = outSample
	s.lastSample -= *inLen
	ilen := int(*inLen)
	copy(s.mem[:n-1], s.mem[ilen:ilen+n-1])
}

// processMagic replays samples left over from a filter change. It
// returns the number of output samples written and the advanced output
// slice.
func (s *State) processMagic(out []float32, outLen uint32, den uint32) (uint32, []float32) {
	tmpInLen := s.magicSamples
	memIdx := int(s.filtLen)
	s.processNative(&tmpInLen, out, &outLen, den)
	s.magicSamples -= tmpInLen
	if s.magicSamples != 0 {
		start := memIdx - 1 + int(tmpInLen)
		copy(s.mem[memIdx-1:memIdx-1+int(s.magicSamples)], s.mem[start:start+int(s.magicSamples)])
	}
	return outLen, out[outLen:]
}

// runDirect convolves with the per-phase filter tables.
func (s *State) runDirect(in []float32, inLen uint32, out []float32, outLen uint32, den uint32) uint32 {
	n := int(s.filtLen)
	lastSample := s.lastSample
	sampFracNum := s.sampFracNum
	var outSample uint32

	for lastSample < inLen && outSample < outLen {
		lo := int(lastSample)
		sinct := s.sincTable[int(sampFracNum)*n : int(sampFracNum)*n+n]
		out[outSample] = f32.DotProductUnsafe(sinct, in[lo:lo+n])

		outSample++
		lastSample += s.intAdvance
		sampFracNum += s.fracAdvance
		if sampFracNum >= den {
			sampFracNum -= den
			lastSample++
		}
	}
	s.lastSample = lastSample
	s.sampFracNum = sampFracNum
	return outSample
}

// runInterpolate convolves four neighboring filter phases and blends
// them with cubic weights for the exact fractional position.
func (s *State) runInterpolate(in []float32, inLen uint32, out []float32, outLen uint32, den uint32) uint32 {
	n := int(s.filtLen)
	oversample := int(s.oversample)
	lastSample := s.lastSample
	sampFracNum := s.sampFracNum
	var outSample uint32

	for lastSample < inLen && outSample < outLen {
		window := in[lastSample:]
		offset := int(sampFracNum) * oversample / int(den)
		frac := float32((int(sampFracNum)*oversample)%int(den)) / float32(den)

		var accum [4]float32
		for j := 0; j < n; j++ {
			idx := 2 + (j+1)*oversample - offset
			curr := window[j]
			accum[0] += curr * s.sincTable[idx]
			accum[1] += curr * s.sincTable[idx+1]
			accum[2] += curr * s.sincTable[idx+2]
			accum[3] += curr * s.sincTable[idx+3]
		}
		var interp [4]float32
		cubicCoef(frac, &interp)
		out[outSample] = interp[0]*accum[0] + interp[1]*accum[1] +
			interp[2]*accum[2] + interp[3]*accum[3]

		outSample++
		lastSample += s.intAdvance
		sampFracNum += s.fracAdvance
		if sampFracNum >= den {
			sampFracNum -= den
			lastSample++
		}
	}
	s.lastSample = lastSample
	s.sampFracNum = sampFracNum
	return outSample
}
