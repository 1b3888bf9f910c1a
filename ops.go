package pcm

// BlendOp combines a source sample with a destination sample when
// compositing audio. The destination is overwritten with the result.
type BlendOp int

// Blend operations
const (
	// Src replaces the destination with the source.
	Src BlendOp = iota
	// Dest leaves the destination unchanged.
	Dest
	// Clear writes silence regardless of either operand.
	Clear
	// Amplify multiplies destination by source.
	Amplify
	// Mix adds source to destination with saturation.
	Mix
)

func (op BlendOp) String() string {
	switch op {
	case Src:
		return "Src"
	case Dest:
		return "Dest"
	case Clear:
		return "Clear"
	case Amplify:
		return "Amplify"
	case Mix:
		return "Mix"
	}
	return "Unknown"
}

func blendChan[C Channel](op BlendOp, dst, src C) C {
	switch op {
	case Src:
		return src
	case Dest:
		return dst
	case Clear:
		var zero C
		return zero
	case Amplify:
		return chanMul(dst, src)
	case Mix:
		return chanAdd(dst, src)
	}
	return dst
}

func blendFrame[C Channel](op BlendOp, dst, src Frame[C]) Frame[C] {
	dst.checkCount(src)
	for i := 0; i < int(dst.count); i++ {
		dst.chans[i] = blendChan(op, dst.chans[i], src.chans[i])
	}
	return dst
}

// BlendFrame composites src into the frame at index i using op.
// Panics if i is out of range or the channel counts differ.
func (a *Audio[C]) BlendFrame(op BlendOp, i int, src Frame[C]) {
	a.SetFrame(i, blendFrame(op, a.Frame(i), src))
}

// Blend composites the frames of src into the region of a starting at
// from, using op on every overlapping frame. Frames of a beyond the end
// of src are untouched. Panics if from is out of range or the channel
// counts differ.
func (a *Audio[C]) Blend(op BlendOp, from int, src *Audio[C]) {
	if from < 0 || from > a.Len() {
		panic(rangePanic("blend offset", from, a.Len()))
	}
	n := src.Len()
	if rest := a.Len() - from; n > rest {
		n = rest
	}
	for i := 0; i < n; i++ {
		a.BlendFrame(op, from+i, src.Frame(i))
	}
}
