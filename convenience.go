package pcm

// OutputFrames returns the number of destination frames produced when
// frames samples at inRate are resampled to outRate, rounded up.
func OutputFrames(frames int, inRate, outRate uint32) int {
	if inRate == 0 {
		return 0
	}
	return int((uint64(frames)*uint64(outRate) + uint64(inRate) - 1) / uint64(inRate))
}

// ConvertAudio re-encodes a buffer into encoding D, keeping rate and
// channel count.
func ConvertAudio[D, S Channel](src *Audio[S]) *Audio[D] {
	out := NewAudio[D](src.SampleRate(), src.Channels(), src.Len())
	for i, v := range src.data {
		out.data[i] = ToChannel[D](v)
	}
	return out
}

// RemixAudio converts a buffer to a different channel count using the
// standard mixing matrices. Panics if channels is out of range
// [1, MaxChannels].
func RemixAudio[C Channel](src *Audio[C], channels int) *Audio[C] {
	if channels == src.Channels() {
		return ConvertAudio[C](src)
	}
	out := NewAudio[C](src.SampleRate(), channels, src.Len())
	for i := 0; i < src.Len(); i++ {
		out.SetFrame(i, src.Frame(i).Convert(channels))
	}
	return out
}

// ResampleAudio converts a whole buffer to outRate in one call,
// including the filter tail, and re-encodes it to D. The result has
// OutputFrames(src.Len(), src.SampleRate(), outRate) frames.
func ResampleAudio[D, S Channel](src *Audio[S], outRate uint32) (*Audio[D], error) {
	if outRate == src.SampleRate() {
		return ConvertAudio[D](src), nil
	}
	r, err := NewResampler(src.SampleRate(), outRate, src.Channels())
	if err != nil {
		return nil, err
	}
	out := NewAudio[D](outRate, src.Channels(), OutputFrames(src.Len(), src.SampleRate(), outRate))
	sink := out.SinkAll()
	if _, err := Pipe(r, src, sink); err != nil {
		return nil, err
	}
	if sink.Len() > 0 {
		if _, err := Flush(r, sink); err != nil {
			return nil, err
		}
	}
	return out, nil
}
