package speex

import "math"

// Window function parameters
const (
	// windowOversample is the tabulation density of the Kaiser window.
	windowOversample = 32
)

// kaiserTable holds the Kaiser window sampled at windowOversample points
// per unit, plus guard entries for the cubic interpolation overrun.
var kaiserTable = [36]float64{
	0.99537781, 1.0, 0.99537781, 0.98162644, 0.95908712, 0.92831446,
	0.89005583, 0.84522401, 0.79486424, 0.74011713, 0.68217934, 0.62226347,
	0.56155915, 0.5011968, 0.44221549, 0.38553619, 0.33194107, 0.28205962,
	0.23636152, 0.19515633, 0.15859932, 0.1267028, 0.09935205, 0.07632451,
	0.05731132, 0.0419398, 0.02979584, 0.0204451, 0.01345224, 0.00839739,
	0.00488951, 0.00257636, 0.00115101, 0.00035515, 0.0, 0.0,
}

// computeWindow evaluates the Kaiser window at x in [0, 1] by cubic
// interpolation of kaiserTable.
func computeWindow(x float32) float64 {
	y := x * windowOversample
	ind := int(math.Floor(float64(y)))
	frac := float64(y - float32(ind))

	var interp [4]float64
	interp[3] = -0.1666666667*frac + 0.1666666667*frac*frac*frac
	interp[2] = frac + 0.5*frac*frac - 0.5*frac*frac*frac
	interp[0] = -0.3333333333*frac + 0.5*frac*frac - 0.1666666667*frac*frac*frac
	interp[1] = 1.0 - interp[3] - interp[2] - interp[0]

	var sum float64
	for i, v := range interp {
		sum += v * kaiserTable[ind+i]
	}
	return sum
}

// sinc evaluates the window-limited sinc filter at offset x for a
// filter of length n with the given cutoff.
func sinc(cutoff, x float32, n int32) float32 {
	xx := float64(x * cutoff)
	xAbs := math.Abs(float64(x))
	n64 := float64(n)
	switch {
	case xAbs < 0.000001:
		return cutoff
	case xAbs > 0.5*n64:
		return 0.0
	}
	first := float64(cutoff) * math.Sin(math.Pi*xx) / (math.Pi * xx)
	second := computeWindow(float32(math.Abs(2.0 * float64(x) / n64)))
	return float32(first * second)
}

// cubicCoef fills interp with the 4-tap blend weights for fractional
// position frac. The weights sum to 1.
func cubicCoef(frac float32, interp *[4]float32) {
	interp[0] = -0.16667*frac + 0.16667*frac*frac*frac
	interp[1] = frac + 0.5*frac*frac - 0.5*frac*frac*frac
	interp[3] = -0.33333*frac + 0.5*frac*frac - 0.16667*frac*frac*frac
	interp[2] = float32(1.0 - float64(interp[0]) - float64(interp[1]) - float64(interp[3]))
}
