package speex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKaiserTableShape(t *testing.T) {
	for i, v := range kaiserTable {
		assert.GreaterOrEqual(t, v, 0.0, "kaiserTable[%d]", i)
		assert.LessOrEqual(t, v, 1.0, "kaiserTable[%d]", i)
	}
	// Peak at the second entry, then monotone decay to the guard zeros.
	assert.Equal(t, 1.0, kaiserTable[1])
	for i := 2; i < len(kaiserTable); i++ {
		assert.LessOrEqual(t, kaiserTable[i], kaiserTable[i-1], "kaiserTable[%d]", i)
	}
}

func TestComputeWindowEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, computeWindow(0))
	assert.InDelta(t, kaiserTable[33], computeWindow(1), 1e-12)
}

func TestSincCenterAndTail(t *testing.T) {
	assert.Equal(t, float32(0.9), sinc(0.9, 0, 64))
	assert.Equal(t, float32(0), sinc(0.9, 33, 64))
	assert.Equal(t, float32(0), sinc(0.9, -33, 64))

	for _, x := range []float32{0.5, 3.25, 17} {
		assert.Equal(t, sinc(0.9, x, 64), sinc(0.9, -x, 64), "x=%f", x)
	}
}

func TestCubicCoefSumsToOne(t *testing.T) {
	for _, frac := range []float32{0, 0.125, 0.25, 0.5, 0.75, 0.999} {
		var interp [4]float32
		cubicCoef(frac, &interp)
		sum := interp[0] + interp[1] + interp[2] + interp[3]
		assert.InDelta(t, 1.0, sum, 1e-6, "frac=%f", frac)
	}

	// At zero offset only the current phase contributes.
	var interp [4]float32
	cubicCoef(0, &interp)
	assert.Equal(t, [4]float32{0, 0, 1, 0}, interp)
}
