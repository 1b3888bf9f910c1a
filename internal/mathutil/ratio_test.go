package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, uint32(300), GCD(44100, 48000))
	assert.Equal(t, uint32(300), GCD(48000, 44100))
	assert.Equal(t, uint32(7), GCD(7, 0))
	assert.Equal(t, uint32(7), GCD(0, 7))
	assert.Equal(t, uint32(0), GCD(0, 0))
	assert.Equal(t, uint32(1), GCD(44101, 48000))
}

func TestSimplify(t *testing.T) {
	num, den := Simplify(44100, 48000)
	assert.Equal(t, uint32(147), num)
	assert.Equal(t, uint32(160), den)

	num, den = Simplify(96000, 44100)
	assert.Equal(t, uint32(320), num)
	assert.Equal(t, uint32(147), den)

	num, den = Simplify(48000, 48000)
	assert.Equal(t, uint32(1), num)
	assert.Equal(t, uint32(1), den)

	num, den = Simplify(0, 48000)
	assert.Equal(t, uint32(0), num)
	assert.Equal(t, uint32(1), den)
}

func TestMulDiv(t *testing.T) {
	v, err := MulDiv(160, 320, 147)
	require.NoError(t, err)
	assert.Equal(t, uint32(348), v)

	v, err = MulDiv(1000, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(750), v)

	// Large operands that stay within range.
	v, err = MulDiv(4000000000, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(3000000000), v)

	v, err = MulDiv(0, 4294967295, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}

func TestMulDivOverflow(t *testing.T) {
	_, err := MulDiv(160, 4294967291, 2)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = MulDiv(4294967295, 2, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMulDivZeroDivisorPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = MulDiv(1, 1, 0) })
}
