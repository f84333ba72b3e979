package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	assert.Equal(t, New(5, -3, 9), a.Add(b))
	assert.Equal(t, New(-3, 7, -3), a.Sub(b))
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
	assert.InDelta(t, float32(1*4+2*-5+3*6), a.Dot(b), 1e-6)
}

func TestVec3Cross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := x.Cross(y)
	assert.InDelta(t, float32(0), z.X, 1e-6)
	assert.InDelta(t, float32(0), z.Y, 1e-6)
	assert.InDelta(t, float32(1), z.Z, 1e-6)
}

func TestVec3NormaliseDegenerate(t *testing.T) {
	v := New(1e-9, 0, 0)
	n := v.Normalise()
	require.Equal(t, Vec3{}, n, "near-zero vectors normalise to the zero vector")
}

func TestVec3NormaliseUnitLength(t *testing.T) {
	v := New(3, 4, 0)
	n := v.Normalise()
	assert.InDelta(t, float32(1), n.Length(), 1e-6)
}

func TestLerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 10, 10)
	assert.Equal(t, New(5, 5, 5), Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}
