package noise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/vecmath"
)

func TestPermutationDeterministic(t *testing.T) {
	a := NewPermutation(42)
	b := NewPermutation(42)
	assert.Equal(t, a, b, "same seed must yield byte-identical permutation tables")

	c := NewPermutation(43)
	assert.NotEqual(t, a, c)
}

func TestPermutationWrapAround(t *testing.T) {
	p := NewPermutation(7)
	for i := 0; i < 256; i++ {
		require.Equal(t, p[i], p[i+256], "second half must be a verbatim copy of the first")
	}
}

func TestNoise3Bounded(t *testing.T) {
	perm := NewPermutation(1)
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		p := vecmath.New(
			float32(r.Float64()*20-10),
			float32(r.Float64()*20-10),
			float32(r.Float64()*20-10),
		)
		n := Noise3(perm, p)
		assert.LessOrEqual(t, n, float32(1.0001))
		assert.GreaterOrEqual(t, n, float32(-1.0001))
	}
}

func TestFBMBounded(t *testing.T) {
	perm := NewPermutation(2)
	octaves := 5
	bound := maxFBM(octaves)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		p := vecmath.New(float32(r.Float64()*5), float32(r.Float64()*5), float32(r.Float64()*5))
		v := FBM(perm, p, octaves)
		assert.LessOrEqual(t, v, bound+1e-3)
		assert.GreaterOrEqual(t, v, -bound-1e-3)
	}
}

func TestNoise3Deterministic(t *testing.T) {
	perm := NewPermutation(5)
	p := vecmath.New(1.234, -5.6, 3.21)
	a := Noise3(perm, p)
	b := Noise3(perm, p)
	assert.Equal(t, a, b, "identical seed and point must reproduce bit-identical output")
}

func TestDomainWarpIdentityAtZeroAmplitude(t *testing.T) {
	perm := NewPermutation(3)
	p := vecmath.New(1, 2, 3)
	warped := DomainWarp(perm, p, 4, 0)
	assert.Equal(t, p, warped)
}
