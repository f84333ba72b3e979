package sdf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"sdfield/pkg/vecmath"
)

func TestSphereSignAtCentre(t *testing.T) {
	s := Sphere(vecmath.New(1, 2, 3), 2)
	d := s.Evaluate(vecmath.New(1, 2, 3))
	assert.InDelta(t, -2, d, 1e-5)
}

func TestSphereSurface(t *testing.T) {
	s := Sphere(vecmath.Vec3{}, 5)
	d := s.Evaluate(vecmath.New(5, 0, 0))
	assert.InDelta(t, 0, d, 1e-4)
}

func TestCapsuleLipschitz(t *testing.T) {
	c := Capsule(vecmath.New(-1.5, -0.5, 0), vecmath.New(-1.5, 0.5, 0), 0.5)
	r := rand.New(rand.NewSource(1))
	randPoint := func() vecmath.Vec3 {
		return vecmath.New(
			float32(r.Float64()*6-3),
			float32(r.Float64()*6-3),
			float32(r.Float64()*6-3),
		)
	}
	for i := 0; i < 2000; i++ {
		p, q := randPoint(), randPoint()
		dp, dq := c.Evaluate(p), c.Evaluate(q)
		dist := p.Sub(q).Length()
		assert.LessOrEqual(t, float64(abs32(dp-dq)), float64(dist)+1e-5)
	}
}

func TestTorusAxis(t *testing.T) {
	tor := Torus(vecmath.Vec3{}, 0.8, 0.2)
	assert.InDelta(t, 0.6, tor.Evaluate(vecmath.Vec3{}), 1e-6)
	assert.InDelta(t, -0.2, tor.Evaluate(vecmath.New(0.8, 0, 0)), 1e-6)
	assert.InDelta(t, 0, tor.Evaluate(vecmath.New(0, 0.2, 0.8)), 1e-2)
}

func TestRoundConeEqualRadiiMatchesCapsule(t *testing.T) {
	a, b := vecmath.New(0, 0, 0), vecmath.New(0, 2, 0)
	rc := RoundCone(a, b, 1, 1)
	cap := Capsule(a, b, 1)
	p := vecmath.New(3, 1, 0)
	assert.InDelta(t, cap.Evaluate(p), rc.Evaluate(p), 1e-3)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
