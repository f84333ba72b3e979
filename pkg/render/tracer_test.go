package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

func TestMarchUnitSphereFromStandardExample(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	ro := vecmath.New(0, 0, 3)
	rd := vecmath.New(0, 0, -1)

	got := March(sphere, ro, rd)
	assert.InDelta(t, 2, got, 1e-2, "camera at (0,0,3) looking at a unit sphere: centre pixel hit at t≈2")
}

func TestMarchMissReturnsMaxDistance(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	ro := vecmath.New(0, 0, 3)
	rd := vecmath.New(1, 0, 0)

	got := March(sphere, ro, rd)
	assert.Equal(t, float32(maxTraceDist), got)
}

func TestNormalPointsOutwardOnSphere(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	n := Normal(sphere, vecmath.New(1, 0, 0))
	assert.InDelta(t, 1, n.X, 1e-2)
	assert.InDelta(t, 0, n.Y, 1e-2)
	assert.InDelta(t, 0, n.Z, 1e-2)
}

func TestSoftShadowFullyLitWithNoOccluder(t *testing.T) {
	sphere := sdf.Sphere(vecmath.New(0, -100, 0), 1)
	lightDir := vecmath.New(0, 1, 0)
	shadow := SoftShadow(sphere, vecmath.Vec3{}, lightDir)
	assert.Equal(t, float32(1), shadow)
}

func TestAmbientOcclusionBounded(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	n := vecmath.New(1, 0, 0)
	ao := AmbientOcclusion(sphere, vecmath.New(1, 0, 0), n)
	assert.GreaterOrEqual(t, ao, float32(0))
	assert.LessOrEqual(t, ao, float32(1))
}
