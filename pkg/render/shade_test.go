package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

func TestShadeMissReturnsBackground(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	col := Shade(sphere, vecmath.New(0, 0, 3), vecmath.New(1, 0, 0), maxTraceDist)
	assert.Equal(t, background, col)
}

func TestShadeHitIsWithinUnitRange(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	ro := vecmath.New(0, 0, 3)
	rd := vecmath.New(0, 0, -1)
	t2 := March(sphere, ro, rd)
	col := Shade(sphere, ro, rd, t2)
	assert.GreaterOrEqual(t, col.X, float32(0))
	assert.LessOrEqual(t, col.X, float32(1))
}

func TestToByteClampsAndTruncates(t *testing.T) {
	assert.Equal(t, uint8(255), ToByte(1.5))
	assert.Equal(t, uint8(0), ToByte(-0.5))
	assert.Equal(t, uint8(127), ToByte(0.5))
}
