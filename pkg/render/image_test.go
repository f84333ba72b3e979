package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

// TestRenderUnitSphereWorkedExample exercises spec.md §8 scenario 1
// literally: a 64x64 render of a unit sphere, camera at (0,0,3) looking
// at the origin, fov 60, expects a lit centre and all four corner
// pixels reading as background.
func TestRenderUnitSphereWorkedExample(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	cam := Camera{Origin: vecmath.New(0, 0, 3), LookAt: vecmath.Vec3{}, FOVDegrees: 60}

	img, err := Render(context.Background(), sphere, cam, 64, 64, nil)
	require.NoError(t, err)

	bg := []uint8{ToByte(background.X), ToByte(background.Y), ToByte(background.Z)}
	for _, corner := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		cr, cg, cb := pixelAt(img, corner[0], corner[1])
		assert.Equal(t, bg[0], cr, "corner (%d,%d) red channel", corner[0], corner[1])
		assert.Equal(t, bg[1], cg, "corner (%d,%d) green channel", corner[0], corner[1])
		assert.Equal(t, bg[2], cb, "corner (%d,%d) blue channel", corner[0], corner[1])
	}

	// The centre pixel should be lit (not background) since it hits the
	// sphere head-on.
	cr, cg, cb := pixelAt(img, 32, 32)
	assert.False(t, cr == bg[0] && cg == bg[1] && cb == bg[2])
}

func TestRenderReportsProgress(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	cam := Camera{Origin: vecmath.New(0, 0, 3), LookAt: vecmath.Vec3{}, FOVDegrees: 60}

	var lastDone, lastTotal int
	_, err := Render(context.Background(), sphere, cam, 8, 8, func(done, total int) {
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)
	assert.Equal(t, 8, lastTotal)
	assert.LessOrEqual(t, lastDone, 8)
}

func pixelAt(img *Image, x, y int) (uint8, uint8, uint8) {
	i := (y*img.Width + x) * 3
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}
