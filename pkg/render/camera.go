package render

import (
	"math"

	"sdfield/pkg/vecmath"
)

// worldUp is the fixed up vector used to build the camera basis; it must
// not be parallel to the view direction.
var worldUp = vecmath.New(0, 1, 0)

// Camera is a pinhole camera positioned at Origin looking at LookAt, with
// vertical field of view FOVDegrees.
type Camera struct {
	Origin     vecmath.Vec3
	LookAt     vecmath.Vec3
	FOVDegrees float32
}

// basis is the camera's orthonormal frame: forward, right, up.
type basis struct {
	forward, right, up vecmath.Vec3
}

func (c Camera) basis() basis {
	f := c.LookAt.Sub(c.Origin).Normalise()
	r := worldUp.Cross(f).Normalise()
	u := f.Cross(r)
	return basis{forward: f, right: r, up: u}
}

// Ray generates the camera ray for pixel (x, y) in a width×height image,
// per the camera's pixel-to-ray mapping.
func (c Camera) Ray(x, y, width, height int) (origin, direction vecmath.Vec3) {
	b := c.basis()
	w, h := float32(width), float32(height)
	uvx := (2*float32(x)/w - 1) * (w / h)
	uvy := -(2*float32(y)/h - 1)

	fovRad := c.FOVDegrees * float32(math.Pi) / 180
	focalDist := float32(1) / tanf(fovRad/2)
	focalPoint := c.Origin.Add(b.forward.Scale(focalDist))

	target := focalPoint.Add(b.right.Scale(uvx)).Add(b.up.Scale(uvy))
	direction = target.Sub(c.Origin).Normalise()
	return c.Origin, direction
}

func tanf(x float32) float32 { return float32(math.Tan(float64(x))) }
