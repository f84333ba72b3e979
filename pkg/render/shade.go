package render

import "sdfield/pkg/vecmath"

// lightPos is the single directional light's world position.
var lightPos = vecmath.New(2, 4, 3)

// background is the miss colour.
var background = vecmath.New(0.1, 0.1, 0.15)

const ambientTerm = 0.1

// matColour is the uniform material colour; every surface shades white so
// colour variation comes entirely from lighting.
var matColour = vecmath.New(1, 1, 1)

// Shade computes the final linear-space colour for a ray that travelled
// distance t along (ro, rd) against sdf. Misses return the background
// colour.
func Shade(sdf SDF, ro, rd vecmath.Vec3, t float32) vecmath.Vec3 {
	if t >= maxTraceDist {
		return background
	}

	p := ro.Add(rd.Scale(t))
	n := Normal(sdf, p)
	lightDir := lightPos.Sub(p).Normalise()

	diffuse := maxf32(n.Dot(lightDir), 0)
	shadowOrigin := p.Add(n.Scale(hitEpsilon))
	shadow := SoftShadow(sdf, shadowOrigin, lightDir)
	ao := AmbientOcclusion(sdf, p, n)

	radiance := diffuse*shadow + ambientTerm*ao
	return matColour.Scale(radiance).Clamp01()
}

// ToByte converts a clamped [0,1] linear channel to an 8-bit value by
// truncation, with no gamma correction.
func ToByte(c float32) uint8 {
	return uint8(vecmath.Clamp(c, 0, 1) * 255)
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
