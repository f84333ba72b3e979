package render

import "sdfield/pkg/vecmath"

const (
	hitEpsilon      = 1e-3
	maxTraceDist    = 100
	maxTraceSteps   = 256
	normalEpsilon   = 1e-4
	shadowMaxSteps  = 64
	shadowFarClip   = 50
	shadowHardness  = 16
	aoSampleCount   = 5
	aoSampleSpacing = 0.1
	aoFalloff       = 0.5
)

// SDF is anything sphere tracing can march: a signed distance at a point.
type SDF interface {
	Evaluate(p vecmath.Vec3) float32
}

// March sphere-traces from ro along rd, returning the distance travelled.
// A miss (t exceeds maxTraceDist or the iteration budget is exhausted)
// also returns maxTraceDist, so callers can test for background with one
// compare.
func March(sdf SDF, ro, rd vecmath.Vec3) float32 {
	var t float32
	for i := 0; i < maxTraceSteps; i++ {
		d := sdf.Evaluate(ro.Add(rd.Scale(t)))
		if d < hitEpsilon {
			return t
		}
		t += d
		if t > maxTraceDist {
			return maxTraceDist
		}
	}
	return maxTraceDist
}

// Normal estimates the surface normal at p via central differences.
func Normal(sdf SDF, p vecmath.Vec3) vecmath.Vec3 {
	ex := vecmath.New(normalEpsilon, 0, 0)
	ey := vecmath.New(0, normalEpsilon, 0)
	ez := vecmath.New(0, 0, normalEpsilon)
	nx := sdf.Evaluate(p.Add(ex)) - sdf.Evaluate(p.Sub(ex))
	ny := sdf.Evaluate(p.Add(ey)) - sdf.Evaluate(p.Sub(ey))
	nz := sdf.Evaluate(p.Add(ez)) - sdf.Evaluate(p.Sub(ez))
	return vecmath.New(nx, ny, nz).Normalise()
}

// SoftShadow marches from a hit point (already offset off the surface by
// the caller) toward the light, returning a penumbra factor in [0, 1]
// where 0 is full shadow.
func SoftShadow(sdf SDF, p, lightDir vecmath.Vec3) float32 {
	res := float32(1)
	t := float32(0.01)
	for i := 0; i < shadowMaxSteps && t < shadowFarClip; i++ {
		d := sdf.Evaluate(p.Add(lightDir.Scale(t)))
		if d < hitEpsilon {
			return 0
		}
		res = minf32(res, shadowHardness*d/t)
		t += d
	}
	return vecmath.Clamp(res, 0, 1)
}

// AmbientOcclusion samples the SDF outward along the normal to estimate
// occlusion from nearby geometry.
func AmbientOcclusion(sdf SDF, p, n vecmath.Vec3) float32 {
	var occ float32
	weight := float32(1)
	for i := 1; i <= aoSampleCount; i++ {
		d := aoSampleSpacing * float32(i)
		sample := p.Add(n.Scale(d))
		occ += (d - sdf.Evaluate(sample)) * weight
		weight *= aoFalloff
	}
	return vecmath.Clamp(1-occ, 0, 1)
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
