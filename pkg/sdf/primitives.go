package sdf

import (
	"math"

	"sdfield/pkg/vecmath"
)

// divisionGuard is the minimum denominator magnitude below which a
// division is skipped in favour of a degenerate-but-finite fallback.
// Near-zero guards are only needed where a division actually appears.
const divisionGuard = 1e-20

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func signf(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// sdSphere returns the signed distance from a point p (already expressed
// relative to the sphere's centre) to a sphere of radius r.
func sdSphere(p vecmath.Vec3, r float32) float32 {
	return p.Length() - r
}

// sdBox returns the signed distance from p (relative to the box centre)
// to an axis-aligned box with half-extents b. Outside the box this is a
// true Euclidean distance; inside, it is a Lipschitz-1 pseudo-distance
// (the negative-interior branch), which is what sphere tracing needs.
func sdBox(p, b vecmath.Vec3) float32 {
	q := p.Abs().Sub(b)
	outside := q.Max(vecmath.Vec3{}).Length()
	inside := minf(maxf(q.X, maxf(q.Y, q.Z)), 0)
	return outside + inside
}

// sdCapsule returns the signed distance from p to the capsule spanning
// endpoints a, b with radius r.
func sdCapsule(p, a, b vecmath.Vec3, r float32) float32 {
	pa := p.Sub(a)
	ba := b.Sub(a)
	denom := ba.Dot(ba)
	var h float32
	if denom > divisionGuard {
		h = vecmath.Clamp(pa.Dot(ba)/denom, 0, 1)
	}
	return pa.Sub(ba.Scale(h)).Length() - r
}

// sdRoundCone returns the signed distance from p to the tapered capsule
// (round cone) spanning endpoints a, b with radii r1 at a and r2 at b.
//
// The formula selects among three algebraic branches: the two endpoint
// hemispheres and the conical side, using sign(rr) and sign(y), sign(z)
// as branch predicates where rr = r1 - r2. A naive interpolation between
// two capsule radii would not be distance-correct for a tapered limb;
// this closed form is, and needs only a single square root per branch.
func sdRoundCone(p, a, b vecmath.Vec3, r1, r2 float32) float32 {
	ba := b.Sub(a)
	l2 := ba.Dot(ba)
	rr := r1 - r2
	a2 := l2 - rr*rr

	var il2 float32
	if l2 > divisionGuard {
		il2 = 1 / l2
	}

	pa := p.Sub(a)
	y := pa.Dot(ba)
	z := y - l2
	x2v := pa.Scale(l2).Sub(ba.Scale(y))
	x2 := x2v.Dot(x2v)
	y2 := y * y * l2
	z2 := z * z * l2

	k := signf(rr) * rr * rr * x2
	if signf(z)*a2*z2 > k {
		return sqrtf(x2+z2)*il2 - r2
	}
	if signf(y)*a2*y2 < k {
		return sqrtf(x2+y2)*il2 - r1
	}
	return (sqrtf(x2*a2*il2) + y*rr) * il2 - r1
}

// sdTorus returns the signed distance from p (relative to the torus
// centre) to a torus lying in the local XZ plane with major radius R and
// minor radius r.
func sdTorus(p vecmath.Vec3, majorRadius, minorRadius float32) float32 {
	qx := sqrtf(p.X*p.X+p.Z*p.Z) - majorRadius
	qy := p.Y
	return sqrtf(qx*qx+qy*qy) - minorRadius
}
