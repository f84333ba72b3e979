package sdf

import "sdfield/pkg/vecmath"

// Union returns the exact boolean union of two distance fields.
func Union(d1, d2 float32) float32 { return minf(d1, d2) }

// Intersection returns the exact boolean intersection of two distance fields.
func Intersection(d1, d2 float32) float32 { return maxf(d1, d2) }

// Subtraction returns d2 with d1 carved out of it (d2 minus d1).
func Subtraction(d1, d2 float32) float32 { return maxf(-d1, d2) }

// SmoothUnion blends d1 and d2 with a quadratic polynomial over a region
// of size k, degenerating to Union as k -> 0.
//
// Smooth union is not associative: folding smooth_union across more than
// two primitives depends on fold order. Scene evaluation folds left to
// right over primitive declaration order to keep results deterministic.
func SmoothUnion(d1, d2, k float32) float32 {
	if k <= 0 {
		return Union(d1, d2)
	}
	h := vecmath.Clamp(0.5+0.5*(d2-d1)/k, 0, 1)
	return vecmath.LerpScalar(d2, d1, h) - k*h*(1-h)
}

// Twist rotates the XZ plane of p by an angle proportional to p.Y and k.
// The result is not a true distance field but a Lipschitz-bounded
// approximation; callers stacking twist with other deformations are
// expected to compensate with a global distance-scale factor.
func Twist(p vecmath.Vec3, k float32) vecmath.Vec3 {
	c := cosf(k * p.Y)
	s := sinf(k * p.Y)
	return vecmath.New(c*p.X-s*p.Z, p.Y, s*p.X+c*p.Z)
}

// Bend rotates the XY plane of p by an angle proportional to p.X and k,
// analogous to Twist.
func Bend(p vecmath.Vec3, k float32) vecmath.Vec3 {
	c := cosf(k * p.X)
	s := sinf(k * p.X)
	return vecmath.New(c*p.X-s*p.Y, s*p.X+c*p.Y, p.Z)
}
