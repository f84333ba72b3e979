package sdf

import (
	"math"

	"sdfield/pkg/vecmath"
)

// Kind identifies which closed-form distance function a Primitive
// evaluates.
type Kind uint8

const (
	// KindSphere is a sphere centred at Centre with radius Radius.
	KindSphere Kind = iota
	// KindCapsule is a capsule between endpoints A and B with radius Radius.
	KindCapsule
	// KindBox is an axis-aligned box centred at Centre with HalfExtents.
	KindBox
	// KindRoundCone is a tapered capsule between A and B with radii R1, R2.
	KindRoundCone
	// KindTorus is a torus centred at Centre with major radius MajorRadius
	// and minor radius MinorRadius, lying in the local XZ plane.
	KindTorus
)

// Primitive is a tagged-variant distance primitive: one kind, plus the
// parameters that kind requires. Unused fields for a given Kind are
// zero. Primitives are immutable after a Scene is built from them.
type Primitive struct {
	Kind Kind

	Centre      vecmath.Vec3
	Radius      float32
	A, B        vecmath.Vec3
	R1, R2      float32
	HalfExtents vecmath.Vec3
	MajorRadius float32
	MinorRadius float32

	// Translate is applied to the query point before evaluation:
	// Evaluate(p) computes the primitive's local distance at p - Translate.
	Translate vecmath.Vec3
}

// Sphere returns a sphere primitive.
func Sphere(centre vecmath.Vec3, radius float32) Primitive {
	return Primitive{Kind: KindSphere, Centre: centre, Radius: radius}
}

// Capsule returns a capsule primitive between endpoints a and b.
func Capsule(a, b vecmath.Vec3, radius float32) Primitive {
	return Primitive{Kind: KindCapsule, A: a, B: b, Radius: radius}
}

// Box returns an axis-aligned box primitive.
func Box(centre, halfExtents vecmath.Vec3) Primitive {
	return Primitive{Kind: KindBox, Centre: centre, HalfExtents: halfExtents}
}

// RoundCone returns a tapered-capsule primitive between endpoints a and b
// with radii r1 at a and r2 at b.
func RoundCone(a, b vecmath.Vec3, r1, r2 float32) Primitive {
	return Primitive{Kind: KindRoundCone, A: a, B: b, R1: r1, R2: r2}
}

// Torus returns a torus primitive lying in the local XZ plane.
func Torus(centre vecmath.Vec3, majorRadius, minorRadius float32) Primitive {
	return Primitive{Kind: KindTorus, Centre: centre, MajorRadius: majorRadius, MinorRadius: minorRadius}
}

// Evaluate returns the signed distance from p to the primitive's surface,
// negative inside.
func (prim Primitive) Evaluate(p vecmath.Vec3) float32 {
	local := p.Sub(prim.Translate)
	switch prim.Kind {
	case KindSphere:
		return sdSphere(local.Sub(prim.Centre), prim.Radius)
	case KindCapsule:
		return sdCapsule(local, prim.A, prim.B, prim.Radius)
	case KindBox:
		return sdBox(local.Sub(prim.Centre), prim.HalfExtents)
	case KindRoundCone:
		return sdRoundCone(local, prim.A, prim.B, prim.R1, prim.R2)
	case KindTorus:
		return sdTorus(local.Sub(prim.Centre), prim.MajorRadius, prim.MinorRadius)
	default:
		return float32(math.NaN())
	}
}
