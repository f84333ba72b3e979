package noise

import (
	"math"

	"sdfield/pkg/vecmath"
)

// fade is Perlin's C2-continuous quintic smoothing curve
// t^3 (t(6t - 15) + 10), used in place of linear interpolation between
// lattice corners so the noise field's second derivative is continuous.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func floor32(x float32) int32 {
	f := int32(x)
	if x < float32(f) {
		return f - 1
	}
	return f
}

// grad3 computes the dot product of a pseudo-random unit gradient,
// selected by the low 4 bits of hash from Ken Perlin's 16-entry gradient
// set, with the offset vector (x, y, z).
func grad3(hash int32, x, y, z float32) float32 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise3 evaluates seeded 3-D gradient noise at p, returning a value in
// approximately [-1, 1].
func Noise3(perm Permutation, p vecmath.Vec3) float32 {
	xi := floor32(p.X)
	yi := floor32(p.Y)
	zi := floor32(p.Z)

	x := p.X - float32(xi)
	y := p.Y - float32(yi)
	z := p.Z - float32(zi)

	X := xi & 255
	Y := yi & 255
	Z := zi & 255

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := perm.at(X) + Y
	aa := perm.at(a) + Z
	ab := perm.at(a+1) + Z
	b := perm.at(X+1) + Y
	ba := perm.at(b) + Z
	bb := perm.at(b+1) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad3(perm.at(aa), x, y, z), grad3(perm.at(ba), x-1, y, z)),
			lerp(u, grad3(perm.at(ab), x, y-1, z), grad3(perm.at(bb), x-1, y-1, z))),
		lerp(v,
			lerp(u, grad3(perm.at(aa+1), x, y, z-1), grad3(perm.at(ba+1), x-1, y, z-1)),
			lerp(u, grad3(perm.at(ab+1), x, y-1, z-1), grad3(perm.at(bb+1), x-1, y-1, z-1))))
}

// decorrelate is added between fBm octaves so successive octaves sample
// unrelated regions of the same permutation lattice instead of aliasing.
var decorrelate = vecmath.New(100, 100, 100)

// FBM sums octaves octaves of Noise3 with amplitude halving each octave
// (fractional Brownian motion). The result is bounded by 1 - 2^-octaves.
func FBM(perm Permutation, p vecmath.Vec3, octaves int) float32 {
	var sum float32
	amp := float32(0.5)
	q := p
	for i := 0; i < octaves; i++ {
		sum += amp * Noise3(perm, q)
		q = q.Scale(2).Add(decorrelate)
		amp *= 0.5
	}
	return sum
}

var (
	warpOffsetY = vecmath.New(5.2, 1.3, 8.3)
	warpOffsetZ = vecmath.New(4.2, 6.3, 1.3)
)

// DomainWarp perturbs p by an fBm-derived displacement vector scaled by
// amplitude, so that surfaces evaluated at the returned point acquire an
// organic, non-analytic deformation.
func DomainWarp(perm Permutation, p vecmath.Vec3, octaves int, amplitude float32) vecmath.Vec3 {
	q := vecmath.New(
		FBM(perm, p, octaves),
		FBM(perm, p.Add(warpOffsetY), octaves),
		FBM(perm, p.Add(warpOffsetZ), octaves),
	)
	return p.Add(q.Scale(amplitude))
}

// maxFBM returns the tight bound 1 - 2^-octaves used by tests asserting
// the noise-bound invariant.
func maxFBM(octaves int) float32 {
	return 1 - float32(math.Pow(2, float64(-octaves)))
}
