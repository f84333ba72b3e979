package vecmath

import "math"

// Vec3 is a 3-tuple of single-precision floats used interchangeably as a
// point or a direction/vector.
type Vec3 struct {
	X, Y, Z float32
}

// New returns the vector (x, y, z).
func New(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled componentwise by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul returns the componentwise (Hadamard) product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// degenerateLength is the threshold below which Normalise returns the
// zero vector instead of dividing by a near-zero length.
const degenerateLength = 1e-8

// Normalise returns v scaled to unit length, or the zero vector if v's
// length is below 1e-8.
func (v Vec3) Normalise() Vec3 {
	l := v.Length()
	if l < degenerateLength {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Abs returns the componentwise absolute value of v.
func (v Vec3) Abs() Vec3 {
	return Vec3{absf(v.X), absf(v.Y), absf(v.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{maxf(v.X, o.X), maxf(v.Y, o.Y), maxf(v.Z, o.Z)}
}

// MaxComponent returns the largest component of v.
func (v Vec3) MaxComponent() float32 {
	return maxf(v.X, maxf(v.Y, v.Z))
}

// Lerp performs componentwise linear interpolation between a and b by t.
func Lerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// LerpScalar linearly interpolates between two scalars by t.
func LerpScalar(a, b, t float32) float32 { return a + (b-a)*t }

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
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

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{minf(v.X, o.X), minf(v.Y, o.Y), minf(v.Z, o.Z)}
}

// Clamp01 clamps each component of v to [0, 1].
func (v Vec3) Clamp01() Vec3 {
	return Vec3{clamp01(v.X), clamp01(v.Y), clamp01(v.Z)}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp clamps x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
