// Package vecmath provides single-precision 3-vector arithmetic shared by
// the SDF primitive, noise, and rendering kernels.
//
// All operations are pure and value-typed: a Vec3 is passed and returned
// by value so the numerical kernels that build on it (sphere tracing,
// marching cubes) can be called concurrently from multiple goroutines
// without synchronization.
package vecmath
