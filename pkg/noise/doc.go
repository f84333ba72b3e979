// Package noise implements seeded 3-D gradient (Perlin-style) coherent
// noise, fractional Brownian motion, and domain warping.
//
// The permutation table and fade/lerp helpers follow the classic
// Perlin gradient-noise formulation, in 3-D and single precision
// throughout.
package noise
