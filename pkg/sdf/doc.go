// Package sdf implements closed-form signed distance functions for the
// primitive kinds (sphere, capsule, box, round cone, torus) and the
// boolean/deformation operators that combine them. Every function here
// is pure and single-precision: given the same point, it returns the
// same distance on any goroutine, any number of times.
package sdf
