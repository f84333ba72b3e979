// Package scene binds a packed list of primitives, a settings block, and
// a seeded noise permutation into a single scene-SDF value exposing one
// Evaluate(point) operation.
//
// A Scene is built once (Build) from an ordered list of tagged-variant
// primitives (sdf.Primitive values, one kind plus its parameters) and is
// immutable and safe for concurrent read-only Evaluate calls from every
// worker in the render and polygonalise kernels.
package scene
