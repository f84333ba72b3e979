// Package mesh polygonalises a scene's signed distance field into a
// triangle mesh with two-pass marching cubes over a regular voxel grid:
// pass one counts triangles per cell, pass two emits vertices at the
// precomputed grid positions, using the canonical Paul Bourke
// edge/triangle tables in tables.go.
//
// Both passes are parallelised by cell-plane (constant z): each plane
// fills its own pre-sized output slice, and the slices are concatenated
// in z order, so emission order is identical regardless of worker count
// or scheduling.
package mesh
