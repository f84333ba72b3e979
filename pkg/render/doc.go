// Package render implements the sphere-tracing rasteriser: a pinhole
// camera, a ray marcher over a scene.Scene's distance field, central
// difference normals, soft shadows, ambient occlusion, and tone mapping
// into a parallel-filled RGB image.
//
// Work is split by image row across a worker pool; per-row ordering
// keeps output deterministic regardless of scheduling.
package render
