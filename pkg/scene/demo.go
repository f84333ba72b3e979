package scene

import (
	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

// The demo constructors below are adapted from kalpana3d's bundled example
// scenes (original_source/kalpana3d/examples), carried forward per
// SPEC_FULL.md §12 so cmd/render and cmd/mesh have something concrete to
// point at without requiring a scene file format.

// DemoSphere returns the simplest possible scene: one unit sphere at the
// origin, no noise, a minimal smooth-union radius (smooth union over a
// single primitive is a no-op fold).
func DemoSphere() (*Scene, error) {
	prims := []sdf.Primitive{sdf.Sphere(vecmath.Vec3{}, 1)}
	return Build(prims, Settings{SmoothUnionK: 0.05, Seed: 1})
}

// DemoTwoSphereUnion returns a two-sphere scene: a large and a small
// sphere blended with a moderate smooth-union radius.
func DemoTwoSphereUnion() (*Scene, error) {
	prims := []sdf.Primitive{
		sdf.Sphere(vecmath.New(-0.8, 0, 0), 1),
		sdf.Sphere(vecmath.New(0.8, 0, 0), 0.8),
	}
	return Build(prims, Settings{SmoothUnionK: 0.5, Seed: 1})
}

// DemoOrganicBlob returns a denser scene exercising every primitive kind,
// a round-cone taper, and a domain-warped noise field, for exercising the
// renderer's shading and the mesher's triangle density under realistic
// load.
func DemoOrganicBlob() (*Scene, error) {
	prims := []sdf.Primitive{
		sdf.Sphere(vecmath.New(0, 0, 0), 1.1),
		sdf.Capsule(vecmath.New(-1.2, -0.6, 0), vecmath.New(-0.3, 0.8, 0.2), 0.35),
		sdf.RoundCone(vecmath.New(0.4, -1.0, 0), vecmath.New(1.3, 0.9, -0.3), 0.55, 0.2),
		sdf.Box(vecmath.New(0, -1.4, 0.4), vecmath.New(0.6, 0.25, 0.6)),
		sdf.Torus(vecmath.New(0, 1.3, 0), 0.7, 0.18),
	}
	return Build(prims, Settings{
		SmoothUnionK:   0.35,
		Seed:           42,
		NoiseOctaves:   4,
		NoiseAmplitude: 0.12,
	})
}

// DemoTwistedTree returns a trunk-and-branches scene built entirely from
// round cones and a whole-scene Twist deformer, adapted from
// final_demo.py's make_tree_sdf: a handful of tapered-capsule branches
// smooth-unioned together, with the query point twisted gently around
// the Y axis before any branch distance is evaluated.
func DemoTwistedTree() (*Scene, error) {
	prims := []sdf.Primitive{
		sdf.RoundCone(vecmath.New(0, -0.5, 0), vecmath.New(0, 1.6, 0), 0.35, 0.12),
		sdf.RoundCone(vecmath.New(0, 0.9, 0), vecmath.New(0.9, 1.8, 0.2), 0.12, 0.05),
		sdf.RoundCone(vecmath.New(0, 1.1, 0), vecmath.New(-0.8, 1.9, -0.3), 0.12, 0.05),
		sdf.RoundCone(vecmath.New(0, 1.3, 0), vecmath.New(0.1, 2.3, 0.7), 0.1, 0.04),
	}
	return Build(prims, Settings{
		SmoothUnionK: 0.2,
		Seed:         11,
		TwistK:       0.5,
	})
}
