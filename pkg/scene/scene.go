package scene

import (
	"errors"
	"fmt"

	"sdfield/pkg/noise"
	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

// ErrInvalidSettings is wrapped by Build when a scene's global settings
// fail validation (non-positive smooth-union radius, negative octave count).
var ErrInvalidSettings = errors.New("scene: invalid settings")

// Settings holds the global, per-scene parameters.
type Settings struct {
	// NoiseOctaves is the fBm octave count used by the domain warp.
	NoiseOctaves int
	// NoiseAmplitude scales the domain-warp displacement.
	NoiseAmplitude float32
	// SmoothUnionK is the smooth-union blending radius applied between
	// every consecutive pair of primitives during scene evaluation.
	SmoothUnionK float32
	// Seed deterministically constructs the noise permutation table.
	Seed uint32

	// TwistK, if non-zero, rotates the xz plane of the (already warped)
	// query point by an angle proportional to its y coordinate before
	// the primitive fold, per spec.md §4.2's Twist(k) deformer. Zero
	// (the default) is the identity transform.
	TwistK float32
	// BendK, if non-zero, rotates the xy plane of the query point by an
	// angle proportional to its x coordinate before the primitive fold,
	// analogous to TwistK. Zero (the default) is the identity transform.
	BendK float32
}

// validate rejects configuration errors at scene-build time rather than
// attempting partial computation mid-kernel.
func (s Settings) validate() error {
	if s.NoiseOctaves < 0 {
		return fmt.Errorf("%w: noise octave count must be non-negative, got %d", ErrInvalidSettings, s.NoiseOctaves)
	}
	if s.SmoothUnionK <= 0 {
		return fmt.Errorf("%w: smooth_union_k must be positive, got %v", ErrInvalidSettings, s.SmoothUnionK)
	}
	return nil
}

// hugeDistance stands in for +infinity as the initial accumulator value
// in the smooth-union fold.
const hugeDistance = 1e9

// Scene is a closure over an ordered, read-only list of primitives, a
// seeded noise permutation, and global settings. It is immutable after
// Build and may be evaluated concurrently from any number of goroutines.
type Scene struct {
	primitives []sdf.Primitive
	perm       noise.Permutation
	settings   Settings
}

// Build constructs a Scene from an ordered primitive list and settings,
// validating settings eagerly so kernels never observe a half-usable
// scene.
func Build(primitives []sdf.Primitive, settings Settings) (*Scene, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}
	packed := make([]sdf.Primitive, len(primitives))
	copy(packed, primitives)
	return &Scene{
		primitives: packed,
		perm:       noise.NewPermutation(settings.Seed),
		settings:   settings,
	}, nil
}

// Evaluate implements the scene-SDF evaluation protocol: warp the query
// point, apply any global twist/bend deformer, then fold the primitive
// list's distances through a left-to-right smooth union in declaration
// order. Folding order is deterministic because smooth union is not
// associative.
func (s *Scene) Evaluate(p vecmath.Vec3) float32 {
	warped := p
	if s.settings.NoiseOctaves > 0 && s.settings.NoiseAmplitude != 0 {
		warped = noise.DomainWarp(s.perm, p, s.settings.NoiseOctaves, s.settings.NoiseAmplitude)
	}
	if s.settings.TwistK != 0 {
		warped = sdf.Twist(warped, s.settings.TwistK)
	}
	if s.settings.BendK != 0 {
		warped = sdf.Bend(warped, s.settings.BendK)
	}

	d := float32(hugeDistance)
	for _, prim := range s.primitives {
		d = sdf.SmoothUnion(d, prim.Evaluate(warped), s.settings.SmoothUnionK)
	}
	return d
}

// Primitives returns the scene's immutable, ordered primitive list. The
// returned slice must not be mutated by callers.
func (s *Scene) Primitives() []sdf.Primitive { return s.primitives }

// Settings returns the scene's global settings.
func (s *Scene) Settings() Settings { return s.settings }
