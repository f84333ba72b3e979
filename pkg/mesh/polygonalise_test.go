package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/sdf"
	"sdfield/pkg/vecmath"
)

// constSDF is a trivial SDF returning the same value everywhere, used to
// exercise the fully-inside/fully-outside closure invariant without
// depending on pkg/sdf.
type constSDF float32

func (c constSDF) Evaluate(vecmath.Vec3) float32 { return float32(c) }

func TestMarchingCubesClosureFullyOutside(t *testing.T) {
	grid, err := NewGrid(vecmath.Vec3{}, vecmath.New(1, 1, 1), 1, 1, 1)
	require.NoError(t, err)

	verts := Polygonalise(constSDF(10), grid, 0)
	assert.Empty(t, verts)
}

func TestMarchingCubesClosureFullyInside(t *testing.T) {
	grid, err := NewGrid(vecmath.Vec3{}, vecmath.New(1, 1, 1), 1, 1, 1)
	require.NoError(t, err)

	verts := Polygonalise(constSDF(-10), grid, 0)
	assert.Empty(t, verts)
}

func TestCountThenEmitConsistency(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	grid, err := NewGrid(vecmath.New(-2, -2, -2), vecmath.New(2, 2, 2), 8, 8, 8)
	require.NoError(t, err)

	size := grid.cellSize()
	wantVerts := 0
	for z := 0; z < grid.Rz; z++ {
		for y := 0; y < grid.Ry; y++ {
			for x := 0; x < grid.Rx; x++ {
				c := grid.sampleCube(sphere, x, y, z, size)
				idx := cubeIndex(c, 0)
				wantVerts += triangleCount(idx) * 3
			}
		}
	}

	verts := Polygonalise(sphere, grid, 0)
	assert.Len(t, verts, wantVerts)
	assert.Equal(t, 0, len(verts)%3, "vertex count must be a multiple of 3")
}

func TestPolygonaliseSphereProducesTrianglesNearSurface(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	grid, err := NewGrid(vecmath.New(-1.5, -1.5, -1.5), vecmath.New(1.5, 1.5, 1.5), 12, 12, 12)
	require.NoError(t, err)

	verts := Polygonalise(sphere, grid, 0)
	require.NotEmpty(t, verts)
	require.Equal(t, 0, len(verts)%3)

	for _, v := range verts {
		d := sphere.Evaluate(v)
		assert.InDelta(t, 0, d, 0.3, "vertex should lie close to the sphere surface")
	}
}

func TestVertexInterpReturnsEndpointsOnExactMatch(t *testing.T) {
	pa, pb := vecmath.New(0, 0, 0), vecmath.New(1, 0, 0)
	assert.Equal(t, pa, vertexInterp(0, pa, pb, 0, 1))
	assert.Equal(t, pb, vertexInterp(1, pa, pb, 0, 1))
}

func TestVertexInterpDegenerateValuesReturnsFirstPoint(t *testing.T) {
	pa, pb := vecmath.New(0, 0, 0), vecmath.New(1, 0, 0)
	assert.Equal(t, pa, vertexInterp(5, pa, pb, 0.3, 0.30000001))
}

// TestPolygonaliseUnitSphereWorkedExample exercises spec.md §8 scenario 2
// literally: a unit sphere, bounds [-1.5,1.5]^3, resolution 32^3, iso 0.
// Triangle count must land within 10% of 1,200 and every emitted vertex
// must lie within 0.05 of the unit sphere's surface.
func TestPolygonaliseUnitSphereWorkedExample(t *testing.T) {
	sphere := sdf.Sphere(vecmath.Vec3{}, 1)
	grid, err := NewGrid(vecmath.New(-1.5, -1.5, -1.5), vecmath.New(1.5, 1.5, 1.5), 32, 32, 32)
	require.NoError(t, err)

	verts := Polygonalise(sphere, grid, 0)
	require.Equal(t, 0, len(verts)%3)

	triangles := len(verts) / 3
	assert.InDelta(t, 1200, triangles, 1200*0.1)

	for _, v := range verts {
		d := sphere.Evaluate(v)
		assert.InDelta(t, 0, d, 0.05, "vertex must lie within 0.05 of the unit sphere surface")
	}
}
