package mesh

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"sdfield/pkg/vecmath"
)

// SDF is anything the polygonaliser can sample: a signed distance at a
// point. scene.Scene satisfies this interface.
type SDF interface {
	Evaluate(p vecmath.Vec3) float32
}

const vertexEpsilon = 1e-5

// cube holds the eight corner positions and values for one grid cell.
type cube struct {
	positions [8]vecmath.Vec3
	values    [8]float32
}

func (g Grid) sampleCube(sdf SDF, x, y, z int, size vecmath.Vec3) cube {
	var c cube
	for i := 0; i < 8; i++ {
		c.positions[i] = g.cornerPosition(x, y, z, i, size)
		c.values[i] = sdf.Evaluate(c.positions[i])
	}
	return c
}

// cubeIndex builds the 8-bit corner sign pattern for a cube, bit i set
// iff corner i's value is strictly below iso (the tie-break rule:
// exactly-iso corners count as outside).
func cubeIndex(c cube, iso float32) uint8 {
	var idx uint8
	for i := 0; i < 8; i++ {
		if c.values[i] < iso {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

func vertexInterp(iso float32, pa, pb vecmath.Vec3, va, vb float32) vecmath.Vec3 {
	if absf32(iso-va) < vertexEpsilon {
		return pa
	}
	if absf32(iso-vb) < vertexEpsilon {
		return pb
	}
	if absf32(vb-va) < vertexEpsilon {
		return pa
	}
	mu := (iso - va) / (vb - va)
	return vecmath.Lerp(pa, pb, mu)
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// triangleCount returns how many triangles a cube index contributes,
// without building any vertices (pass one).
func triangleCount(idx uint8) int {
	if edgeTable[idx] == 0 {
		return 0
	}
	n := 0
	for _, e := range triTable[idx] {
		if e == -1 {
			break
		}
		n++
	}
	return n / 3
}

// emitTriangles writes the cube's triangle vertices (pass two) into dst
// starting at index 0, returning the number of vertices written.
func emitTriangles(c cube, idx uint8, iso float32, dst []vecmath.Vec3) int {
	if edgeTable[idx] == 0 {
		return 0
	}

	var edgeVerts [12]vecmath.Vec3
	for e := 0; e < 12; e++ {
		if edgeTable[idx]&(1<<uint(e)) == 0 {
			continue
		}
		a, b := edgeCorners[e][0], edgeCorners[e][1]
		edgeVerts[e] = vertexInterp(iso, c.positions[a], c.positions[b], c.values[a], c.values[b])
	}

	n := 0
	for _, e := range triTable[idx] {
		if e == -1 {
			break
		}
		dst[n] = edgeVerts[e]
		n++
	}
	return n
}

// Polygonalise runs two-pass marching cubes over grid against sdf at the
// given isovalue, returning a flat vertex array (3 points per triangle,
// unwelded).
//
// Cells are grouped into z-planes and processed concurrently across a
// worker pool; each plane's triangles are written to a pre-sized,
// per-plane output slice, then concatenated in z order, so the emitted
// sequence is identical regardless of how goroutines are scheduled.
func Polygonalise(sdf SDF, grid Grid, iso float32) []vecmath.Vec3 {
	size := grid.cellSize()

	type planeResult struct {
		verts []vecmath.Vec3
	}
	results := make([]planeResult, grid.Rz)

	workers := runtime.GOMAXPROCS(0)
	planes := make(chan int, grid.Rz)
	for z := 0; z < grid.Rz; z++ {
		planes <- z
	}
	close(planes)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for z := range planes {
				results[z].verts = polygonalisePlane(sdf, grid, z, size, iso)
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r.verts)
	}
	out := make([]vecmath.Vec3, 0, total)
	for _, r := range results {
		out = append(out, r.verts...)
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Polygonalise",
		"resolution": []int{grid.Rx, grid.Ry, grid.Rz},
		"vertices":   len(out),
		"triangles":  len(out) / 3,
	}).Info("polygonalisation complete")

	return out
}

// polygonalisePlane runs both marching-cubes passes over a single
// constant-z slab of cells in x-then-y order, returning that plane's
// vertices.
func polygonalisePlane(sdf SDF, grid Grid, z int, size vecmath.Vec3, iso float32) []vecmath.Vec3 {
	n := 0
	cubes := make([]cube, 0, grid.Rx*grid.Ry)
	indices := make([]uint8, 0, grid.Rx*grid.Ry)

	for y := 0; y < grid.Ry; y++ {
		for x := 0; x < grid.Rx; x++ {
			c := grid.sampleCube(sdf, x, y, z, size)
			idx := cubeIndex(c, iso)
			cubes = append(cubes, c)
			indices = append(indices, idx)
			n += triangleCount(idx) * 3
		}
	}

	verts := make([]vecmath.Vec3, n)
	offset := 0
	for i, idx := range indices {
		written := emitTriangles(cubes[i], idx, iso, verts[offset:])
		offset += written
	}
	return verts
}
