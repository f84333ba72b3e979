package mesh

import (
	"errors"
	"fmt"

	"sdfield/pkg/vecmath"
)

// ErrInvalidGrid is wrapped by NewGrid when the bounding box or
// resolution fails the voxel-grid invariants (max > min, resolution >= 1).
var ErrInvalidGrid = errors.New("mesh: invalid grid")

// Grid is an axis-aligned box partitioned into Rx x Ry x Rz cells. Only
// the resolution and bounds are stored; corner SDF values are computed
// on demand during polygonalisation.
type Grid struct {
	Min, Max   vecmath.Vec3
	Rx, Ry, Rz int
}

// NewGrid validates and constructs a voxel grid.
func NewGrid(min, max vecmath.Vec3, rx, ry, rz int) (Grid, error) {
	if !(max.X > min.X && max.Y > min.Y && max.Z > min.Z) {
		return Grid{}, fmt.Errorf("%w: max must exceed min componentwise", ErrInvalidGrid)
	}
	if rx < 1 || ry < 1 || rz < 1 {
		return Grid{}, fmt.Errorf("%w: resolution must be >= 1 on every axis, got (%d,%d,%d)", ErrInvalidGrid, rx, ry, rz)
	}
	return Grid{Min: min, Max: max, Rx: rx, Ry: ry, Rz: rz}, nil
}

// cellSize returns the size of a single cell along each axis.
func (g Grid) cellSize() vecmath.Vec3 {
	return vecmath.New(
		(g.Max.X-g.Min.X)/float32(g.Rx),
		(g.Max.Y-g.Min.Y)/float32(g.Ry),
		(g.Max.Z-g.Min.Z)/float32(g.Rz),
	)
}

// cornerOffsets gives the unit-cube corner positions in the numbering
// marching cubes fixes: (0,0,0),(1,0,0),(1,1,0),(0,1,0),(0,0,1),(1,0,1),
// (1,1,1),(0,1,1).
var cornerOffsets = [8]vecmath.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 0, Y: 1, Z: 1},
}

// edgeCorners maps each of the 12 cube edges to the pair of corner
// indices it connects, per the canonical edge numbering.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// cellOrigin returns the world-space position of cell (x,y,z)'s corner 0.
func (g Grid) cellOrigin(x, y, z int, size vecmath.Vec3) vecmath.Vec3 {
	return vecmath.New(
		g.Min.X+float32(x)*size.X,
		g.Min.Y+float32(y)*size.Y,
		g.Min.Z+float32(z)*size.Z,
	)
}

// cornerPosition returns the world-space position of corner i of cell
// (x,y,z).
func (g Grid) cornerPosition(x, y, z, corner int, size vecmath.Vec3) vecmath.Vec3 {
	o := cornerOffsets[corner]
	base := g.cellOrigin(x, y, z, size)
	return vecmath.New(
		base.X+o.X*size.X,
		base.Y+o.Y*size.Y,
		base.Z+o.Z*size.Z,
	)
}
