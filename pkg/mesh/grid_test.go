package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/vecmath"
)

func TestNewGridRejectsInvertedBounds(t *testing.T) {
	_, err := NewGrid(vecmath.New(1, 0, 0), vecmath.New(0, 1, 1), 4, 4, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestNewGridRejectsZeroResolution(t *testing.T) {
	_, err := NewGrid(vecmath.Vec3{}, vecmath.New(1, 1, 1), 0, 4, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestCornerPositionsSpanCell(t *testing.T) {
	g, err := NewGrid(vecmath.Vec3{}, vecmath.New(2, 2, 2), 2, 2, 2)
	require.NoError(t, err)
	size := g.cellSize()

	corner0 := g.cornerPosition(0, 0, 0, 0, size)
	assert.Equal(t, vecmath.Vec3{}, corner0)

	corner6 := g.cornerPosition(0, 0, 0, 6, size)
	assert.Equal(t, size, corner6)
}
