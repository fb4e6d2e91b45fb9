package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

func assertSameGrid(t *testing.T, expected, actual *voxels.Grid) {
	t.Helper()
	for z := 0; z < expected.NZ; z++ {
		for y := 0; y < expected.NY; y++ {
			for x := 0; x < expected.NX; x++ {
				if expected.At(z, y, x) != actual.At(z, y, x) {
					t.Errorf("cell (%d,%d,%d): expected %v but got %v", z, y, x,
						expected.At(z, y, x), actual.At(z, y, x))
				}
			}
		}
	}
}

func TestRevoxelizeSingleNode(t *testing.T) {
	s := &Skeleton{}
	s.AddNode(model3d.Coord3D{}).SetRadius(3)

	g := voxels.NewGrid(8, 8, 8, 1)
	for z := 0; z < 8; z++ {
		g.Set(z, 7, 7, voxels.Full)
	}
	_, err := Revoxelize(g, s, voxels.Rasterizer{})
	require.NoError(t, err)

	expected := voxels.NewGrid(8, 8, 8, 1)
	voxels.RasterizeSphere(expected, model3d.Coord3D{}, 3)
	assertSameGrid(t, expected, g)
	assert.Equal(t, expected.NumOccupied(), g.NumOccupied())
}

func TestRevoxelizeEdge(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{X: 1, Y: 3, Z: 3})
	b := s.AddNode(model3d.Coord3D{X: 5, Y: 3, Z: 3})
	e := s.AddEdge(a, b)
	e.Thickness = []float64{1, 2, 1.5, 1}

	g := voxels.NewGrid(8, 8, 8, 1)
	_, err := Revoxelize(g, s, voxels.Rasterizer{})
	require.NoError(t, err)

	expected := voxels.NewGrid(8, 8, 8, 1)
	for j, r := range e.Thickness {
		voxels.RasterizeSphere(expected, model3d.Coord3D{X: 1 + float64(j), Y: 3, Z: 3}, r)
	}
	assertSameGrid(t, expected, g)

	// The last sphere stops short of V2.
	assert.False(t, g.Occupied(3, 3, 5))
}

func TestRevoxelizeSkipsDeleted(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{X: 1, Y: 3, Z: 3})
	b := s.AddNode(model3d.Coord3D{X: 5, Y: 3, Z: 3})
	e := s.AddEdge(a, b)
	e.Thickness = []float64{1, 1}
	s.DeleteEdge(e)

	g := voxels.NewGrid(8, 8, 8, 1)
	_, err := Revoxelize(g, s, voxels.Rasterizer{})
	require.NoError(t, err)
	assert.Zero(t, g.NumOccupied())
}

func TestRevoxelizeEmpty(t *testing.T) {
	g := voxels.NewGrid(2, 2, 2, 1)
	g.Set(1, 1, 1, voxels.Full)
	_, err := Revoxelize(g, &Skeleton{}, voxels.Rasterizer{})
	assert.Equal(t, ErrEmptySkeleton, err)
	assert.True(t, g.Occupied(1, 1, 1))
}
