package stlexport

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

// GridSolid is a model3d.Solid backed by the interpolated
// weights of a grid.
type GridSolid struct {
	Grid *voxels.Grid

	// Threshold is the smallest interpolated weight that is
	// inside the solid.
	Threshold float64
}

// NewGridSolid creates a solid at the occupancy threshold.
func NewGridSolid(g *voxels.Grid) *GridSolid {
	return &GridSolid{Grid: g, Threshold: float64(voxels.OccupiedThreshold)}
}

// Min gets the minimum of the bounding box, which has a
// margin of one voxel so that the surface is closed.
func (g *GridSolid) Min() model3d.Coord3D {
	d := g.Grid.Dim
	return g.Grid.Origin.Sub(model3d.Coord3D{X: d, Y: d, Z: d})
}

// Max gets the maximum of the bounding box.
func (g *GridSolid) Max() model3d.Coord3D {
	d := g.Grid.Dim
	size := model3d.Coord3D{X: float64(g.Grid.NX + 1), Y: float64(g.Grid.NY + 1), Z: float64(g.Grid.NZ + 1)}
	return g.Grid.Origin.Add(size.Scale(d))
}

// Contains checks if the interpolated weight at the point
// is above the threshold.
func (g *GridSolid) Contains(c model3d.Coord3D) bool {
	return g.Interp(c) > g.Threshold
}

// Interp gets a trilinear interpolation of the weights at
// cell centers.
func (g *GridSolid) Interp(c model3d.Coord3D) float64 {
	c = c.Sub(g.Grid.Origin).Scale(1 / g.Grid.Dim)

	xs, xFracs := roundedCoords(c.X - 0.5)
	ys, yFracs := roundedCoords(c.Y - 0.5)
	zs, zFracs := roundedCoords(c.Z - 0.5)
	var value float64
	for i, x := range xs {
		for j, y := range ys {
			for k, z := range zs {
				value += xFracs[i] * yFracs[j] * zFracs[k] * g.get(z, y, x)
			}
		}
	}
	return value
}

// get gets a weight, or 0 if the cell is out of bounds.
func (g *GridSolid) get(z, y, x int) float64 {
	if !g.Grid.InBounds(z, y, x) {
		return 0
	}
	return float64(g.Grid.At(z, y, x))
}

func roundedCoords(c float64) (vals [2]int, fracs [2]float64) {
	min := int(math.Floor(c))
	max := min + 1
	minFrac := float64(max) - c
	return [2]int{min, max}, [2]float64{minFrac, 1 - minFrac}
}

// SmoothMesh creates a smooth mesh around the occupied
// region of a grid with marching cubes.
func SmoothMesh(g *voxels.Grid) *model3d.Mesh {
	return model3d.MarchingCubesSearch(NewGridSolid(g), g.Dim/2, 8)
}
