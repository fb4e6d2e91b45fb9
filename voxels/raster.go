package voxels

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A SampleMode decides which point of a cell is tested
// against a sphere during rasterization.
type SampleMode int

const (
	// CornerSampling tests the minimum corner of each cell
	// and only visits indices from floor((c-r)/dim) up to,
	// but not including, floor((c+r)/dim) on each axis.
	//
	// This places spheres half a voxel off from where center
	// sampling would, and is the default.
	CornerSampling SampleMode = iota

	// CenterSampling tests the center of each cell and
	// visits every cell whose center can be in the sphere.
	CenterSampling
)

// A Rasterizer marks spheres as occupied in a grid.
//
// Spheres are given in world space. The grid's origin is
// subtracted before sampling, so for a grid at the world
// origin the sample point of cell (z, y, x) is exactly
// (x, y, z)*dim in corner mode.
type Rasterizer struct {
	Sampling SampleMode
}

// RasterizeSphere rasterizes a sphere with corner
// sampling.
func RasterizeSphere(g *Grid, center model3d.Coord3D, radius float64) int {
	var r Rasterizer
	return r.RasterizeSphere(g, center, radius)
}

// RasterizeSphere sets every cell whose sample point is
// within radius of center to Full. Cells outside of the
// grid are skipped.
//
// The number of cells set is returned.
func (r Rasterizer) RasterizeSphere(g *Grid, center model3d.Coord3D, radius float64) int {
	if radius < 0 || math.IsNaN(radius) {
		return 0
	}
	local := center.Sub(g.Origin)

	var offset float64
	var min, max [3]int
	if r.Sampling == CenterSampling {
		offset = 0.5
		c := [3]float64{local.X, local.Y, local.Z}
		for i, v := range c {
			min[i] = int(math.Ceil((v-radius)/g.Dim - offset))
			max[i] = int(math.Floor((v+radius)/g.Dim-offset)) + 1
		}
	} else {
		min, max = SampleBounds(g, center, radius)
	}

	size := [3]int{g.NX, g.NY, g.NZ}
	for i := range min {
		if min[i] < 0 {
			min[i] = 0
		}
		if max[i] > size[i] {
			max[i] = size[i]
		}
	}

	var count int
	for z := min[2]; z < max[2]; z++ {
		for y := min[1]; y < max[1]; y++ {
			for x := min[0]; x < max[0]; x++ {
				sample := model3d.Coord3D{
					X: float64(x) + offset,
					Y: float64(y) + offset,
					Z: float64(z) + offset,
				}.Scale(g.Dim)
				if sample.Dist(local) <= radius {
					g.Set(z, y, x, Full)
					count++
				}
			}
		}
	}
	return count
}

// SampleBounds gets the half-open index range, per axis in
// x, y, z order, that corner sampling visits for a sphere,
// before clipping to the grid.
func SampleBounds(g *Grid, center model3d.Coord3D, radius float64) (min, max [3]int) {
	local := center.Sub(g.Origin)
	c := [3]float64{local.X, local.Y, local.Z}
	for i, v := range c {
		min[i] = int(math.Floor((v - radius) / g.Dim))
		max[i] = int(math.Floor((v + radius) / g.Dim))
	}
	return
}
