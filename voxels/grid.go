// Package voxels implements dense occupancy grids, the
// text format they are loaded from, and the passes that
// repair, inspect, and rasterize into them.
package voxels

import (
	"github.com/unixpickle/model3d/model3d"
)

// A Weight is the occupancy weight of a single cell.
//
// Weights are continuous so that thresholded input, full
// occupancy, and repaired cells can be told apart, but a
// cell is only ever considered occupied or empty.
type Weight float32

const (
	Empty Weight = 0
	Full  Weight = 1

	// Repaired marks a cell filled in to bridge a lonely
	// diagonal. It is occupied, but not Full.
	Repaired Weight = 0.99

	OccupiedThreshold Weight = 0.5
)

// Occupied checks if the weight is above the occupancy
// threshold.
func (w Weight) Occupied() bool {
	return w > OccupiedThreshold
}

// An Index identifies a cell by its (z, y, x) position.
type Index struct {
	Z, Y, X int
}

// Grid is a dense 3D array of occupancy weights, indexed
// as (z, y, x).
//
// A parallel array of raw densities is kept alongside the
// weights. It is set once by the loader and never changed
// by any pass.
type Grid struct {
	NX, NY, NZ int

	// Dim is the world-space size of one voxel.
	Dim float64

	// Origin is added to a voxel's scaled index to get its
	// world-space position.
	Origin model3d.Coord3D

	weights []Weight
	raw     []float64
}

// NewGrid creates an empty grid.
func NewGrid(nx, ny, nz int, dim float64) *Grid {
	return &Grid{
		NX:      nx,
		NY:      ny,
		NZ:      nz,
		Dim:     dim,
		weights: make([]Weight, nx*ny*nz),
		raw:     make([]float64, nx*ny*nz),
	}
}

func (g *Grid) index(z, y, x int) int {
	return x + g.NX*(y+g.NY*z)
}

// InBounds checks if an index is inside the grid.
func (g *Grid) InBounds(z, y, x int) bool {
	return z >= 0 && y >= 0 && x >= 0 && z < g.NZ && y < g.NY && x < g.NX
}

// Clamp moves each coordinate independently into the
// valid range of its axis.
func (g *Grid) Clamp(z, y, x int) (int, int, int) {
	return clampInt(z, g.NZ-1), clampInt(y, g.NY-1), clampInt(x, g.NX-1)
}

// At gets the weight of a cell.
func (g *Grid) At(z, y, x int) Weight {
	return g.weights[g.index(z, y, x)]
}

// Set sets the weight of a cell.
func (g *Grid) Set(z, y, x int, w Weight) {
	g.weights[g.index(z, y, x)] = w
}

// Occupied checks if a cell is occupied.
func (g *Grid) Occupied(z, y, x int) bool {
	return g.At(z, y, x).Occupied()
}

// Raw gets the unthresholded density the cell was loaded
// with, or 0 if the grid was not loaded from densities.
func (g *Grid) Raw(z, y, x int) float64 {
	return g.raw[g.index(z, y, x)]
}

// Corner gets the world-space position of a voxel, which
// is the minimum corner of the cell.
func (g *Grid) Corner(z, y, x int) model3d.Coord3D {
	idx := model3d.Coord3D{X: float64(x), Y: float64(y), Z: float64(z)}
	return g.Origin.Add(idx.Scale(g.Dim))
}

// Clear resets every weight to Empty.
func (g *Grid) Clear() {
	for i := range g.weights {
		g.weights[i] = Empty
	}
}

// Binarize snaps every weight to Full or Empty depending
// on whether it is occupied.
func (g *Grid) Binarize() {
	for i, w := range g.weights {
		if w.Occupied() {
			g.weights[i] = Full
		} else {
			g.weights[i] = Empty
		}
	}
}

// OccupiedCells calls f for every occupied cell, in
// z, y, x order.
func (g *Grid) OccupiedCells(f func(idx Index)) {
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				if g.Occupied(z, y, x) {
					f(Index{Z: z, Y: y, X: x})
				}
			}
		}
	}
}

// NumOccupied counts the occupied cells.
func (g *Grid) NumOccupied() int {
	var n int
	for _, w := range g.weights {
		if w.Occupied() {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	res := *g
	res.weights = append([]Weight{}, g.weights...)
	res.raw = append([]float64{}, g.raw...)
	return &res
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	} else if v > max {
		return max
	}
	return v
}
