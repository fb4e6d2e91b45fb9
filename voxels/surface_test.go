package voxels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSurfaceFullCube(t *testing.T) {
	g := fullGrid(3)
	var count int
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if OnSurface(g, z, y, x) {
					count++
				} else {
					assert.Equal(t, Index{Z: 1, Y: 1, X: 1}, Index{Z: z, Y: y, X: x})
				}
			}
		}
	}
	assert.Equal(t, 26, count)
}

func TestOnSurfaceBoundary(t *testing.T) {
	g := NewGrid(4, 5, 6, 1)
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				boundary := z == 0 || y == 0 || x == 0 || z == g.NZ-1 || y == g.NY-1 || x == g.NX-1
				if boundary {
					assert.True(t, OnSurface(g, z, y, x))
				}
			}
		}
	}
}

func TestOnSurfaceInterior(t *testing.T) {
	g := fullGrid(5)
	assert.False(t, OnSurface(g, 2, 2, 2))
	g.Set(2, 2, 3, 0.4)
	assert.True(t, OnSurface(g, 2, 2, 2))
	g.Set(2, 2, 3, Repaired)
	assert.False(t, OnSurface(g, 2, 2, 2))
	assert.False(t, OnSurface(g, 1, 2, 3))
}

func TestIsContour(t *testing.T) {
	g := fullGrid(3)
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				assert.False(t, IsContour(g, z, y, x), "cell (%d,%d,%d)", z, y, x)
			}
		}
	}

	g.Set(1, 1, 1, Empty)
	assert.True(t, IsContour(g, 0, 1, 1))
	assert.True(t, IsContour(g, 1, 1, 2))
	assert.False(t, IsContour(g, 0, 0, 0))
	assert.False(t, IsContour(g, 2, 2, 1))

	// Clamping makes an empty cell its own neighbor on the
	// boundary.
	g = fullGrid(3)
	g.Set(0, 0, 0, Empty)
	assert.True(t, IsContour(g, 0, 0, 0))
	assert.True(t, IsContour(g, 0, 0, 1))
}
