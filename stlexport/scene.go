// Package stlexport turns voxel grids into triangle meshes
// and saves them as STL files.
package stlexport

import (
	"sort"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

// cubeFaces lists the corners of each face of a unit cube,
// counter-clockwise when seen from outside. Bit 0 of a
// corner selects max X, bit 1 max Y, and bit 2 max Z.
var cubeFaces = [6]struct {
	Normal  voxels.Index
	Corners [4]int
}{
	{voxels.Index{X: -1}, [4]int{0, 4, 6, 2}},
	{voxels.Index{X: 1}, [4]int{1, 3, 7, 5}},
	{voxels.Index{Y: -1}, [4]int{0, 1, 5, 4}},
	{voxels.Index{Y: 1}, [4]int{2, 6, 7, 3}},
	{voxels.Index{Z: -1}, [4]int{0, 2, 3, 1}},
	{voxels.Index{Z: 1}, [4]int{4, 5, 7, 6}},
}

// A MeshScene is a voxels.Scene that shows each voxel as a
// cube, and can merge all of the cubes into one mesh.
type MeshScene struct {
	Dim float64

	// Solid, if set, tells which cells are filled. Faces
	// between two filled cells are left out of merged
	// meshes. If nil, the shown cubes are used instead.
	Solid func(idx voxels.Index) bool

	cubes map[voxels.Index]model3d.Coord3D
}

// NewMeshScene creates an empty scene.
func NewMeshScene(dim float64) *MeshScene {
	return &MeshScene{Dim: dim, cubes: map[voxels.Index]model3d.Coord3D{}}
}

// GridScene creates an empty scene which leaves out faces
// between occupied cells of g.
func GridScene(g *voxels.Grid) *MeshScene {
	m := NewMeshScene(g.Dim)
	m.Solid = func(idx voxels.Index) bool {
		return g.InBounds(idx.Z, idx.Y, idx.X) && g.Occupied(idx.Z, idx.Y, idx.X)
	}
	return m
}

func (m *MeshScene) AddVoxel(idx voxels.Index, pos model3d.Coord3D) {
	m.cubes[idx] = pos
}

func (m *MeshScene) RemoveVoxel(idx voxels.Index) {
	delete(m.cubes, idx)
}

// NumVoxels gets the number of cubes in the scene.
func (m *MeshScene) NumVoxels() int {
	return len(m.cubes)
}

// Merge creates a single mesh out of every cube in the
// scene.
func (m *MeshScene) Merge() *model3d.Mesh {
	indices := make([]voxels.Index, 0, len(m.cubes))
	for idx := range m.cubes {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		} else if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	mesh := model3d.NewMesh()
	for _, idx := range indices {
		min := m.cubes[idx]
		corner := func(i int) model3d.Coord3D {
			c := min
			if i&1 != 0 {
				c.X += m.Dim
			}
			if i&2 != 0 {
				c.Y += m.Dim
			}
			if i&4 != 0 {
				c.Z += m.Dim
			}
			return c
		}
		for _, face := range cubeFaces {
			neighbor := voxels.Index{
				Z: idx.Z + face.Normal.Z,
				Y: idx.Y + face.Normal.Y,
				X: idx.X + face.Normal.X,
			}
			if m.filled(neighbor) {
				continue
			}
			c := face.Corners
			mesh.Add(&model3d.Triangle{corner(c[0]), corner(c[1]), corner(c[2])})
			mesh.Add(&model3d.Triangle{corner(c[0]), corner(c[2]), corner(c[3])})
		}
	}
	return mesh
}

func (m *MeshScene) filled(idx voxels.Index) bool {
	if m.Solid != nil {
		return m.Solid(idx)
	}
	_, ok := m.cubes[idx]
	return ok
}

// CubeMesh merges a cube for every occupied cell of g into
// one mesh. If hideInside is set, only cells on the
// surface of the grid are used.
//
// The grid is binarized in the process.
func CubeMesh(g *voxels.Grid, hideInside bool) *model3d.Mesh {
	scene := GridScene(g)
	voxels.NewTable(scene).Render(g, hideInside)
	return scene.Merge()
}
