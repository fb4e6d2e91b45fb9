package voxels

import (
	"sort"

	"github.com/unixpickle/model3d/model3d"
)

// A Scene displays voxels.
//
// It is notified whenever a voxel becomes visible or stops
// being visible. The position is the voxel's world-space
// corner.
type Scene interface {
	AddVoxel(idx Index, pos model3d.Coord3D)
	RemoveVoxel(idx Index)
}

// A Table tracks which voxels of a grid are currently
// shown in a Scene.
type Table struct {
	Scene Scene

	shown map[Index]bool
}

// NewTable creates a table with no visible voxels.
func NewTable(scene Scene) *Table {
	return &Table{Scene: scene, shown: map[Index]bool{}}
}

// Render binarizes the grid and brings the scene up to
// date with it.
//
// Occupied cells that are not shown yet are added; if
// hideInside is set, only those on the surface are added.
// Shown cells that are no longer occupied are removed.
func (t *Table) Render(g *Grid, hideInside bool) (added, removed int) {
	g.Binarize()
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				idx := Index{Z: z, Y: y, X: x}
				if g.Occupied(z, y, x) {
					if !t.shown[idx] && (!hideInside || OnSurface(g, z, y, x)) {
						t.add(g, idx)
						added++
					}
				} else if t.shown[idx] {
					t.remove(idx)
					removed++
				}
			}
		}
	}
	return
}

// RenderContour makes the scene show exactly the Full
// contour cells of the grid.
func (t *Table) RenderContour(g *Grid) (added, removed int) {
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				idx := Index{Z: z, Y: y, X: x}
				if g.At(z, y, x) == Full && IsContour(g, z, y, x) {
					if !t.shown[idx] {
						t.add(g, idx)
						added++
					}
				} else if t.shown[idx] {
					t.remove(idx)
					removed++
				}
			}
		}
	}
	return
}

// Clear removes every shown voxel from the scene.
func (t *Table) Clear() {
	for _, idx := range t.Visible() {
		t.remove(idx)
	}
}

// Visible gets the shown voxels in z, y, x order.
func (t *Table) Visible() []Index {
	res := make([]Index, 0, len(t.shown))
	for idx := range t.shown {
		res = append(res, idx)
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		} else if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return res
}

// IsVisible checks if a voxel is shown.
func (t *Table) IsVisible(idx Index) bool {
	return t.shown[idx]
}

func (t *Table) add(g *Grid, idx Index) {
	t.shown[idx] = true
	if t.Scene != nil {
		t.Scene.AddVoxel(idx, g.Corner(idx.Z, idx.Y, idx.X))
	}
}

func (t *Table) remove(idx Index) {
	delete(t.shown, idx)
	if t.Scene != nil {
		t.Scene.RemoveVoxel(idx)
	}
}
