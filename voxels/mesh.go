package voxels

import (
	"math"
	"sort"

	"github.com/unixpickle/model3d/model3d"
)

// VoxelizeMesh creates a cubic grid of gridSize voxels per
// side around a mesh.
//
// A voxel is Full if it cannot be reached from outside of
// the mesh without crossing the surface, or if it is next
// to a part of the surface. Otherwise, it is Empty.
func VoxelizeMesh(m *model3d.Mesh, gridSize int) *Grid {
	collider := model3d.MeshToCollider(m)
	v := &meshVoxelizer{
		Collider: collider,
		Grid:     cubicGrid(collider, gridSize),
	}
	return v.Voxelize()
}

// VoxelizeSolid creates a cubic grid of gridSize voxels per
// side around a solid, where a voxel is Full if the solid
// contains its center.
func VoxelizeSolid(s model3d.Solid, gridSize int) *Grid {
	g := cubicGrid(s, gridSize)
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				if s.Contains(cellCenter(g, Index{Z: z, Y: y, X: x})) {
					g.Set(z, y, x, Full)
					g.raw[g.index(z, y, x)] = 1
				}
			}
		}
	}
	return g
}

// cubicGrid creates a grid with equal sides, centered on
// the bounds of an object.
func cubicGrid(b model3d.Bounder, gridSize int) *Grid {
	sizes := b.Max().Sub(b.Min())
	size := math.Max(math.Max(sizes.X, sizes.Y), sizes.Z)

	unit := model3d.Coord3D{X: 1, Y: 1, Z: 1}
	g := NewGrid(gridSize, gridSize, gridSize, size/float64(gridSize))
	g.Origin = sizes.Sub(unit.Scale(size)).Scale(0.5).Add(b.Min())
	return g
}

// cellCenter gets the world-space center of a cell. The
// index may be one step outside of the grid.
func cellCenter(g *Grid, idx Index) model3d.Coord3D {
	c := model3d.Coord3D{X: float64(idx.X), Y: float64(idx.Y), Z: float64(idx.Z)}
	return g.Origin.Add(c.Add(model3d.Coord3D{X: 0.5, Y: 0.5, Z: 0.5}).Scale(g.Dim))
}

type meshVoxelizer struct {
	Collider model3d.Collider
	Grid     *Grid
}

func (m *meshVoxelizer) Voxelize() *Grid {
	reachable := newPaddedMask(m.Grid)
	edges := newPaddedMask(m.Grid)

	queue := []Index{{Z: -1, Y: -1, X: -1}}
	reachable.Set(queue[0])

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		reachable.Neighbors(idx, func(neighbor Index) {
			connected, onEdge := m.connect(idx, neighbor)
			if connected {
				if !reachable.Get(neighbor) {
					reachable.Set(neighbor)
					queue = append(queue, neighbor)
				}
			} else if onEdge {
				edges.Set(idx)
			}
		})
	}

	g := m.Grid
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				idx := Index{Z: z, Y: y, X: x}
				if edges.Get(idx) || !reachable.Get(idx) {
					g.Set(z, y, x, Full)
					g.raw[g.index(z, y, x)] = 1
				}
			}
		}
	}
	return g
}

// connect attempts to move from one cell to another.
//
// If the surface is in the way, connected is false and
// sourceBorder tells if the surface is closer to the
// source cell than to the destination.
func (m *meshVoxelizer) connect(i1, i2 Index) (connected, sourceBorder bool) {
	c1 := cellCenter(m.Grid, i1)
	c2 := cellCenter(m.Grid, i2)

	// A sphere query only looks at a local neighborhood,
	// so it is much cheaper than a ray cast.
	if !m.Collider.SphereCollision(c1.Mid(c2), c1.Dist(c2)/(2-1e-8)) {
		return true, false
	}

	ray := &model3d.Ray{
		Origin:    c1,
		Direction: c2.Sub(c1),
	}
	coll, ok := m.Collider.FirstRayCollision(ray)
	if !ok || coll.Scale > 1 {
		return true, false
	}
	return false, coll.Scale < 0.5
}

// paddedMask is a boolean mask over a grid with one extra
// layer of cells on every side.
type paddedMask struct {
	NX, NY, NZ int
	Data       []bool
}

func newPaddedMask(g *Grid) *paddedMask {
	return &paddedMask{
		NX:   g.NX,
		NY:   g.NY,
		NZ:   g.NZ,
		Data: make([]bool, (g.NX+2)*(g.NY+2)*(g.NZ+2)),
	}
}

func (p *paddedMask) offset(idx Index) int {
	return (idx.X + 1) + (p.NX+2)*((idx.Y+1)+(p.NY+2)*(idx.Z+1))
}

func (p *paddedMask) Get(idx Index) bool {
	return p.Data[p.offset(idx)]
}

func (p *paddedMask) Set(idx Index) {
	p.Data[p.offset(idx)] = true
}

func (p *paddedMask) InBounds(idx Index) bool {
	return idx.X >= -1 && idx.Y >= -1 && idx.Z >= -1 &&
		idx.X <= p.NX && idx.Y <= p.NY && idx.Z <= p.NZ
}

// Neighbors calls f for all 26 neighbors of a cell that
// are inside the padded bounds.
func (p *paddedMask) Neighbors(idx Index, f func(Index)) {
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := Index{Z: idx.Z + dz, Y: idx.Y + dy, X: idx.X + dx}
				if p.InBounds(n) {
					f(n)
				}
			}
		}
	}
}

// NonManifoldSolid is a solid made out of a mesh that may
// contain (near-)duplicate triangles.
//
// A point is inside if most of a fixed set of rays leave
// it through an odd number of distinct boundaries.
type NonManifoldSolid struct {
	model3d.Collider
}

// parityRays is the number of rays cast by Contains. It is
// odd so that votes cannot tie.
const parityRays = 5

var parityDirections = spiralDirections(parityRays)

func (n *NonManifoldSolid) Contains(c model3d.Coord3D) bool {
	if !model3d.InBounds(n, c) {
		return false
	}
	eps := n.Max().Sub(n.Min()).Norm() * 1e-8
	var inside int
	for _, d := range parityDirections {
		if n.crossings(&model3d.Ray{Origin: c, Direction: d}, eps)%2 == 1 {
			inside++
		}
	}
	return 2*inside > len(parityDirections)
}

// crossings counts the boundaries a ray passes through.
// Hits closer together than eps along the ray are one
// boundary, which covers duplicate triangles as well as
// rays through shared edges and vertices.
func (n *NonManifoldSolid) crossings(r *model3d.Ray, eps float64) int {
	var scales []float64
	n.Collider.RayCollisions(r, func(rc model3d.RayCollision) {
		scales = append(scales, rc.Scale)
	})
	return countClusters(scales, eps)
}

// countClusters sorts values in place and counts the runs
// whose neighbouring values are at most eps apart.
func countClusters(values []float64, eps float64) int {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	count := 1
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] > eps {
			count++
		}
	}
	return count
}

// spiralDirections spreads n unit vectors over the sphere
// along a golden-angle spiral. The z offsets are shifted so
// that no direction is parallel to an axis plane.
func spiralDirections(n int) []model3d.Coord3D {
	golden := math.Pi * (3 - math.Sqrt(5))
	res := make([]model3d.Coord3D, n)
	for i := range res {
		z := 1 - (2*float64(i)+1.3)/float64(n)
		r := math.Sqrt(1 - z*z)
		theta := golden*float64(i) + 0.1
		res[i] = model3d.Coord3D{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
	}
	return res
}
