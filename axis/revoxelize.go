package axis

import (
	"github.com/unixpickle/voxelaxis/voxels"
)

// Revoxelize rebuilds a grid from a skeleton as a union of
// spheres.
//
// Every weight in g is reset first. Then a sphere is drawn
// at every node with a radius, and along every live edge
// one sphere per thickness bucket, from the last bucket
// back to the first, with the bucket's thickness as its
// radius. Bucket j of L is centered at V1*(1-j/L)+V2*(j/L).
//
// The number of cells set (counting overlaps) is returned.
func Revoxelize(g *voxels.Grid, s *Skeleton, r voxels.Rasterizer) (int, error) {
	if s.Empty() {
		return 0, ErrEmptySkeleton
	}
	g.Clear()

	var count int
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		n := s.Nodes[i]
		if n.HasRadius {
			count += r.RasterizeSphere(g, n.Position, n.Radius)
		}
	}
	for i := len(s.Edges) - 1; i >= 0; i-- {
		e := s.Edges[i]
		if e.Deleted || len(e.Thickness) == 0 {
			continue
		}
		l := float64(len(e.Thickness))
		for j := len(e.Thickness) - 1; j >= 0; j-- {
			p := lerp(e.V1.Position, e.V2.Position, float64(j)/l)
			count += r.RasterizeSphere(g, p, e.Thickness[j])
		}
	}
	return count, nil
}
