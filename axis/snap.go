package axis

import (
	"math"
	"runtime"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

// SnapStats summarizes a snapping pass.
type SnapStats struct {
	Voxels      int
	EdgeSamples int
	NodeSamples int
}

// A Snapper assigns occupied voxels to their nearest
// skeleton feature and records the thickness each voxel
// implies.
type Snapper struct {
	// NewIndex builds the index used for nearest-feature
	// queries. If nil, NewBruteForceIndex is used.
	NewIndex func(s *Skeleton) FeatureIndex

	// Workers is the number of goroutines used for queries.
	// If 0, GOMAXPROCS is used.
	Workers int
}

type snapHit struct {
	edge    EdgeHit
	hasEdge bool
	node    NodeHit
}

// Snap registers every occupied voxel of g with the
// nearest feature of s.
//
// A voxel goes to its nearest edge only if the edge is
// strictly closer than its nearest node. Edge samples are
// the distance to the edge, bucketed by the position of
// the projection along the edge. Node samples are the
// distance to the node, or the node's radius if that is
// larger.
//
// Queries run concurrently, but samples are appended in
// z, y, x order of the voxels, so the result does not
// depend on Workers.
func (s *Snapper) Snap(g *voxels.Grid, sk *Skeleton) (SnapStats, error) {
	if sk.Empty() {
		return SnapStats{}, ErrEmptySkeleton
	}

	newIndex := s.NewIndex
	if newIndex == nil {
		newIndex = NewBruteForceIndex
	}
	index := newIndex(sk)

	var points []model3d.Coord3D
	g.OccupiedCells(func(idx voxels.Index) {
		points = append(points, g.Corner(idx.Z, idx.Y, idx.X))
	})

	hits := make([]snapHit, len(points))
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	essentials.ConcurrentMap(workers, len(points), func(i int) {
		h := &hits[i]
		h.edge, h.hasEdge = index.NearestEdge(points[i])
		h.node, _ = index.NearestNode(points[i])
	})

	stats := SnapStats{Voxels: len(points)}
	for _, h := range hits {
		if h.hasEdge && h.edge.Dist < h.node.Dist {
			registerEdge(h.edge, g.Dim)
			stats.EdgeSamples++
		} else {
			registerNode(h.node)
			stats.NodeSamples++
		}
	}
	return stats, nil
}

func registerEdge(h EdgeHit, dim float64) {
	e := h.Edge
	if e.thicknessData == nil {
		e.thicknessData = make([][]float64, e.NumBuckets(dim))
	}
	bucket := int(math.Round(h.Proj.Dist(e.V1.Position) / dim))
	if bucket < 0 {
		bucket = 0
	} else if bucket >= len(e.thicknessData) {
		bucket = len(e.thicknessData) - 1
	}
	e.thicknessData[bucket] = append(e.thicknessData[bucket], h.Dist)
}

func registerNode(h NodeHit) {
	n := h.Node
	sample := h.Dist
	if n.HasRadius {
		sample = math.Max(n.Radius, sample)
	}
	n.radiusData = append(n.radiusData, sample)
}
