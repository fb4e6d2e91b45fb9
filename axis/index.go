package axis

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// An EdgeHit is the result of a nearest-edge query.
type EdgeHit struct {
	Edge *Edge
	Dist float64

	// Proj is the point on the edge closest to the query.
	Proj model3d.Coord3D
}

// A NodeHit is the result of a nearest-node query.
type NodeHit struct {
	Node *Node
	Dist float64
}

// A FeatureIndex answers nearest-feature queries against a
// fixed skeleton.
//
// When several features are equally close, the one that
// comes last in the skeleton wins. Deleted edges are never
// returned.
//
// Implementations must be safe to query concurrently.
type FeatureIndex interface {
	NearestEdge(p model3d.Coord3D) (EdgeHit, bool)
	NearestNode(p model3d.Coord3D) (NodeHit, bool)
}

// BruteForceIndex checks every feature for every query.
type BruteForceIndex struct {
	Skeleton *Skeleton
}

// NewBruteForceIndex creates a BruteForceIndex.
func NewBruteForceIndex(s *Skeleton) FeatureIndex {
	return &BruteForceIndex{Skeleton: s}
}

func (b *BruteForceIndex) NearestEdge(p model3d.Coord3D) (EdgeHit, bool) {
	best := EdgeHit{Dist: math.Inf(1)}
	edges := b.Skeleton.Edges
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if e.Deleted {
			continue
		}
		dist, proj := segmentProjection(p, e.V1.Position, e.V2.Position)
		if dist < best.Dist {
			best = EdgeHit{Edge: e, Dist: dist, Proj: proj}
		}
	}
	return best, best.Edge != nil
}

func (b *BruteForceIndex) NearestNode(p model3d.Coord3D) (NodeHit, bool) {
	return nearestNode(b.Skeleton.Nodes, p)
}

// boundSlack keeps rounding in the bounding sphere test
// from skipping an edge that ties with the best one.
const boundSlack = 1e-9

// BoundedIndex is like BruteForceIndex, but skips the
// projection onto any edge whose bounding sphere is
// farther away than the closest edge found so far.
//
// The skeleton must not change while the index is in use.
type BoundedIndex struct {
	Skeleton *Skeleton

	centers []model3d.Coord3D
	radii   []float64
}

// NewBoundedIndex creates a BoundedIndex.
func NewBoundedIndex(s *Skeleton) FeatureIndex {
	res := &BoundedIndex{
		Skeleton: s,
		centers:  make([]model3d.Coord3D, len(s.Edges)),
		radii:    make([]float64, len(s.Edges)),
	}
	for i, e := range s.Edges {
		res.centers[i] = e.V1.Position.Mid(e.V2.Position)
		res.radii[i] = e.Length() / 2
	}
	return res
}

func (b *BoundedIndex) NearestEdge(p model3d.Coord3D) (EdgeHit, bool) {
	best := EdgeHit{Dist: math.Inf(1)}
	edges := b.Skeleton.Edges
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if e.Deleted {
			continue
		}
		if p.Dist(b.centers[i])-b.radii[i] > best.Dist+boundSlack {
			continue
		}
		dist, proj := segmentProjection(p, e.V1.Position, e.V2.Position)
		if dist < best.Dist {
			best = EdgeHit{Edge: e, Dist: dist, Proj: proj}
		}
	}
	return best, best.Edge != nil
}

func (b *BoundedIndex) NearestNode(p model3d.Coord3D) (NodeHit, bool) {
	return nearestNode(b.Skeleton.Nodes, p)
}

func nearestNode(nodes []*Node, p model3d.Coord3D) (NodeHit, bool) {
	best := NodeHit{Dist: math.Inf(1)}
	for i := len(nodes) - 1; i >= 0; i-- {
		if dist := p.Dist(nodes[i].Position); dist < best.Dist {
			best = NodeHit{Node: nodes[i], Dist: dist}
		}
	}
	return best, best.Node != nil
}
