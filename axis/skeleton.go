// Package axis reconciles voxel grids with a medial axis:
// a graph of nodes and edges which carry a radius or a
// thickness profile.
//
// Occupied voxels are snapped to their nearest feature to
// collect thickness samples, the samples are reduced into
// per-feature radii, and the grid is rebuilt from the
// resulting variable-radius tubes.
package axis

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var (
	// ErrEmptySkeleton is returned by passes that have no
	// nodes to work with. Nothing is modified when it is
	// returned.
	ErrEmptySkeleton = errors.New("axis: skeleton has no nodes")

	// ErrDegenerateEdge is reported for edges whose
	// endpoints coincide. Such edges still take part in
	// snapping, as if they were a single point at V1.
	ErrDegenerateEdge = errors.New("axis: zero-length edge")
)

// A Node is a point on the axis.
type Node struct {
	Position model3d.Coord3D

	// Radius is only meaningful if HasRadius is set.
	Radius    float64
	HasRadius bool

	radiusData []float64
	edges      []*Edge
}

// SetRadius sets the radius and marks it as defined.
func (n *Node) SetRadius(r float64) {
	n.Radius = r
	n.HasRadius = true
}

// ClearRadius marks the radius as undefined.
func (n *Node) ClearRadius() {
	n.Radius = 0
	n.HasRadius = false
}

// Edges gets the edges attached to the node, including
// deleted ones.
func (n *Node) Edges() []*Edge {
	return n.edges
}

// RadiusSamples gets the raw radius samples collected
// since the last aggregation.
func (n *Node) RadiusSamples() []float64 {
	return n.radiusData
}

// An Edge is a segment of the axis between two nodes.
//
// Its thickness profile is split into buckets of one voxel
// along the edge, starting at V1.
type Edge struct {
	V1, V2 *Node

	// Thickness has one value per bucket once samples have
	// been aggregated.
	Thickness []float64

	Deleted bool

	thicknessData [][]float64
}

// Length gets the distance between the endpoints.
func (e *Edge) Length() float64 {
	return e.V1.Position.Dist(e.V2.Position)
}

// Samples gets the raw thickness samples, per bucket,
// collected since the last aggregation. It is nil if no
// voxel has been snapped to the edge.
func (e *Edge) Samples() [][]float64 {
	return e.thicknessData
}

// NumBuckets gets the number of thickness buckets the edge
// has for a given voxel size. It is at least one.
func (e *Edge) NumBuckets(dim float64) int {
	n := int(math.Round(e.Length() / dim))
	if n < 1 {
		return 1
	}
	return n
}

// Endpoint gets the thickness at the end of the edge which
// touches n. It returns false if the edge has no thickness
// or does not touch n.
func (e *Edge) Endpoint(n *Node) (float64, bool) {
	if len(e.Thickness) == 0 {
		return 0, false
	}
	if n == e.V1 {
		return e.Thickness[0], true
	} else if n == e.V2 {
		return e.Thickness[len(e.Thickness)-1], true
	}
	return 0, false
}

// A Skeleton is a medial axis graph.
type Skeleton struct {
	Nodes []*Node
	Edges []*Edge
}

// AddNode creates a node without a radius.
func (s *Skeleton) AddNode(pos model3d.Coord3D) *Node {
	n := &Node{Position: pos}
	s.Nodes = append(s.Nodes, n)
	return n
}

// AddEdge connects two nodes.
func (s *Skeleton) AddEdge(v1, v2 *Node) *Edge {
	e := &Edge{V1: v1, V2: v2}
	s.Edges = append(s.Edges, e)
	v1.edges = append(v1.edges, e)
	if v2 != v1 {
		v2.edges = append(v2.edges, e)
	}
	return e
}

// DeleteEdge marks an edge as deleted. Deleted edges are
// kept in place but ignored by every pass.
func (s *Skeleton) DeleteEdge(e *Edge) {
	e.Deleted = true
}

// Empty checks if there are no nodes to snap to.
func (s *Skeleton) Empty() bool {
	return len(s.Nodes) == 0
}

// Check reports the first live edge of zero length.
func (s *Skeleton) Check() error {
	for i, e := range s.Edges {
		if !e.Deleted && e.Length() == 0 {
			return errors.Wrapf(ErrDegenerateEdge, "edge %d", i)
		}
	}
	return nil
}

// ClearSamples discards all raw samples.
func (s *Skeleton) ClearSamples() {
	for _, n := range s.Nodes {
		n.radiusData = nil
	}
	for _, e := range s.Edges {
		e.thicknessData = nil
	}
}
