package axis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AggregateThickness reduces the raw samples of every edge
// into its thickness profile, then discards the samples.
//
// Each bucket gets the largest sample it received. A
// bucket with no samples, or whose largest sample is NaN
// or not above dim, gets dim: no part of an edge is
// thinner than a voxel.
//
// Edges with no samples keep their current thickness.
func AggregateThickness(s *Skeleton, dim float64) {
	for _, e := range s.Edges {
		if e.Deleted || len(e.thicknessData) == 0 {
			continue
		}
		e.Thickness = make([]float64, len(e.thicknessData))
		for i, samples := range e.thicknessData {
			t := dim
			if len(samples) > 0 {
				if m := floats.Max(samples); !math.IsNaN(m) && m > dim {
					t = m
				}
			}
			e.Thickness[i] = t
		}
		e.thicknessData = nil
	}
}

// AggregateNodeRadii sets the radius of every node from its
// raw samples and the thickness of its edges, then
// discards the samples.
//
// The radius is the mean of the largest sample (if any are
// positive) and the thickness at this node's end of every
// live edge that has a thickness profile. A node with
// neither loses its radius, so it is not drawn when the
// grid is rebuilt.
//
// Edge thickness should be aggregated first.
func AggregateNodeRadii(s *Skeleton) {
	for _, n := range s.Nodes {
		var rNode float64
		if len(n.radiusData) > 0 {
			rNode = floats.Max(n.radiusData)
			if math.IsNaN(rNode) {
				rNode = 0
			}
		}

		var rEdges float64
		var numEdges int
		for _, e := range n.edges {
			if e.Deleted {
				continue
			}
			if t, ok := e.Endpoint(n); ok {
				rEdges += t
				numEdges++
			}
		}

		count := numEdges
		if rNode > 0 {
			count++
		}
		if count > 0 {
			n.SetRadius((rEdges + rNode) / float64(count))
		} else {
			n.ClearRadius()
		}
		n.radiusData = nil
	}
}
