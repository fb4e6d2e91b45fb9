package axis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/unixpickle/voxelaxis/voxels"
)

// RefineOptions configures Refine.
type RefineOptions struct {
	// Iterations is the number of snap, aggregate and
	// revoxelize rounds. Values below 1 mean one round.
	Iterations int

	Snapper    Snapper
	Rasterizer voxels.Rasterizer

	// Round, if set, is called after every round.
	Round func(stats RoundStats)
}

// RoundStats summarizes one round of Refine.
type RoundStats struct {
	Round int
	Snap  SnapStats

	// Occupied is the number of occupied cells after the
	// grid was rebuilt.
	Occupied int

	ThicknessMean   float64
	ThicknessStdDev float64
	RadiusMean      float64
}

// Refine fits the skeleton's thickness to the grid, then
// rebuilds the grid from the skeleton, as many times as
// requested. Each round snaps against the grid produced by
// the round before.
//
// If the skeleton is empty, ErrEmptySkeleton is returned
// and the grid is left as it was.
func Refine(g *voxels.Grid, s *Skeleton, opts RefineOptions) ([]RoundStats, error) {
	if s.Empty() {
		return nil, ErrEmptySkeleton
	}
	iters := opts.Iterations
	if iters < 1 {
		iters = 1
	}
	var res []RoundStats
	for i := 0; i < iters; i++ {
		snapStats, err := opts.Snapper.Snap(g, s)
		if err != nil {
			return res, err
		}
		AggregateThickness(s, g.Dim)
		AggregateNodeRadii(s)
		if _, err := Revoxelize(g, s, opts.Rasterizer); err != nil {
			return res, err
		}
		stats := Summarize(s)
		stats.Round = i
		stats.Snap = snapStats
		stats.Occupied = g.NumOccupied()
		res = append(res, stats)
		if opts.Round != nil {
			opts.Round(stats)
		}
	}
	return res, nil
}

// Summarize computes thickness and radius statistics over
// the live edges and the nodes with a radius.
func Summarize(s *Skeleton) RoundStats {
	var thickness, radii []float64
	for _, e := range s.Edges {
		if !e.Deleted {
			thickness = append(thickness, e.Thickness...)
		}
	}
	for _, n := range s.Nodes {
		if n.HasRadius {
			radii = append(radii, n.Radius)
		}
	}

	var res RoundStats
	if len(thickness) > 1 {
		res.ThicknessMean, res.ThicknessStdDev = stat.MeanStdDev(thickness, nil)
	} else if len(thickness) == 1 {
		res.ThicknessMean = thickness[0]
	}
	if len(radii) > 0 {
		res.RadiusMean = stat.Mean(radii, nil)
	}
	return res
}
