// Command snap_axis fits the thickness of a medial axis
// skeleton to a voxel grid, then rebuilds the grid from the
// fitted skeleton.
//
// The inputs are never overwritten. By default, results go
// next to them as <name>-refined.vxg and <name>-refined.json.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/voxelaxis/axis"
	"github.com/unixpickle/voxelaxis/config"
	"github.com/unixpickle/voxelaxis/stlexport"
	"github.com/unixpickle/voxelaxis/voxels"
)

func main() {
	var configPath string
	var dim float64
	var iterations int
	var workers int
	var sampling string
	var outGrid string
	var outSkeleton string
	var outSTL string

	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.StringVar(&configPath, "config", "", "JSON config file")
	flag.Float64Var(&dim, "dim", 0, "voxel size (overrides config)")
	flag.IntVar(&iterations, "iterations", 0, "number of refinement rounds (overrides config)")
	flag.IntVar(&workers, "workers", -1, "number of snapping goroutines (overrides config)")
	flag.StringVar(&sampling, "sampling", "", "sphere sampling, 'corner' or 'center' (overrides config)")
	flag.StringVar(&outGrid, "out-grid", "", "output grid path (default <grid>-refined.vxg)")
	flag.StringVar(&outSkeleton, "out-skeleton", "", "output skeleton path (default <skeleton>-refined.json)")
	flag.StringVar(&outSTL, "stl", "", "optional STL file for the rebuilt grid")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <grid.vxg> <skeleton.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	defer klog.Flush()

	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	gridPath := flag.Arg(0)
	skelPath := flag.Arg(1)
	if outGrid == "" {
		outGrid = refinedPath(gridPath)
	}
	if outSkeleton == "" {
		outSkeleton = refinedPath(skelPath)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		essentials.Must(err)
	}
	if dim != 0 {
		cfg.Dim = dim
	}
	if iterations != 0 {
		cfg.Iterations = iterations
	}
	if workers >= 0 {
		cfg.Workers = workers
	}
	if sampling != "" {
		cfg.Sampling = sampling
	}
	essentials.Must(cfg.Validate())

	grid, err := refineFiles(cfg, gridPath, skelPath, outGrid, outSkeleton)
	if err != nil {
		klog.Fatalf("%v", err)
	}
	klog.Infof("saved %s and %s", outSkeleton, outGrid)

	if outSTL != "" {
		mesh := stlexport.CubeMesh(grid, cfg.HideInside)
		essentials.Must(stlexport.SaveSTL(outSTL, mesh))
		klog.Infof("saved %s with %d triangles", outSTL, len(mesh.TriangleSlice()))
	}
}

// refinedPath derives an output path that sits next to an
// input path.
func refinedPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "-refined" + ext
}

// refineFiles loads a grid and a skeleton, refines them,
// and saves the skeleton and the rebuilt grid weights.
func refineFiles(cfg *config.Config, gridPath, skelPath, outGrid,
	outSkeleton string) (*voxels.Grid, error) {
	if outGrid == gridPath || outSkeleton == skelPath {
		return nil, errors.New("refusing to overwrite an input file")
	}

	grid, err := voxels.LoadGrid(gridPath, cfg.LoadOptions())
	if err != nil {
		return nil, err
	}
	klog.Infof("loaded %dx%dx%d grid with %d occupied cells", grid.NX, grid.NY, grid.NZ,
		grid.NumOccupied())
	if cfg.FixDiagonals {
		n := voxels.FixLonelyDiagonals(grid)
		klog.V(1).Infof("lonely diagonal pass wrote %d cells", n)
	}

	skel, err := axis.LoadSkeleton(skelPath)
	if err != nil {
		return nil, err
	}
	if err := skel.Check(); err != nil {
		return nil, err
	}
	klog.Infof("loaded skeleton with %d nodes and %d edges", len(skel.Nodes), len(skel.Edges))

	opts := cfg.RefineOptions()
	opts.Round = func(s axis.RoundStats) {
		klog.Infof("round %d: voxels=%d edge_samples=%d node_samples=%d occupied=%d",
			s.Round, s.Snap.Voxels, s.Snap.EdgeSamples, s.Snap.NodeSamples, s.Occupied)
		klog.V(1).Infof("round %d: thickness=%.4f+-%.4f mean_radius=%.4f",
			s.Round, s.ThicknessMean, s.ThicknessStdDev, s.RadiusMean)
	}
	if _, err := axis.Refine(grid, skel, opts); err != nil {
		return nil, errors.Wrap(err, "refine")
	}

	if err := axis.SaveSkeleton(outSkeleton, skel); err != nil {
		return nil, err
	}
	// The raw densities are the input's; only the weights
	// describe the rebuilt grid.
	if err := voxels.SaveGrid(outGrid, grid, false); err != nil {
		return nil, err
	}
	return grid, nil
}
