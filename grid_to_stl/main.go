// Command grid_to_stl converts a .vxg density grid into a
// triangle mesh and saves it as an STL file.
//
// By default every visible voxel becomes a cube. With
// -smooth, the surface is extracted from the interpolated
// weights with marching cubes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/config"
	"github.com/unixpickle/voxelaxis/stlexport"
	"github.com/unixpickle/voxelaxis/voxels"
)

func main() {
	var configPath string
	var threshold float64
	var outputPath string
	var smooth bool
	var showInside bool

	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")

	flag.StringVar(&configPath, "config", "", "JSON config file")
	flag.Float64Var(&threshold, "threshold", -1, "minimum raw density for occupancy (overrides config)")
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.BoolVar(&smooth, "smooth", false, "use marching cubes instead of cubes")
	flag.BoolVar(&showInside, "show-inside", false, "keep voxels hidden by their neighbors")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <grid.vxg>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	defer klog.Flush()

	if len(flag.Args()) != 1 {
		flag.Usage()
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		essentials.Must(err)
	}
	if threshold >= 0 {
		cfg.Threshold = threshold
	}
	if showInside {
		cfg.HideInside = false
	}
	essentials.Must(cfg.Validate())

	grid, err := voxels.LoadGrid(flag.Arg(0), cfg.LoadOptions())
	essentials.Must(err)
	if cfg.FixDiagonals {
		klog.V(1).Infof("lonely diagonal pass wrote %d cells", voxels.FixLonelyDiagonals(grid))
	}

	var mesh *model3d.Mesh
	if smooth {
		mesh = stlexport.SmoothMesh(grid)
	} else {
		mesh = stlexport.CubeMesh(grid, cfg.HideInside)
	}
	essentials.Must(stlexport.SaveSTL(outputPath, mesh))
	klog.Infof("saved %s with %d triangles", outputPath, len(mesh.TriangleSlice()))
}
