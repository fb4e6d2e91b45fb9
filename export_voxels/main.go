// Command export_voxels converts a directory tree of OFF
// models into .vxg voxel grids.
//
// The first grid of every model is unrotated; the rest use
// random rotations drawn from -seed.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/plan-systems/klog"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

type exporter struct {
	Variations  int
	GridSize    int
	NonManifold bool
	Rand        *rand.Rand
}

func main() {
	var ex exporter
	var seed int64

	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")

	flag.IntVar(&ex.Variations, "variations", 1, "number of grids per model")
	flag.IntVar(&ex.GridSize, "grid-size", 64, "number of voxels along each dimension")
	flag.BoolVar(&ex.NonManifold, "non-manifold", false, "use ray parity instead of a flood fill")
	flag.Int64Var(&seed, "seed", 0, "seed for random rotations")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input_dir> <output_dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	defer klog.Flush()

	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	ex.Rand = rand.New(rand.NewSource(seed))
	essentials.Must(ex.ExportTree(flag.Arg(0), flag.Arg(1)))
}

// ExportTree mirrors the directories under inDir into
// outDir, converting every .off file it finds.
func (e *exporter) ExportTree(inDir, outDir string) error {
	return filepath.WalkDir(inDir, func(inPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(inDir, inPath)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outDir, relPath)
		if d.IsDir() {
			return os.MkdirAll(outPath, 0755)
		}
		if filepath.Ext(inPath) != ".off" {
			return nil
		}
		return e.ConvertModel(inPath, outPath)
	})
}

// ConvertModel voxelizes one OFF file into
// <outPath without extension>-<i>.vxg files.
func (e *exporter) ConvertModel(inPath, outPath string) error {
	klog.Infof("converting %s", inPath)

	r, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer r.Close()
	triangles, err := model3d.ReadOFF(r)
	if err != nil {
		return err
	}
	mesh := model3d.NewMeshTriangles(triangles)

	outBase := outPath[:len(outPath)-len(filepath.Ext(outPath))]
	for i := 0; i < e.Variations; i++ {
		gridPath := fmt.Sprintf("%s-%d.vxg", outBase, i)
		m := mesh
		if i != 0 {
			m = m.MapCoords(randomRotation(e.Rand))
		}
		grid := e.voxelize(m)
		klog.V(1).Infof("%s: %d occupied cells", gridPath, grid.NumOccupied())
		if err := voxels.SaveGrid(gridPath, grid, true); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) voxelize(m *model3d.Mesh) *voxels.Grid {
	if e.NonManifold {
		solid := &voxels.NonManifoldSolid{Collider: model3d.MeshToCollider(m)}
		return voxels.VoxelizeSolid(solid, e.GridSize)
	}
	return voxels.VoxelizeMesh(m, e.GridSize)
}

// randomRotation creates a random proper rotation. The
// third axis is the cross product of the first two, so the
// basis is never mirrored.
func randomRotation(rng *rand.Rand) func(model3d.Coord3D) model3d.Coord3D {
	x := randomUnit(rng)
	y := randomUnit(rng)
	y = y.Sub(x.Scale(x.Dot(y)))
	for y.Norm() < 1e-6 {
		y = randomUnit(rng)
		y = y.Sub(x.Scale(x.Dot(y)))
	}
	y = y.Scale(1 / y.Norm())
	z := x.Cross(y)
	return func(c model3d.Coord3D) model3d.Coord3D {
		return x.Scale(c.X).Add(y.Scale(c.Y)).Add(z.Scale(c.Z))
	}
}

func randomUnit(rng *rand.Rand) model3d.Coord3D {
	for {
		c := model3d.Coord3D{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if n := c.Norm(); n > 1e-6 {
			return c.Scale(1 / n)
		}
	}
}
