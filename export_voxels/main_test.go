package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/voxelaxis/voxels"
)

func TestRandomRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		rot := randomRotation(rng)
		x := rot(model3d.Coord3D{X: 1})
		y := rot(model3d.Coord3D{Y: 1})
		z := rot(model3d.Coord3D{Z: 1})
		assert.InDelta(t, 1, x.Norm(), 1e-9)
		assert.InDelta(t, 1, y.Norm(), 1e-9)
		assert.InDelta(t, 0, x.Dot(y), 1e-9)
		assert.InDelta(t, 0, x.Dot(z), 1e-9)

		// Right-handed: no mirroring.
		assert.InDelta(t, 1, x.Cross(y).Dot(z), 1e-9)
	}
}

const cubeOFF = `OFF
8 12 0
0 0 0
1 0 0
1 1 0
0 1 0
0 0 1
1 0 1
1 1 1
0 1 1
3 0 2 1
3 0 3 2
3 4 5 6
3 4 6 7
3 0 1 5
3 0 5 4
3 2 3 7
3 2 7 6
3 1 2 6
3 1 6 5
3 0 4 7
3 0 7 3
`

func TestExportTree(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(inDir, "chair"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "chair", "cube.off"), []byte(cubeOFF), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("skip"), 0644))

	ex := &exporter{Variations: 2, GridSize: 4, NonManifold: true, Rand: rand.New(rand.NewSource(1))}
	require.NoError(t, ex.ExportTree(inDir, outDir))

	for _, name := range []string{"cube-0.vxg", "cube-1.vxg"} {
		path := filepath.Join(outDir, "chair", name)
		g, err := voxels.LoadGrid(path, voxels.DefaultLoadOptions())
		require.NoError(t, err)
		assert.Equal(t, 4, g.NX)
		assert.Equal(t, 4, g.NY)
		assert.Equal(t, 4, g.NZ)
		assert.Greater(t, g.NumOccupied(), 0)
	}
	_, err := os.Stat(filepath.Join(outDir, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}
