package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unixpickle/model3d/model3d"
)

func TestSegmentProjection(t *testing.T) {
	a := model3d.Coord3D{}
	b := model3d.Coord3D{X: 10}

	cases := []struct {
		name string
		p    model3d.Coord3D
		dist float64
		proj model3d.Coord3D
	}{
		{"Middle", model3d.Coord3D{X: 5, Y: 2}, 2, model3d.Coord3D{X: 5}},
		{"BeforeStart", model3d.Coord3D{X: -3, Y: 4}, 5, a},
		{"AfterEnd", model3d.Coord3D{X: 13, Z: 4}, 5, b},
		{"OnSegment", model3d.Coord3D{X: 7}, 0, model3d.Coord3D{X: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, proj := segmentProjection(tc.p, a, b)
			assert.InDelta(t, tc.dist, dist, 1e-9)
			assert.InDelta(t, 0, proj.Dist(tc.proj), 1e-9)
		})
	}
}

func TestSegmentProjectionDegenerate(t *testing.T) {
	a := model3d.Coord3D{X: 1, Y: 1, Z: 1}
	dist, proj := segmentProjection(model3d.Coord3D{X: 1, Y: 4, Z: 5}, a, a)
	assert.Equal(t, 5.0, dist)
	assert.Equal(t, a, proj)
}

func TestLerp(t *testing.T) {
	a := model3d.Coord3D{X: 2}
	b := model3d.Coord3D{X: 6, Y: 4}
	assert.Equal(t, a, lerp(a, b, 0))
	assert.InDelta(t, 0, lerp(a, b, 0.25).Dist(model3d.Coord3D{X: 3, Y: 1}), 1e-12)
}
