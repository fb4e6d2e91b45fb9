package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unixpickle/model3d/model3d"
)

func TestAggregateThicknessFloor(t *testing.T) {
	s, e := lineSkeleton(4)
	e.thicknessData = [][]float64{
		nil,
		{0.2, 0.7},
		{1.5, 3, 2},
		{math.NaN()},
	}
	AggregateThickness(s, 1)
	assert.Equal(t, []float64{1, 1, 3, 1}, e.Thickness)
	assert.Nil(t, e.Samples())
}

func TestAggregateThicknessKeepsUnsampled(t *testing.T) {
	s, e := lineSkeleton(4)
	e.Thickness = []float64{2, 2, 2, 2}
	AggregateThickness(s, 1)
	assert.Equal(t, []float64{2, 2, 2, 2}, e.Thickness)
}

func TestAggregateNodeRadii(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{})
	b := s.AddNode(model3d.Coord3D{X: 3})
	c := s.AddNode(model3d.Coord3D{X: -3})
	d := s.AddNode(model3d.Coord3D{Y: 3})
	e1 := s.AddEdge(a, b)
	e2 := s.AddEdge(c, a)
	e3 := s.AddEdge(a, d)
	e1.Thickness = []float64{2, 5, 5}
	e2.Thickness = []float64{5, 5, 4}
	e3.Thickness = []float64{10, 10, 10}
	s.DeleteEdge(e3)

	a.radiusData = []float64{1, 3}
	AggregateNodeRadii(s)
	assert.True(t, a.HasRadius)
	assert.Equal(t, 3.0, a.Radius)
	assert.Nil(t, a.RadiusSamples())

	// Endpoint thickness only, when the node has no samples.
	assert.Equal(t, 5.0, b.Radius)
	assert.Equal(t, 5.0, c.Radius)

	// Nothing to average.
	assert.False(t, d.HasRadius)
}

func TestAggregateNodeRadiiZeroSample(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{})
	b := s.AddNode(model3d.Coord3D{X: 2})
	e := s.AddEdge(a, b)
	e.Thickness = []float64{2, 4}
	a.radiusData = []float64{0}
	b.radiusData = []float64{6}
	AggregateNodeRadii(s)
	assert.Equal(t, 2.0, a.Radius)
	assert.Equal(t, 5.0, b.Radius)
}

func TestAggregateNodeRadiiSamplesOnly(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{})
	a.SetRadius(7)
	a.radiusData = []float64{2.5, 1}
	AggregateNodeRadii(s)
	assert.Equal(t, 2.5, a.Radius)
}

func TestAggregateNodeRadiiClearsStale(t *testing.T) {
	s := &Skeleton{}
	a := s.AddNode(model3d.Coord3D{})
	b := s.AddNode(model3d.Coord3D{X: 4})
	a.SetRadius(3)
	b.SetRadius(3)
	e := s.AddEdge(a, b)
	e.Thickness = []float64{2, 2}
	s.DeleteEdge(e)

	AggregateNodeRadii(s)
	assert.False(t, a.HasRadius)
	assert.Equal(t, 0.0, a.Radius)
	assert.False(t, b.HasRadius)
}
