package axis

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// segmentProjection finds the point of the segment from a
// to b closest to p, and the distance to it.
//
// A degenerate segment is treated as the point a.
func segmentProjection(p, a, b model3d.Coord3D) (dist float64, proj model3d.Coord3D) {
	dir := b.Sub(a)
	lenSq := dir.Dot(dir)
	if lenSq == 0 {
		return p.Dist(a), a
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(dir)/lenSq))
	proj = a.Add(dir.Scale(t))
	return p.Dist(proj), proj
}

// lerp interpolates from a (t=0) to b (t=1).
func lerp(a, b model3d.Coord3D, t float64) model3d.Coord3D {
	return a.Scale(1 - t).Add(b.Scale(t))
}
