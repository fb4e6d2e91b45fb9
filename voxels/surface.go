package voxels

var faceOffsets = [6]Index{
	{Z: -1}, {Z: 1},
	{Y: -1}, {Y: 1},
	{X: -1}, {X: 1},
}

// OnSurface checks if a cell lies on the outer boundary of
// the grid or has an unoccupied face neighbor.
//
// Cells on the boundary are always on the surface, no
// matter what their neighbors hold.
func OnSurface(g *Grid, z, y, x int) bool {
	if z == 0 || y == 0 || x == 0 || z == g.NZ-1 || y == g.NY-1 || x == g.NX-1 {
		return true
	}
	for _, d := range faceOffsets {
		if !g.Occupied(z+d.Z, y+d.Y, x+d.X) {
			return true
		}
	}
	return false
}

// IsContour checks if a cell has an unoccupied face
// neighbor, clamping neighbor indices to the grid.
//
// Unlike OnSurface, a boundary cell is not automatically a
// contour cell: a neighbor outside the grid clamps back to
// the cell itself.
func IsContour(g *Grid, z, y, x int) bool {
	for _, d := range faceOffsets {
		nz, ny, nx := g.Clamp(z+d.Z, y+d.Y, x+d.X)
		if !g.Occupied(nz, ny, nx) {
			return true
		}
	}
	return false
}
