package voxels

// diagonalOffsets are the (dx, dy) offsets of the XY-plane
// diagonals checked for every cell. The other two
// diagonals are covered when the scan reaches the
// neighbor.
var diagonalOffsets = [2][2]int{{-1, 1}, {1, 1}}

// FixLonelyDiagonals fills in cells that would otherwise
// leave two occupied cells touching only along an edge:
//
//	X.      XX
//	.X  =>  XX
//
// For every cell with a Full diagonal neighbor in the XY
// plane, the two cells bridging them are set to Repaired.
// Neighbor indices are clamped to the grid, so near the
// boundary a bridge cell may be the cell itself.
//
// Only Full cells trigger a repair and repairs never write
// Full, so running the pass again changes nothing.
//
// The number of bridge writes is returned.
func FixLonelyDiagonals(g *Grid) int {
	var writes int
	for z := 0; z < g.NZ; z++ {
		for y := 0; y < g.NY; y++ {
			for x := 0; x < g.NX; x++ {
				for _, d := range diagonalOffsets {
					dx, dy := d[0], d[1]
					nz, ny, nx := g.Clamp(z, y+dy, x+dx)
					if g.At(nz, ny, nx) != Full {
						continue
					}
					bz, by, bx := g.Clamp(z, y, x+dx)
					g.Set(bz, by, bx, Repaired)
					bz, by, bx = g.Clamp(z, y+dy, x)
					g.Set(bz, by, bx, Repaired)
					writes += 2
				}
			}
		}
	}
	return writes
}
