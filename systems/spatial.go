package systems

import "github.com/pthm-cable/backdrop/components"

// Link is a line between two nearby entities, ready to draw.
type Link struct {
	X1, Y1, X2, Y2 float32
	Alpha          float32
}

// SpatialGrid buckets entity indices by cell so link discovery only compares
// neighbours. The viewport is not toroidal: positions outside it are clamped
// into the edge cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int32
}

// NewSpatialGrid creates a grid covering width x height with square cells.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := 1
	rows := 1
	if width > 0 {
		cols = int(width/cellSize) + 1
	}
	if height > 0 {
		rows = int(height/cellSize) + 1
	}

	cells := make([][]int32, cols*rows)
	for i := range cells {
		cells[i] = make([]int32, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entries from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds entity index idx at the given position.
func (g *SpatialGrid) Insert(idx int32, x, y float32) {
	c := g.cellIndex(x, y)
	g.cells[c] = append(g.cells[c], idx)
}

// LinksInto appends a Link for every pair closer than maxDist and returns dst.
// Link alpha falls linearly from maxAlpha at zero distance to 0 at maxDist.
// The grid must have been filled from pts with matching indices, and its cell
// size must be at least maxDist.
func (g *SpatialGrid) LinksInto(dst []Link, pts []components.Position, maxDist, maxAlpha float32) []Link {
	if maxDist <= 0 {
		return dst
	}
	maxSq := maxDist * maxDist

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			home := g.cells[row*g.cols+col]
			if len(home) == 0 {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					r, c := row+dr, col+dc
					if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
						continue
					}
					other := g.cells[r*g.cols+c]
					for _, i := range home {
						a := pts[i]
						for _, j := range other {
							// Each unordered pair once
							if j <= i {
								continue
							}
							b := pts[j]
							dSq := distanceSq(a.X, a.Y, b.X, b.Y)
							if dSq >= maxSq {
								continue
							}
							d := distance(a.X, a.Y, b.X, b.Y)
							dst = append(dst, Link{
								X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
								Alpha: (maxDist - d) / maxDist * maxAlpha,
							})
						}
					}
				}
			}
		}
	}
	return dst
}

// cellIndex returns the flat index for a viewport position.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	// Clamp to valid range
	if x < 0 || col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if y < 0 || row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}
