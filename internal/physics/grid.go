package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase overlap queries over the
// gameplay area. Items are inserted by the minimum corner of their bounding
// box, then candidates near a box are found with a 3x3 neighbourhood lookup.
//
// Cell size must be >= the largest box dimension of any inserted or queried
// item so that every overlapping pair is found within the neighbourhood.
type SpatialGrid struct {
	origin      Vector
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items whose box corner falls within the cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering area.
func NewSpatialGrid(area Rect, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(area.W / cellSize))
	rows := int(math.Ceil(area.H / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		origin:      area.Min(),
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) with the given bounding box.
func (g *SpatialGrid) Insert(box Rect, index int) {
	col, row := g.posToCell(box.X, box.Y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighbourhood
// around box. Boxes do not wrap, so the neighbourhood is clipped at the
// grid edges. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(box Rect, fn func(index int) bool) {
	col, row := g.posToCell(box.X, box.Y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to grid cell coordinates.
// Clamps to the valid range so items slightly outside the area still land
// in an edge cell.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.origin.X) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor((y - g.origin.Y) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
