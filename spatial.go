package main

// EntityRef identifies an entity in the grid
type EntityRef struct {
	Kind byte   // 'p'=plane, 'b'=projectile, 't'=target
	ID   string // entity id ("" for the target)
}

// SpatialGrid is a uniform grid for broad-phase collision queries,
// sized from the scenario dimensions at construction
type SpatialGrid struct {
	cellSize   float64
	cols, rows int
	cells      [][]EntityRef
}

// NewSpatialGrid builds a grid covering width x height with the given
// cell size (cell size should be ~2x the largest entity extent)
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]EntityRef, cols*rows),
	}
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) clampCol(c int) int {
	if c < 0 {
		return 0
	}
	if c >= g.cols {
		return g.cols - 1
	}
	return c
}

func (g *SpatialGrid) clampRow(r int) int {
	if r < 0 {
		return 0
	}
	if r >= g.rows {
		return g.rows - 1
	}
	return r
}

// InsertRect adds an entity reference to all cells overlapping a
// center-based rect
func (g *SpatialGrid) InsertRect(x, y, w, h float64, ref EntityRef) {
	minCX := g.clampCol(int((x - w/2) / g.cellSize))
	maxCX := g.clampCol(int((x + w/2) / g.cellSize))
	minCY := g.clampRow(int((y - h/2) / g.cellSize))
	maxCY := g.clampRow(int((y + h/2) / g.cellSize))
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], ref)
		}
	}
}

// QueryRect returns all entity refs in cells overlapping a
// center-based rect; callers must narrow-phase the results
func (g *SpatialGrid) QueryRect(x, y, w, h float64) []EntityRef {
	minCX := g.clampCol(int((x - w/2) / g.cellSize))
	maxCX := g.clampCol(int((x + w/2) / g.cellSize))
	minCY := g.clampRow(int((y - h/2) / g.cellSize))
	maxCY := g.clampRow(int((y + h/2) / g.cellSize))
	var out []EntityRef
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			out = append(out, g.cells[cy*g.cols+cx]...)
		}
	}
	return out
}
