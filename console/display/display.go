package display

import "github.com/hnimtadd/vgacon/console/utils"

const (
	// Cols and Rows are the dimensions of the 80x25 text mode.
	Cols = 80
	Rows = 25
	// CellSize is the number of bytes one cell takes in video memory.
	CellSize = 2
)

// Surface is the grid of cells the console draws into. Production code
// backs it with video memory through Raw, tests with a Grid.
type Surface interface {
	// Size returns the grid dimensions.
	Size() (cols, rows int)
	// Clear sets every cell to Blank.
	Clear()
	// WriteCell stores c at the flattened index. The caller guarantees
	// 0 <= index < cols*rows.
	WriteCell(index int, c Cell)
	// ReadCell returns the cell at the flattened index.
	ReadCell(index int) Cell
	// ScrollUp shifts every row up by one and blanks the last row.
	ScrollUp()
}

var _ Surface = &Grid{}

// Grid is an in-memory Surface. It backs tests and headless runs.
type Grid struct {
	cells      []Cell
	cols, rows int
}

// NewGrid allocates a cleared grid.
func NewGrid(cols, rows int) *Grid {
	utils.Assert(cols > 0 && rows > 0, "display: empty grid")
	g := &Grid{
		cells: make([]Cell, cols*rows),
		cols:  cols,
		rows:  rows,
	}
	g.Clear()
	return g
}

func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

func (g *Grid) WriteCell(index int, c Cell) {
	utils.Assert(index >= 0 && index < len(g.cells), "display: cell index out of range")
	g.cells[index] = c
}

func (g *Grid) ReadCell(index int) Cell {
	utils.Assert(index >= 0 && index < len(g.cells), "display: cell index out of range")
	return g.cells[index]
}

// ScrollUp copies rows [1, rows) onto [0, rows-1) in one forward pass.
// The source is always one row ahead of the destination, so the forward
// order never reads a cell it already overwrote.
func (g *Grid) ScrollUp() {
	last := (g.rows - 1) * g.cols
	for i := 0; i < last; i++ {
		g.cells[i] = g.cells[i+g.cols]
	}
	for i := last; i < len(g.cells); i++ {
		g.cells[i] = Blank
	}
}
