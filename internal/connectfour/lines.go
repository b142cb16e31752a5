package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

// Line is a read-only view over a straight run of grid cells.
type Line struct {
	grid   *Grid
	row    int
	column int
	dRow   int
	dCol   int
	length int
}

func (that Line) Len() int {
	return that.length
}

// At returns the i-th cell of the line, counted from its start cell.
func (that Line) At(i int) entity.Player {
	if i < 0 || i >= that.length {
		return entity.NoPlayer
	}

	return that.grid.Cell(that.row+i*that.dRow, that.column+i*that.dCol)
}

// Cells copies the cells of this line only.
func (that Line) Cells() Cells {
	cells := make(Cells, that.length)
	for i := range cells {
		cells[i] = that.At(i)
	}

	return cells
}

// LineIterator yields lines lazily; once exhausted it keeps returning false.
type LineIterator interface {
	Next() (Line, bool)
}

type rowIterator struct {
	grid *Grid
	next int
}

// Rows - bottom row first, each of grid width.
func (that *Grid) Rows() LineIterator {
	return &rowIterator{grid: that}
}

func (that *rowIterator) Next() (Line, bool) {
	if that.next >= that.grid.height {
		return Line{}, false
	}

	line := Line{grid: that.grid, row: that.next, dCol: 1, length: that.grid.width}
	that.next++

	return line, true
}

type columnIterator struct {
	grid *Grid
	next int
}

// Columns - left to right, each of grid height, bottom cell first.
func (that *Grid) Columns() LineIterator {
	return &columnIterator{grid: that}
}

// Column returns a single column by index.
func (that *Grid) Column(index int) Line {
	return Line{grid: that, column: index, dRow: 1, length: that.height}
}

func (that *columnIterator) Next() (Line, bool) {
	if that.next >= that.grid.width {
		return Line{}, false
	}

	line := that.grid.Column(that.next)
	that.next++

	return line, true
}

// diagonalIterator walks the rising diagonals first, then the falling ones.
// Each direction has width+height-1 diagonals; the last one of each direction is a
// single corner cell which rows and columns already cover, so it is skipped.
type diagonalIterator struct {
	grid *Grid
	next int
}

func (that *Grid) Diagonals() LineIterator {
	return &diagonalIterator{grid: that}
}

// DiagonalCount is the number of lines Diagonals yields for the given board.
func DiagonalCount(width, height int) int {
	return 2 * (width + height - 2)
}

func (that *diagonalIterator) Next() (Line, bool) {
	width, height := that.grid.width, that.grid.height
	perDirection := width + height - 2

	if that.next >= 2*perDirection {
		return Line{}, false
	}

	index := that.next
	that.next++

	if index < perDirection {
		return that.rising(index), true
	}

	return that.falling(index - perDirection), true
}

// rising diagonals go up and to the right, starting from the top of the left column
// down to the bottom-left corner, then along the bottom row.
func (that *diagonalIterator) rising(index int) Line {
	height := that.grid.height

	row, column := 0, 0
	if index < height {
		row = height - 1 - index
	} else {
		column = index - height + 1
	}

	return Line{
		grid:   that.grid,
		row:    row,
		column: column,
		dRow:   1,
		dCol:   1,
		length: min(height-row, that.grid.width-column),
	}
}

// falling diagonals go down and to the right, starting from the bottom of the left
// column up to the top-left corner, then along the top row.
func (that *diagonalIterator) falling(index int) Line {
	height := that.grid.height

	row, column := height-1, 0
	if index < height {
		row = index
	} else {
		column = index - height + 1
	}

	return Line{
		grid:   that.grid,
		row:    row,
		column: column,
		dRow:   -1,
		dCol:   1,
		length: min(row+1, that.grid.width-column),
	}
}
