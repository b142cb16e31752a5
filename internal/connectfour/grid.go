package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Grid is a row-major board. Row 0 is the bottom row, the first one a token lands in.
type Grid struct {
	width  int
	height int
	cells  []entity.Player
}

func NewGrid(size Size) *Grid {
	return &Grid{
		width:  size.Width,
		height: size.Height,
		cells:  make([]entity.Player, size.cellCount()),
	}
}

func (that *Grid) Width() int {
	return that.width
}

func (that *Grid) Height() int {
	return that.height
}

// Cell returns the token at (row, column), NoPlayer for empty or out-of-range cells.
func (that *Grid) Cell(row, column int) entity.Player {
	if row < 0 || row >= that.height || column < 0 || column >= that.width {
		return entity.NoPlayer
	}

	return that.cells[row*that.width+column]
}

// Cells returns a copy of the board.
func (that *Grid) Cells() []entity.Player {
	cells := make([]entity.Player, len(that.cells))
	copy(cells, that.cells)

	return cells
}

// Occupied - counts non-empty cells.
func (that *Grid) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != entity.NoPlayer {
			count++
		}
	}

	return count
}

// Drop - places the token in the lowest empty cell of the column and returns its row.
func (that *Grid) Drop(column int, player entity.Player) (int, error) {
	if column < 0 || column >= that.width {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrNoSuchColumn, column)
	}

	line := that.Column(column)
	for row := 0; row < line.Len(); row++ {
		if line.At(row) == entity.NoPlayer {
			that.cells[row*that.width+column] = player
			return row, nil
		}
	}

	return 0, fmt.Errorf("%w: column %d", apperror.ErrColumnIsFull, column)
}

func (that *Grid) load(cells []entity.Player) {
	copy(that.cells, cells)
}
