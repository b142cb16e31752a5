package connectfour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	red   = entity.PlayerRed
	blue  = entity.PlayerBlue
	empty = entity.NoPlayer
)

// smallSize is a 4x3 board where two in a row wins.
var smallSize = Size{Width: 4, Height: 3, WinLength: 2}

// gridFromRows builds a grid from rows listed bottom row first.
func gridFromRows(t *testing.T, size Size, rows ...[]entity.Player) *Grid {
	t.Helper()

	require.Len(t, rows, size.Height)

	grid := NewGrid(size)
	cells := make([]entity.Player, 0, size.cellCount())
	for _, row := range rows {
		require.Len(t, row, size.Width)
		cells = append(cells, row...)
	}
	grid.load(cells)

	return grid
}

// fixtureGrid is the 4x3 board:
//
//	_ _ _ _
//	_ R B R
//	R _ B _
func fixtureGrid(t *testing.T) *Grid {
	t.Helper()

	return gridFromRows(t, smallSize,
		[]entity.Player{red, empty, blue, empty},
		[]entity.Player{empty, red, blue, red},
		[]entity.Player{empty, empty, empty, empty},
	)
}

func collect(lines LineIterator) []Cells {
	var result []Cells
	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		result = append(result, line.Cells())
	}

	return result
}
