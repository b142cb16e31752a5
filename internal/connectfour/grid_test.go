package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

func TestGrid_Drop(t *testing.T) {
	t.Run("Token lands in the lowest empty cell", func(t *testing.T) {
		// Given: a grid with one token in column 2
		grid := NewGrid(smallSize)
		_, err := grid.Drop(2, red)
		require.NoError(t, err)

		// When: another token is dropped into the same column
		row, err := grid.Drop(2, blue)

		// Then: it lands on top of the first one
		require.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, red, grid.Cell(0, 2))
		assert.Equal(t, blue, grid.Cell(1, 2))
		assert.Equal(t, 2, grid.Occupied())
	})

	t.Run("Each drop occupies exactly one more cell", func(t *testing.T) {
		// Given: an empty grid
		grid := NewGrid(smallSize)

		for column := 0; column < smallSize.Width; column++ {
			before := grid.Cells()

			// When: a token is dropped into every column
			row, err := grid.Drop(column, red)
			require.NoError(t, err)

			// Then: only the bottom cell of that column changed
			after := grid.Cells()
			assert.Equal(t, 0, row)
			assert.Equal(t, column+1, grid.Occupied())
			before[column] = red
			assert.Equal(t, before, after)
		}
	})

	t.Run("Error on out of range column", func(t *testing.T) {
		// Given: a grid with some tokens
		grid := fixtureGrid(t)
		before := grid.Cells()

		for _, column := range []int{-1, smallSize.Width, smallSize.Width + 1, 100} {
			// When: dropping into a column outside the board
			_, err := grid.Drop(column, red)

			// Then: ErrNoSuchColumn is returned and the grid is unchanged
			require.ErrorIs(t, err, apperror.ErrNoSuchColumn)
			require.Equal(t, before, grid.Cells())
		}
	})

	t.Run("Error on full column", func(t *testing.T) {
		// Given: a grid whose first column is full
		grid := NewGrid(smallSize)
		for i := 0; i < smallSize.Height; i++ {
			_, err := grid.Drop(0, red)
			require.NoError(t, err)
		}
		before := grid.Cells()

		// When: dropping into the full column
		_, err := grid.Drop(0, blue)

		// Then: ErrColumnIsFull is returned and the grid is unchanged
		require.ErrorIs(t, err, apperror.ErrColumnIsFull)
		assert.Equal(t, before, grid.Cells())
	})
}

func TestGrid_Cell(t *testing.T) {
	grid := fixtureGrid(t)

	assert.Equal(t, red, grid.Cell(0, 0))
	assert.Equal(t, blue, grid.Cell(1, 2))
	assert.Equal(t, empty, grid.Cell(2, 3))
	assert.Equal(t, empty, grid.Cell(3, 0))
	assert.Equal(t, empty, grid.Cell(0, -1))
	assert.Equal(t, 5, grid.Occupied())
	assert.Len(t, grid.Cells(), smallSize.Width*smallSize.Height)
}

func TestSize_Validate(t *testing.T) {
	require.NoError(t, DefaultSize().Validate())
	require.NoError(t, Size{Width: 1, Height: 1, WinLength: 1}.Validate())

	for _, size := range []Size{
		{Width: 0, Height: 5, WinLength: 4},
		{Width: 5, Height: -1, WinLength: 4},
		{Width: 5, Height: 5, WinLength: 0},
	} {
		assert.ErrorIs(t, size.Validate(), apperror.ErrInvalidBoardSize)
	}
}
