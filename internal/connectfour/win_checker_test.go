package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func TestWinChecker_Evaluate(t *testing.T) {
	t.Run("No winner on an empty board", func(t *testing.T) {
		grid := NewGrid(smallSize)

		assert.Equal(t, empty, NewWinChecker(2).Evaluate(grid))
	})

	t.Run("Row win", func(t *testing.T) {
		// Given: blue holds two adjacent cells on the middle row
		grid := gridFromRows(t, smallSize,
			[]entity.Player{red, red, blue, empty},
			[]entity.Player{empty, blue, blue, empty},
			[]entity.Player{empty, empty, empty, empty},
		)

		// When / Then: rows are scanned first, red's bottom pair is found before blue's
		assert.Equal(t, red, NewWinChecker(2).Evaluate(grid))
		assert.Equal(t, empty, NewWinChecker(3).Evaluate(grid))
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: blue stacks three tokens in the last column
		grid := gridFromRows(t, smallSize,
			[]entity.Player{red, empty, red, blue},
			[]entity.Player{empty, empty, empty, blue},
			[]entity.Player{empty, empty, empty, blue},
		)

		assert.Equal(t, blue, NewWinChecker(3).Evaluate(grid))
	})

	t.Run("Rising diagonal win", func(t *testing.T) {
		// Given: red holds the rising main diagonal
		grid := gridFromRows(t, smallSize,
			[]entity.Player{red, blue, blue, empty},
			[]entity.Player{blue, red, red, empty},
			[]entity.Player{empty, blue, red, empty},
		)

		assert.Equal(t, red, NewWinChecker(3).Evaluate(grid))
	})

	t.Run("Falling diagonal win", func(t *testing.T) {
		// Given: blue holds a falling diagonal from the top-left corner
		grid := gridFromRows(t, smallSize,
			[]entity.Player{red, red, blue, empty},
			[]entity.Player{red, blue, red, empty},
			[]entity.Player{blue, red, empty, empty},
		)

		assert.Equal(t, blue, NewWinChecker(3).Evaluate(grid))
	})

	t.Run("Diagonals shorter than the win length never win", func(t *testing.T) {
		// Given: red holds the two-cell diagonal next to the bottom-right corner
		grid := gridFromRows(t, smallSize,
			[]entity.Player{empty, empty, red, empty},
			[]entity.Player{empty, empty, empty, red},
			[]entity.Player{empty, empty, empty, empty},
		)

		// Then: the pair only counts when two in a row wins
		assert.Equal(t, empty, NewWinChecker(3).Evaluate(grid))
		assert.Equal(t, red, NewWinChecker(2).Evaluate(grid))
	})

	t.Run("Fixture board", func(t *testing.T) {
		grid := fixtureGrid(t)

		// Then: blue's column pair is found before red's diagonal pair
		assert.Equal(t, blue, NewWinChecker(2).Evaluate(grid))
		assert.Equal(t, empty, NewWinChecker(3).Evaluate(grid))
	})
}
