package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Game is a single match. It is not safe for concurrent use.
type Game struct {
	size    Size
	grid    *Grid
	checker *WinChecker

	turns       int
	currentTurn entity.Player
	winner      entity.Player
}

// New creates a game on the default 5x5 board with a win length of 4.
func New() *Game {
	game, _ := NewGame(DefaultSize())
	return game
}

func NewGame(size Size) (*Game, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		size:        size,
		grid:        NewGrid(size),
		checker:     NewWinChecker(size.WinLength),
		currentTurn: entity.FirstPlayer,
		winner:      entity.NoPlayer,
	}, nil
}

func (that *Game) Size() Size {
	return that.size
}

func (that *Game) Grid() *Grid {
	return that.grid
}

func (that *Game) CurrentTurn() entity.Player {
	return that.currentTurn
}

// Winner returns NoPlayer while the game is in progress.
func (that *Game) Winner() entity.Player {
	return that.winner
}

func (that *Game) Turns() int {
	return that.turns
}

func (that *Game) IsFinished() bool {
	return that.winner != entity.NoPlayer
}

// CheckWinner - evaluates the board without changing the game.
func (that *Game) CheckWinner() entity.Player {
	return that.checker.Evaluate(that.grid)
}

// MakeTurn - drops the current player's token into the column.
// A failed turn leaves the game untouched.
func (that *Game) MakeTurn(column int) error {
	if that.IsFinished() {
		return apperror.ErrAlreadyEnded
	}

	if _, err := that.grid.Drop(column, that.currentTurn); err != nil {
		return err
	}

	if winner := that.CheckWinner(); winner != entity.NoPlayer {
		that.winner = winner
	}

	// the turn passes even after the winning move
	that.turns++
	that.currentTurn = that.currentTurn.Next()

	return nil
}

// Snapshot - exports the game state for storage.
func (that *Game) Snapshot() *entity.Game {
	status := entity.StatusOngoing
	if that.IsFinished() {
		status = entity.StatusFinished
	}

	return &entity.Game{
		Width:     that.size.Width,
		Height:    that.size.Height,
		WinLength: that.size.WinLength,
		Board:     that.grid.Cells(),
		Turns:     that.turns,
		Turn:      that.currentTurn,
		Winner:    that.winner,
		Status:    status,
	}
}

// Restore - rebuilds a game from a stored snapshot.
func Restore(snapshot *entity.Game) (*Game, error) {
	size := Size{Width: snapshot.Width, Height: snapshot.Height, WinLength: snapshot.WinLength}

	game, err := NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSnapshot, err)
	}

	if len(snapshot.Board) != size.cellCount() {
		return nil, fmt.Errorf("%w: board has %d cells, want %d", apperror.ErrCorruptSnapshot, len(snapshot.Board), size.cellCount())
	}

	for i, cell := range snapshot.Board {
		if cell != entity.NoPlayer && !cell.IsValid() {
			return nil, fmt.Errorf("%w: unknown token %q at cell %d", apperror.ErrCorruptSnapshot, cell, i)
		}
	}

	if !snapshot.Turn.IsValid() {
		return nil, fmt.Errorf("%w: unknown player turn %q", apperror.ErrCorruptSnapshot, snapshot.Turn)
	}

	if snapshot.Winner != entity.NoPlayer && !snapshot.Winner.IsValid() {
		return nil, fmt.Errorf("%w: unknown winner %q", apperror.ErrCorruptSnapshot, snapshot.Winner)
	}

	if snapshot.Turns < 0 {
		return nil, fmt.Errorf("%w: negative turn count %d", apperror.ErrCorruptSnapshot, snapshot.Turns)
	}

	wantStatus := entity.StatusOngoing
	if snapshot.Winner != entity.NoPlayer {
		wantStatus = entity.StatusFinished
	}

	if snapshot.Status != wantStatus {
		return nil, fmt.Errorf("%w: status %q with winner %q", apperror.ErrCorruptSnapshot, snapshot.Status, snapshot.Winner)
	}

	if row, column, found := floatingCell(size, snapshot.Board); found {
		return nil, fmt.Errorf("%w: token above an empty cell at row %d, column %d", apperror.ErrCorruptSnapshot, row, column)
	}

	game.grid.load(snapshot.Board)
	game.turns = snapshot.Turns
	game.currentTurn = snapshot.Turn
	game.winner = snapshot.Winner

	return game, nil
}

// floatingCell finds the first occupied cell that sits above an empty one.
func floatingCell(size Size, board []entity.Player) (row, column int, found bool) {
	for column = 0; column < size.Width; column++ {
		gap := false
		for row = 0; row < size.Height; row++ {
			cell := board[row*size.Width+column]
			if cell == entity.NoPlayer {
				gap = true
				continue
			}

			if gap {
				return row, column, true
			}
		}
	}

	return 0, 0, false
}
