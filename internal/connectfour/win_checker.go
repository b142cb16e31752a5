package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

type WinChecker struct {
	winLength int
}

func NewWinChecker(winLength int) *WinChecker {
	return &WinChecker{winLength: winLength}
}

// Evaluate - scans rows, then columns, then diagonals and returns the first player
// holding a run of at least the win length, or NoPlayer.
func (that *WinChecker) Evaluate(grid *Grid) entity.Player {
	for _, lines := range []LineIterator{grid.Rows(), grid.Columns(), grid.Diagonals()} {
		if winner := that.scan(lines); winner != entity.NoPlayer {
			return winner
		}
	}

	return entity.NoPlayer
}

func (that *WinChecker) scan(lines LineIterator) entity.Player {
	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		if line.Len() < that.winLength {
			continue
		}

		if player, length := MaxSeries(line); player != entity.NoPlayer && length >= that.winLength {
			return player
		}
	}

	return entity.NoPlayer
}
