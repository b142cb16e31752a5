package entity

import "time"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the persisted snapshot of a match. Board is row-major, row 0 is the bottom row.
type Game struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	WinLength int       `json:"win_length"`
	Board     []Player  `json:"board"`
	Turns     int       `json:"turns"`
	Turn      Player    `json:"player_turn"`
	Winner    Player    `json:"winner"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// CellAt returns the token at (row, column) or NoPlayer when out of range.
func (that *Game) CellAt(row, column int) Player {
	if row < 0 || row >= that.Height || column < 0 || column >= that.Width {
		return NoPlayer
	}

	index := row*that.Width + column
	if index >= len(that.Board) {
		return NoPlayer
	}

	return that.Board[index]
}
