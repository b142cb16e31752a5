package entity

// Player is a token owner. The zero value NoPlayer marks an empty cell.
type Player string

const (
	NoPlayer   Player = ""
	PlayerRed  Player = "R"
	PlayerBlue Player = "B"
)

// FirstPlayer moves first in every game.
const FirstPlayer = PlayerRed

// Next returns the opponent.
func (that Player) Next() Player {
	if that == PlayerRed {
		return PlayerBlue
	}
	return PlayerRed
}

func (that Player) IsValid() bool {
	return that == PlayerRed || that == PlayerBlue
}

func (that Player) String() string {
	switch that {
	case PlayerRed:
		return "red"
	case PlayerBlue:
		return "blue"
	default:
		return "none"
	}
}
