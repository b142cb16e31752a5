package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

// Sequence is an ordered run of cells the scanner can read.
type Sequence interface {
	Len() int
	At(i int) entity.Player
}

// Cells is a plain slice of cells.
type Cells []entity.Player

func (that Cells) Len() int {
	return len(that)
}

func (that Cells) At(i int) entity.Player {
	return that[i]
}

// MaxSeries - finds the longest contiguous same-player run in the sequence.
// When both players' longest runs are equal no player is returned, but the length is.
func MaxSeries(seq Sequence) (entity.Player, int) {
	var redMax, blueMax int

	previous := entity.NoPlayer
	series := 0

	closeSeries := func() {
		switch previous {
		case entity.PlayerRed:
			redMax = max(redMax, series)
		case entity.PlayerBlue:
			blueMax = max(blueMax, series)
		}
	}

	for i := 0; i < seq.Len(); i++ {
		current := seq.At(i)

		if current == previous {
			if current != entity.NoPlayer {
				series++
			}
			continue
		}

		closeSeries()
		previous = current
		series = 0
		if current != entity.NoPlayer {
			series = 1
		}
	}

	closeSeries()

	switch {
	case redMax > blueMax:
		return entity.PlayerRed, redMax
	case blueMax > redMax:
		return entity.PlayerBlue, blueMax
	default:
		return entity.NoPlayer, redMax
	}
}
