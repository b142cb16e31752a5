package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	DefaultWidth     = 5
	DefaultHeight    = 5
	DefaultWinLength = 4
)

// Size holds the board dimensions and the run length needed to win.
type Size struct {
	Width     int
	Height    int
	WinLength int
}

func DefaultSize() Size {
	return Size{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		WinLength: DefaultWinLength,
	}
}

// Validate - checks that every dimension is positive.
func (that Size) Validate() error {
	if that.Width < 1 || that.Height < 1 || that.WinLength < 1 {
		return fmt.Errorf("%w: %dx%d, win length %d", apperror.ErrInvalidBoardSize, that.Width, that.Height, that.WinLength)
	}

	return nil
}

func (that Size) cellCount() int {
	return that.Width * that.Height
}
