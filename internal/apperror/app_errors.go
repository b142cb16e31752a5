package apperror

import "errors"

var (
	ErrNoSuchColumn = errors.New("no such column")
	ErrColumnIsFull = errors.New("column is full")
	ErrAlreadyEnded = errors.New("game has already ended")

	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrCorruptSnapshot  = errors.New("corrupt game snapshot")

	ErrGameNotFound = errors.New("game not found")
	ErrPlayOnly     = errors.New("memory storage only supports play")
)
