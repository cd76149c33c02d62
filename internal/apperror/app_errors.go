package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrBoardFull          = errors.New("board is full")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
