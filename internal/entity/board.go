package entity

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("cell is out of bounds")

// Board holds a size x size grid stored row-major, the run length needed to win
// and the mark expected to move next.
type Board struct {
	size      int
	winLength int
	turn      Mark
	cells     []Mark
}

// NewBoard - creates an empty board. Size and win length are not validated: a board
// that can never be won simply never reports a winner.
func NewBoard(size, winLength int, startingMark Mark) *Board {
	return &Board{
		size:      size,
		winLength: winLength,
		turn:      startingMark,
		cells:     make([]Mark, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) WinLength() int {
	return that.winLength
}

func (that *Board) WhoseTurn() Mark {
	return that.turn
}

func (that *Board) TurnSymbol() rune {
	return that.turn.Symbol()
}

// Cell - returns the mark at row, col.
func (that *Board) Cell(row, col int) (Mark, error) {
	if !that.inBounds(row, col) {
		return Empty, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}

	return that.cells[that.index(row, col)], nil
}

// ApplyMove - places mark at row, col and passes the turn to the opponent.
// A move onto an occupied cell is ignored and leaves the turn unchanged.
func (that *Board) ApplyMove(row, col int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}

	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}

	idx := that.index(row, col)
	if that.cells[idx] != Empty {
		return nil
	}

	that.cells[idx] = mark
	that.turn = mark.Opponent()

	return nil
}

// FilledCells - counts the cells holding a player mark.
func (that *Board) FilledCells() int {
	filled := 0
	for _, cell := range that.cells {
		if cell != Empty {
			filled++
		}
	}
	return filled
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}
