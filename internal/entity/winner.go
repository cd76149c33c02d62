package entity

// scan directions as row, col steps
const (
	forward  = 1
	still    = 0
	backward = -1
)

// Winner - returns the mark that completed a run of winLength cells, or Empty.
// Rows are checked first, then columns, then both diagonals from every cell.
func (that *Board) Winner() Mark {
	for row := 0; row < that.size; row++ {
		if mark := that.scanLine(row, 0, still, forward); mark != Empty {
			return mark
		}
	}

	for col := 0; col < that.size; col++ {
		if mark := that.scanLine(0, col, forward, still); mark != Empty {
			return mark
		}
	}

	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			if mark := that.scanLine(row, col, forward, forward); mark != Empty {
				return mark
			}

			if mark := that.scanLine(row, col, forward, backward); mark != Empty {
				return mark
			}
		}
	}

	return Empty
}

func (that *Board) WinnerSymbol() rune {
	return that.Winner().Symbol()
}

// scanLine - walks from row, col by the given step until it leaves the board and
// returns the mark of the first run that reaches winLength.
func (that *Board) scanLine(row, col, rowDelta, colDelta int) Mark {
	count := 0
	prevMark := Empty

	for r, c := row, col; that.inBounds(r, c); r, c = r+rowDelta, c+colDelta {
		mark := that.cells[that.index(r, c)]

		if mark == prevMark && mark != Empty {
			count++
		} else {
			count = 1
			prevMark = mark
		}

		// a run of empty cells can reach winLength too, it ends the line without a winner
		if count == that.winLength {
			return mark
		}
	}

	return Empty
}
