package entity

import "strings"

// Render - draws the board as size lines of size symbols, each ending with a newline.
func (that *Board) Render() string {
	if that.size <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(that.size * (that.size + 1))

	for row := 0; row < that.size; row++ {
		for _, cell := range that.cells[row*that.size : (row+1)*that.size] {
			sb.WriteRune(cell.Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}
