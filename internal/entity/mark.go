package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the content of a cell and also tells whose turn it is.
type Mark uint8

const (
	Empty Mark = iota
	Nought
	Cross
)

const (
	SymbolEmpty  = ' '
	SymbolNought = '0'
	SymbolCross  = 'X'
)

var ErrInvalidMark = errors.New("invalid mark")

// Symbol - returns the character used to draw the mark.
func (that Mark) Symbol() rune {
	switch that {
	case Nought:
		return SymbolNought
	case Cross:
		return SymbolCross
	default:
		return SymbolEmpty
	}
}

func (that Mark) String() string {
	return string(that.Symbol())
}

func (that Mark) IsPlayer() bool {
	return that == Nought || that == Cross
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == Nought {
		return Cross
	}
	return Nought
}

// ParseMark - converts a symbol or a name into a player mark.
func ParseMark(value string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(SymbolNought), "nought":
		return Nought, nil
	case strings.ToLower(string(SymbolCross)), "cross":
		return Cross, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, value)
	}
}
