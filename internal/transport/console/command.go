package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/nxn-tictactoe/internal/apperror"
)

var errEmptyCommand = errors.New("empty command")

// Command is one parsed line of console input.
type Command struct {
	Action string
	Row    int
	Col    int
}

// ParseCommand - turns "move 1 2", "1 2", "board", "help" or "quit" into a Command.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, errEmptyCommand
	}

	action, args := fields[0], fields[1:]
	if _, err := strconv.Atoi(action); err == nil {
		action, args = actionMove, fields
	}

	if action != actionMove {
		return &Command{Action: action}, nil
	}

	if len(args) != 2 {
		return nil, fmt.Errorf("%w: expected <row> <col>", apperror.ErrInvalidCoordinates)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: row %q", apperror.ErrInvalidCoordinates, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: col %q", apperror.ErrInvalidCoordinates, args[1])
	}

	return &Command{Action: actionMove, Row: row, Col: col}, nil
}
