package console

import (
	"testing"

	"github.com/rocketscienceinc/nxn-tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("Move with and without keyword", func(t *testing.T) {
		for _, line := range []string{"move 2 3", "  MOVE 2   3 ", "2 3"} {
			command, err := ParseCommand(line)
			require.NoError(t, err, line)
			assert.Equal(t, &Command{Action: actionMove, Row: 2, Col: 3}, command, line)
		}
	})

	t.Run("Negative coordinates are left for the board to reject", func(t *testing.T) {
		command, err := ParseCommand("-1 0")
		require.NoError(t, err)
		assert.Equal(t, &Command{Action: actionMove, Row: -1, Col: 0}, command)
	})

	t.Run("Plain actions", func(t *testing.T) {
		for _, action := range []string{actionBoard, actionHelp, actionQuit, "dance"} {
			command, err := ParseCommand(action)
			require.NoError(t, err)
			assert.Equal(t, action, command.Action)
		}
	})

	t.Run("Empty line", func(t *testing.T) {
		_, err := ParseCommand("   ")
		require.ErrorIs(t, err, errEmptyCommand)
	})

	t.Run("Bad coordinates", func(t *testing.T) {
		for _, line := range []string{"move", "move 1", "1", "move a 1", "1 b", "1 2 3"} {
			_, err := ParseCommand(line)
			require.ErrorIs(t, err, apperror.ErrInvalidCoordinates, line)
		}
	})
}
