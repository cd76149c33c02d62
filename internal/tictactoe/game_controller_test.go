package tictactoe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nxn-tictactoe/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameController(t *testing.T) {
	_, st := suite.New(t)

	// When: a controller is created for a new board
	controller := NewGameController(st.Logger, st.Board)

	// Then: it has a session id and the initial state of the board
	_, err := uuid.Parse(controller.SessionID())
	require.NoError(t, err)

	state := controller.State()
	assert.Equal(t, controller.SessionID(), state.SessionID)
	assert.Equal(t, entity.Nought, state.Turn)
	assert.Equal(t, entity.Empty, state.Winner)
	assert.Equal(t, 0, state.Filled)
	assert.False(t, state.Finished)
	assert.Equal(t, st.Board.Render(), state.Board)
}

func TestGameController_MakeTurn(t *testing.T) {
	t.Run("Moves alternate between players", func(t *testing.T) {
		// Given: a 3x3 board with Nought to start
		_, st := suite.NewWithBoard(t, 3, 3, entity.Nought)
		controller := NewGameController(st.Logger, st.Board)

		// When: two turns are made
		state, err := controller.MakeTurn(0, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.Cross, state.Turn)

		state, err = controller.MakeTurn(1, 1)
		require.NoError(t, err)

		// Then: both marks are on the board and Nought is next
		assert.Equal(t, "0  \n X \n   \n", state.Board)
		assert.Equal(t, entity.Nought, state.Turn)
		assert.Equal(t, 2, state.Filled)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where (0,0) is taken
		_, st := suite.NewWithBoard(t, 3, 3, entity.Nought)
		controller := NewGameController(st.Logger, st.Board)
		_, err := controller.MakeTurn(0, 0)
		require.NoError(t, err)

		// When: the next player picks the same cell
		state, err := controller.MakeTurn(0, 0)

		// Then: ErrCellOccupied is returned and the turn stays
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.Cross, state.Turn)
		assert.Equal(t, 1, state.Filled)
	})

	t.Run("Error on out of bounds cell", func(t *testing.T) {
		_, st := suite.NewWithBoard(t, 3, 3, entity.Nought)
		controller := NewGameController(st.Logger, st.Board)

		_, err := controller.MakeTurn(3, 0)
		require.ErrorIs(t, err, entity.ErrOutOfBounds)

		_, err = controller.MakeTurn(0, -1)
		require.ErrorIs(t, err, entity.ErrOutOfBounds)
	})

	t.Run("Move after game won", func(t *testing.T) {
		// Given: Nought completes the top row
		_, st := suite.NewWithBoard(t, 3, 3, entity.Nought)
		controller := NewGameController(st.Logger, st.Board)
		moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
		var state *State
		for _, m := range moves {
			var err error
			state, err = controller.MakeTurn(m[0], m[1])
			require.NoError(t, err)
		}

		require.Equal(t, entity.Nought, state.Winner)
		require.True(t, state.Finished)

		// When: Cross tries to keep playing
		_, err := controller.MakeTurn(2, 2)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move on a full board", func(t *testing.T) {
		// Given: a 2x2 board where no run of 3 fits, filled completely
		_, st := suite.NewWithBoard(t, 2, 3, entity.Cross)
		controller := NewGameController(st.Logger, st.Board)
		for _, m := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
			_, err := controller.MakeTurn(m[0], m[1])
			require.NoError(t, err)
		}

		state := controller.State()
		require.True(t, state.Finished)
		require.Equal(t, entity.Empty, state.Winner)

		// When: another move is attempted
		_, err := controller.MakeTurn(0, 0)

		// Then: ErrBoardFull is returned
		assert.ErrorIs(t, err, apperror.ErrBoardFull)
	})
}
