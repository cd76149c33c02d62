package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
)

// State is a read-only snapshot of a game for presentation.
type State struct {
	SessionID string
	Board     string
	Turn      entity.Mark
	Winner    entity.Mark
	Filled    int
	Finished  bool
}

// GameController plays one board on behalf of a host, always moving with the mark
// whose turn it is.
type GameController struct {
	logger    *slog.Logger
	sessionID string
	board     *entity.Board
}

func NewGameController(logger *slog.Logger, board *entity.Board) *GameController {
	sessionID := uuid.NewString()

	return &GameController{
		logger:    logger.With("component", "game_controller", "session", sessionID),
		sessionID: sessionID,
		board:     board,
	}
}

func (that *GameController) SessionID() string {
	return that.sessionID
}

// MakeTurn - places the current turn's mark at row, col.
func (that *GameController) MakeTurn(row, col int) (*State, error) {
	log := that.logger.With("method", "MakeTurn", "row", row, "col", col)

	if err := that.validateMove(row, col); err != nil {
		log.Debug("move rejected", "error", err)
		return that.State(), fmt.Errorf("invalid turn: %w", err)
	}

	mark := that.board.WhoseTurn()
	if err := that.board.ApplyMove(row, col, mark); err != nil {
		return that.State(), fmt.Errorf("failed to apply move: %w", err)
	}

	state := that.State()
	if state.Winner != entity.Empty {
		log.Info("game won", "winner", state.Winner.String())
	} else {
		log.Debug("move applied", "mark", mark.String(), "next", state.Turn.String())
	}

	return state, nil
}

// State - returns the current snapshot of the board.
func (that *GameController) State() *State {
	winner := that.board.Winner()
	filled := that.board.FilledCells()

	return &State{
		SessionID: that.sessionID,
		Board:     that.board.Render(),
		Turn:      that.board.WhoseTurn(),
		Winner:    winner,
		Filled:    filled,
		Finished:  winner != entity.Empty || that.isFull(filled),
	}
}

// validateMove - checks if the move can be applied.
func (that *GameController) validateMove(row, col int) error {
	if that.board.Winner() != entity.Empty {
		return apperror.ErrGameFinished
	}

	if that.isFull(that.board.FilledCells()) {
		return apperror.ErrBoardFull
	}

	cell, err := that.board.Cell(row, col)
	if err != nil {
		return err
	}

	if cell != entity.Empty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

func (that *GameController) isFull(filled int) bool {
	size := that.board.Size()
	return size > 0 && filled == size*size
}
