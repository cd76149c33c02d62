package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/nxn-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/tictactoe"
)

const (
	actionMove  = "move"
	actionBoard = "board"
	actionHelp  = "help"
	actionQuit  = "quit"
)

var errQuit = errors.New("quit requested")

type gameController interface {
	MakeTurn(row, col int) (*tictactoe.State, error)
	State() *tictactoe.State
}

type handler func(ctx context.Context, command *Command, out io.Writer) error

type Server struct {
	logger     *slog.Logger
	controller gameController
	handlers   map[string]handler
}

func New(logger *slog.Logger, controller gameController) *Server {
	server := &Server{
		logger:     logger.With("component", "console"),
		controller: controller,
		handlers:   make(map[string]handler),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Serve - reads commands from in until quit, EOF, a winner or ctx cancellation.
func (that *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Serve")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, in, lines, readErr)

	if err := writeState(out, that.controller.State()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Info("input closed")
			return nil
		case line := <-lines:
			command, err := ParseCommand(line)
			if err != nil {
				if errors.Is(err, errEmptyCommand) {
					continue
				}
				if err = writeError(out, err); err != nil {
					return err
				}
				continue
			}

			err = that.dispatch(ctx, command, out)
			switch {
			case errors.Is(err, errQuit):
				log.Info("quit requested")
				return nil
			case err != nil:
				return err
			}

			if state := that.controller.State(); state.Winner != entity.Empty {
				log.Info("game over", "winner", state.Winner.String())
				return nil
			}
		}
	}
}

// dispatch - runs the handler for the command; recoverable errors are printed.
func (that *Server) dispatch(ctx context.Context, command *Command, out io.Writer) error {
	handle, ok := that.handlers[command.Action]
	if !ok {
		return writeError(out, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, command.Action))
	}

	err := handle(ctx, command, out)
	if err == nil || errors.Is(err, errQuit) || isWriteError(err) {
		return err
	}

	that.logger.Debug("command failed", "action", command.Action, "error", err)

	return writeError(out, err)
}

func (that *Server) handleMove(_ context.Context, command *Command, out io.Writer) error {
	state, err := that.controller.MakeTurn(command.Row, command.Col)
	if err != nil {
		return err
	}

	return writeState(out, state)
}

func (that *Server) handleBoard(_ context.Context, _ *Command, out io.Writer) error {
	return writeState(out, that.controller.State())
}

func (that *Server) handleHelp(_ context.Context, _ *Command, out io.Writer) error {
	return write(out, helpText)
}

func (that *Server) handleQuit(_ context.Context, _ *Command, _ io.Writer) error {
	return errQuit
}

// readLines - forwards input lines until EOF; the result of the scan goes to errs.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, errs chan<- error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	errs <- scanner.Err()
}

const helpText = `commands:
  move <row> <col>   place the current mark (also just "<row> <col>")
  board              show the board
  help               show this help
  quit               leave the game
`

// writeState - prints the winner, or whose turn it is followed by the board.
func writeState(out io.Writer, state *tictactoe.State) error {
	if state.Winner != entity.Empty {
		return write(out, fmt.Sprintf("Winner is: %c\n", state.Winner.Symbol()))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Turn: %c\n", state.Turn.Symbol())
	for _, line := range strings.SplitAfter(state.Board, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(&sb, "|%s|\n", strings.TrimSuffix(line, "\n"))
	}

	return write(out, sb.String())
}

func writeError(out io.Writer, err error) error {
	return write(out, fmt.Sprintf("error: %v\n", err))
}

type writeErr struct {
	err error
}

func (that *writeErr) Error() string {
	return fmt.Sprintf("failed to write output: %v", that.err)
}

func (that *writeErr) Unwrap() error {
	return that.err
}

func write(out io.Writer, text string) error {
	if _, err := io.WriteString(out, text); err != nil {
		return &writeErr{err: err}
	}
	return nil
}

func isWriteError(err error) bool {
	var target *writeErr
	return errors.As(err, &target)
}
