package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/nxn-tictactoe/internal/config"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/transport/console"
)

// RunApp - runs the application on the process standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - builds a board from conf and plays it through the console until it ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	startingMark, err := conf.Board.GetStartingMark()
	if err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}

	if !conf.Board.Reachable() {
		log.Warn("no winner is reachable with this board",
			"size", conf.Board.Size, "win_length", conf.Board.WinLength)
	}

	board := entity.NewBoard(conf.Board.Size, conf.Board.WinLength, startingMark)
	controller := tictactoe.NewGameController(logger, board)

	log.Info("Starting game",
		"session", controller.SessionID(),
		"size", board.Size(),
		"win_length", board.WinLength(),
		"starting_mark", startingMark.String())

	if err = console.New(logger, controller).Serve(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Game session closed", "session", controller.SessionID())

	return nil
}
