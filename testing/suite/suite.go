package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/nxn-tictactoe/internal/config"
	"github.com/rocketscienceinc/nxn-tictactoe/internal/entity"
)

const maxWaitDuration = 10 * time.Second

// defaults used by New, matching the config.yml shipped with the binary
const (
	DefaultSize      = 6
	DefaultWinLength = 3
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config

	Board *entity.Board
}

// New - returns a context bound to the test and a suite with a fresh default board.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithBoard(t, DefaultSize, DefaultWinLength, entity.Nought)
}

// NewWithBoard - same as New with a custom board configuration.
func NewWithBoard(t *testing.T, size, winLength int, startingMark entity.Mark) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	conf := &config.Config{
		LogLevel: "info",
		Board: config.Board{
			Size:         size,
			WinLength:    winLength,
			StartingMark: startingMark.String(),
		},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
		Board:  entity.NewBoard(size, winLength, startingMark),
	}
}
