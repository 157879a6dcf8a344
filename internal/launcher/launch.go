// Package launcher runs the interactive board
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/cli"
	"github.com/thenoetrevino/jobzy/internal/tui"
)

// shutdownGrace is how long the board gets to exit after a signal
const shutdownGrace = 2 * time.Second

// Launch starts the TUI application. The configuration comes from ctx, see
// cli.WithConfigPath.
func Launch(ctx context.Context) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Loads config, initializes logging to file and opens the board
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	model := tui.New(ctx, cliInstance.App)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && !isContextErr(err) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("board did not exit in time")
		}
	}

	return nil
}

// isContextErr reports whether the program stopped because ctx was cancelled
func isContextErr(err error) bool {
	if errors.Is(err, tea.ErrProgramPanic) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled)
}
