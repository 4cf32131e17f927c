package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/tdeecalc/internal/app"
	"github.com/specialistvlad/tdeecalc/internal/cli"
	"github.com/specialistvlad/tdeecalc/internal/hcl"
)

// main is the entrypoint for the tdee calculator.
func main() {
	slog.SetDefault(newBootstrapLogger(os.Stderr))

	// Ctrl+C cancels the context; the session turns that into a clean exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	streams := app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	// The real main function handles errors and exit codes.
	if err := run(ctx, streams, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newBootstrapLogger is used until the settings have been resolved. It stays
// at warn so that a plain run prints nothing besides the dialogue.
func newBootstrapLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, streams app.Streams, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, streams.Out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Nothing below may crash the process with a half-printed report.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	tdeeApp, err := app.NewApp(ctx, streams, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}

	return tdeeApp.Run(ctx)
}
