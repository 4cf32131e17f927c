package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/tdeecalc/internal/server"
	"github.com/specialistvlad/tdeecalc/internal/session"
)

// CancelledNotice is printed when the user aborts the interactive session.
const CancelledNotice = "中断しました。"

// Run executes the main application logic based on the resolved configuration.
// An interrupted session is a normal outcome: the notice is printed and Run
// returns nil.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.")

	if a.config.ServeAddr != "" {
		srv := server.New(a.logger)
		if err := srv.ListenAndServe(ctx, a.config.ServeAddr); err != nil {
			return fmt.Errorf("serve failed: %w", err)
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	_, err := session.Run(ctx, a.streams.In, a.streams.Out)
	if errors.Is(err, session.ErrCancelled) {
		a.logger.Info("Session cancelled by user.", "reason", err)
		fmt.Fprintln(a.streams.Out, "\n"+CancelledNotice)
		return nil
	}
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
