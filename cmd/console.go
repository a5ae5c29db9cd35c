package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/grindbot/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Drive a grind session from the terminal instead of Telegram",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			archive, closeArchive, err := app.openArchive()
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, closeArchive())
			}()

			notifier := tui.NewNotifier()
			controller, err := app.newController(notifier, archive)
			if err != nil {
				return err
			}

			runErr := tui.Run(ctx, controller, notifier, cmd.InOrStdin(), cmd.OutOrStdout())

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			if shutdownErr := controller.Shutdown(shutdownCtx); shutdownErr != nil {
				return errors.Join(runErr, fmt.Errorf("shutdown grind controller: %w", shutdownErr))
			}

			return runErr
		},
	}
}
