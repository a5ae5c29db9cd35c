package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bnema/grindbot/internal/adapters/httpapi"
	"github.com/bnema/grindbot/internal/adapters/telegram"
	"github.com/bnema/grindbot/internal/application"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var errOperatorNotSet = errors.New("telegram.operator_id is not set")

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot (and the HTTP status endpoint when configured)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, app)
		},
	}
}

func runServe(ctx context.Context, app *app) (err error) {
	tg := app.cfg.Telegram
	if tg.OperatorID == 0 {
		return errOperatorNotSet
	}

	token, err := app.secretStore.Get(ctx, tg.TokenRef)
	if err != nil {
		return fmt.Errorf("resolve bot token %q: %w", tg.TokenRef, err)
	}

	api, err := telegram.Connect(token, tg.Debug)
	if err != nil {
		return err
	}
	app.logger.Info("telegram bot authorized", "username", api.Self.UserName)

	archive, closeArchive, err := app.openArchive()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeArchive())
	}()

	// The operator's private chat id equals their user id.
	notifier := telegram.NewNotifier(api, tg.OperatorID)

	controller, err := app.newController(notifier, archive)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if shutdownErr := controller.Shutdown(shutdownCtx); shutdownErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown grind controller: %w", shutdownErr))
		}
	}()

	bot := telegram.NewBot(api, controller, notifier, telegram.BotConfig{
		OperatorID:    tg.OperatorID,
		PollTimeout:   tg.PollTimeout,
		NotifyTimeout: app.cfg.Grind.NotifyTimeout,
	}, app.logger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()
		record(bot.Run(runCtx))
	}()

	if app.cfg.HTTP.Listen != "" {
		router := httpapi.NewRouter(controller, application.NewArchiveService(archive), app.logger.With("component", "http"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			record(httpapi.Serve(runCtx, httpapi.ServerConfig{
				Listen:       app.cfg.HTTP.Listen,
				ReadTimeout:  app.cfg.HTTP.ReadTimeout,
				WriteTimeout: app.cfg.HTTP.WriteTimeout,
			}, router, app.logger))
		}()
	}

	wg.Wait()
	app.logger.Info("shutting down")

	return errors.Join(errs...)
}
