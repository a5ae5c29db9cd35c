package simulator

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/bnema/grindbot/internal/ports"
)

// Actions fakes the in-game actions. Every action succeeds unless ctx is done.
type Actions struct {
	logger   *slog.Logger
	explores atomic.Int64
	battles  atomic.Int64
}

var _ ports.GameActions = (*Actions)(nil)

func NewActions(logger *slog.Logger) *Actions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Actions{logger: logger.With("component", "simulator")}
}

func (a *Actions) Explore(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := a.explores.Add(1)
	a.logger.Debug("explore", "count", n)
	return nil
}

func (a *Actions) Battle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := a.battles.Add(1)
	a.logger.Debug("battle", "count", n)
	return nil
}

func (a *Actions) CloseDialogs(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.Debug("close dialogs")
	return nil
}

func (a *Actions) Counts() (explores, battles int64) {
	return a.explores.Load(), a.battles.Load()
}
