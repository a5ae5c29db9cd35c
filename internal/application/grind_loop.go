package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/grindbot/internal/domain"
)

func (c *GrindController) runLoop(ctx context.Context, run *runHandle) {
	defer run.cancel()

	c.notify(ctx, domain.Notification{Kind: domain.NotificationStarted, Summary: c.Status()})

	reason := c.loop(ctx, run)
	c.finish(ctx, run, reason)
}

func (c *GrindController) loop(ctx context.Context, run *runHandle) domain.StopReason {
	for {
		reason, ok := c.awaitRunnable(ctx)
		if !ok {
			return reason
		}

		err := c.iterate(ctx, run)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return domain.StopReasonShutdown
		}

		errs := c.recordFailure(run)
		c.logger.Warn("grind iteration failed", "session_id", run.id, "consecutive_errors", errs, "error", err)
		if err := c.sleep(ctx, c.cfg.FaultRecoveryDelay); err != nil {
			return domain.StopReasonShutdown
		}
	}
}

// awaitRunnable is the loop's check point. It blocks while paused and reports
// why the loop must end otherwise.
func (c *GrindController) awaitRunnable(ctx context.Context) (domain.StopReason, bool) {
	for {
		if ctx.Err() != nil {
			return domain.StopReasonShutdown, false
		}

		c.mu.Lock()
		state := c.session.State
		changed := c.changed

		switch state {
		case domain.StateRunning:
			if c.session.ConsecutiveErrors > c.cfg.MaxRetries {
				c.setStateLocked(domain.StateShuttingDown)
				c.mu.Unlock()
				return domain.StopReasonBudget, false
			}
			c.mu.Unlock()
			return "", true
		case domain.StatePaused:
			c.mu.Unlock()
			select {
			case <-changed:
			case <-ctx.Done():
			}
		default:
			c.mu.Unlock()
			return domain.StopReasonOperator, false
		}
	}
}

func (c *GrindController) iterate(ctx context.Context, run *runHandle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: recovered panic: %v", domain.ErrTransientAction, r)
		}
	}()

	if err := c.actions.Explore(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		errs := c.recordFailure(run)
		c.logger.Warn("explore failed", "session_id", run.id, "consecutive_errors", errs,
			"error", fmt.Errorf("%w: explore: %w", domain.ErrTransientAction, err))
		return c.sleep(ctx, c.cfg.RecoveryDelay)
	}

	c.mu.Lock()
	c.session.CycleCount++
	c.session.LastAction = domain.ActionExplore
	run.cycles++
	c.mu.Unlock()

	if err := c.sleep(ctx, c.between(c.cfg.ExploreDelay)); err != nil {
		return err
	}

	if err := c.sleep(ctx, c.between(c.cfg.EncounterDelay)); err != nil {
		return err
	}
	if c.random.Float64() < c.cfg.EncounterProbability {
		if err := c.battle(ctx, run); err != nil {
			return err
		}
	}

	if err := c.actions.CloseDialogs(ctx); err != nil {
		return fmt.Errorf("%w: close dialogs: %w", domain.ErrTransientAction, err)
	}
	if err := c.sleep(ctx, c.cfg.CleanupDelay); err != nil {
		return err
	}

	return c.sleep(ctx, c.jitteredInterval())
}

func (c *GrindController) battle(ctx context.Context, run *runHandle) error {
	if err := c.actions.Battle(ctx); err != nil {
		return fmt.Errorf("%w: battle: %w", domain.ErrTransientAction, err)
	}

	n := domain.Notification{MaxRetries: c.cfg.MaxRetries}
	if c.random.Float64() < c.cfg.WinProbability {
		reward := domain.BattleReward{
			Experience: c.draw(c.cfg.Experience),
			Currency:   c.draw(c.cfg.Currency),
		}

		c.mu.Lock()
		c.session.TotalExperience += reward.Experience
		c.session.TotalCurrency += reward.Currency
		c.session.ConsecutiveErrors = 0
		c.session.LastAction = domain.ActionBattle
		run.battlesWon++
		run.experience += reward.Experience
		run.currency += reward.Currency
		n.Summary = c.session.Summary()
		c.mu.Unlock()

		n.Kind = domain.NotificationBattleWon
		n.Reward = &reward
	} else {
		c.mu.Lock()
		c.session.ConsecutiveErrors++
		c.session.LastAction = domain.ActionBattle
		run.battlesLost++
		run.errors++
		n.Summary = c.session.Summary()
		n.ConsecutiveErrors = c.session.ConsecutiveErrors
		c.mu.Unlock()

		n.Kind = domain.NotificationBattleLost
	}

	c.notify(ctx, n)

	return c.sleep(ctx, c.cfg.BattleCooldown)
}

func (c *GrindController) finish(ctx context.Context, run *runHandle, reason domain.StopReason) {
	c.mu.Lock()
	if c.session.IsActive() {
		c.setStateLocked(domain.StateShuttingDown)
	}
	summary := c.session.Summary()
	errs := c.session.ConsecutiveErrors
	record := domain.SessionRecord{
		ID:          run.id,
		StartedAt:   run.startedAt,
		EndedAt:     c.clock.Now(),
		Cycles:      run.cycles,
		BattlesWon:  run.battlesWon,
		BattlesLost: run.battlesLost,
		Experience:  run.experience,
		Currency:    run.currency,
		Errors:      run.errors,
		StopReason:  reason,
	}
	c.mu.Unlock()

	if reason == domain.StopReasonBudget {
		c.logger.Error("grind session stopped", "session_id", run.id, "consecutive_errors", errs,
			"error", fmt.Errorf("%w: %d consecutive errors, limit %d", domain.ErrErrorBudgetExceeded, errs, c.cfg.MaxRetries))
		c.notify(ctx, domain.Notification{
			Kind:              domain.NotificationBudgetExceeded,
			Summary:           summary,
			ConsecutiveErrors: errs,
			MaxRetries:        c.cfg.MaxRetries,
		})
	} else {
		c.logger.Info("grind session stopped", "session_id", run.id, "reason", reason, "cycles", run.cycles)
		c.notify(ctx, domain.Notification{Kind: domain.NotificationStopped, Summary: summary})
	}

	c.archiveRecord(ctx, record)

	c.mu.Lock()
	c.setStateLocked(domain.StateIdle)
	c.run = nil
	close(run.done)
	c.mu.Unlock()
}

func (c *GrindController) recordFailure(run *runHandle) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.ConsecutiveErrors++
	run.errors++
	return c.session.ConsecutiveErrors
}

func (c *GrindController) notify(ctx context.Context, n domain.Notification) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.NotifyTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("notifier panicked", "kind", n.Kind, "panic", r)
		}
	}()

	if err := c.notifier.Notify(sendCtx, n); err != nil {
		c.logger.Warn("notification dropped", "kind", n.Kind,
			"error", fmt.Errorf("%w: %w", domain.ErrNotificationDelivery, err))
	}
}

func (c *GrindController) archiveRecord(ctx context.Context, record domain.SessionRecord) {
	if c.archive == nil {
		return
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.NotifyTimeout)
	defer cancel()

	if err := c.archive.Save(saveCtx, record); err != nil {
		c.logger.Warn("archive session record", "session_id", record.ID, "error", err)
	}
}

func (c *GrindController) sleep(ctx context.Context, d time.Duration) error {
	if err := c.sleeper.Sleep(ctx, d); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("sleep %s: %w", d, err)
	}
	return nil
}

func (c *GrindController) draw(r domain.Range) int {
	return r.Min + int(c.random.Int64N(int64(r.Max-r.Min)+1))
}

func (c *GrindController) between(r DurationRange) time.Duration {
	return r.Min + time.Duration(c.random.Int64N(int64(r.Max-r.Min)+1))
}

// jitteredInterval is CheckInterval shifted uniformly within ±CheckJitter.
func (c *GrindController) jitteredInterval() time.Duration {
	offset := time.Duration(c.random.Int64N(int64(2*c.cfg.CheckJitter) + 1))
	return c.cfg.CheckInterval - c.cfg.CheckJitter + offset
}
