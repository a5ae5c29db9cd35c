package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	"github.com/google/uuid"
)

var _ ports.GrindCommands = (*GrindController)(nil)

var (
	errNilActions  = errors.New("game actions are nil")
	errNilNotifier = errors.New("notifier is nil")
)

type GrindDeps struct {
	Actions  ports.GameActions
	Notifier ports.Notifier
	Random   ports.Random
	Sleeper  ports.Sleeper
	Clock    ports.Clock
	// Archive is optional; finished runs are dropped when nil.
	Archive ports.SessionArchive
	Logger  *slog.Logger
}

// GrindController owns one grinding session and at most one loop goroutine
// driving it. All session fields are guarded by mu. Every state transition
// closes and replaces changed so a paused loop can wait without polling.
type GrindController struct {
	cfg      GrindConfig
	actions  ports.GameActions
	notifier ports.Notifier
	random   ports.Random
	sleeper  ports.Sleeper
	clock    ports.Clock
	archive  ports.SessionArchive
	logger   *slog.Logger

	mu      sync.Mutex
	session domain.Session
	changed chan struct{}
	run     *runHandle
	closed  bool
}

type runHandle struct {
	id        string
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	// guarded by GrindController.mu
	cycles      int
	battlesWon  int
	battlesLost int
	experience  int
	currency    int
	errors      int
}

func NewGrindController(cfg GrindConfig, deps GrindDeps) (*GrindController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grind config: %w", err)
	}
	if deps.Actions == nil {
		return nil, errNilActions
	}
	if deps.Notifier == nil {
		return nil, errNilNotifier
	}
	if deps.Random == nil {
		deps.Random = ports.SystemRandom{}
	}
	if deps.Sleeper == nil {
		deps.Sleeper = ports.TimerSleeper{}
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &GrindController{
		cfg:      cfg,
		actions:  deps.Actions,
		notifier: deps.Notifier,
		random:   deps.Random,
		sleeper:  deps.Sleeper,
		clock:    deps.Clock,
		archive:  deps.Archive,
		logger:   deps.Logger.With("component", "grind"),
		session:  domain.NewSession(),
		changed:  make(chan struct{}),
	}, nil
}

// Toggle starts a loop when idle and signals the running loop to stop
// otherwise. Stopping is cooperative: the loop finishes its in-flight cycle
// and exits at its next check point.
func (c *GrindController) Toggle() (domain.SessionSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.State {
	case domain.StateIdle:
		if c.closed {
			return c.session.Summary(), &domain.StateError{Op: "toggle", State: c.session.State, Reason: "controller is shut down"}
		}
		c.startLocked()
	case domain.StateRunning, domain.StatePaused:
		c.setStateLocked(domain.StateShuttingDown)
		c.logger.Info("stop requested", "session_id", c.run.id)
	case domain.StateShuttingDown:
		return c.session.Summary(), &domain.StateError{Op: "toggle", State: c.session.State, Reason: "session is still stopping"}
	}

	return c.session.Summary(), nil
}

func (c *GrindController) Pause() (domain.SessionSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.State {
	case domain.StateRunning:
		c.setStateLocked(domain.StatePaused)
		return c.session.Summary(), nil
	case domain.StatePaused:
		return c.session.Summary(), &domain.StateError{Op: "pause", State: c.session.State, Reason: "already paused"}
	default:
		return c.session.Summary(), &domain.StateError{Op: "pause", State: c.session.State, Reason: "not active"}
	}
}

func (c *GrindController) Resume() (domain.SessionSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.State != domain.StatePaused {
		return c.session.Summary(), &domain.StateError{Op: "resume", State: c.session.State, Reason: "not paused"}
	}

	c.setStateLocked(domain.StateRunning)
	return c.session.Summary(), nil
}

func (c *GrindController) Status() domain.SessionSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.Summary()
}

func (c *GrindController) Reset() (domain.SessionSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.session.State {
	case domain.StateIdle:
		c.session.ResetCounters()
		return c.session.Summary(), nil
	case domain.StateShuttingDown:
		return c.session.Summary(), &domain.StateError{Op: "reset", State: c.session.State, Reason: "session is still stopping"}
	default:
		return c.session.Summary(), &domain.StateError{Op: "reset", State: c.session.State, Reason: "cannot reset while active"}
	}
}

// ConsecutiveErrors reports the current error streak.
func (c *GrindController) ConsecutiveErrors() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.ConsecutiveErrors
}

// Wait blocks until no loop is alive or ctx ends.
func (c *GrindController) Wait(ctx context.Context) error {
	c.mu.Lock()
	run := c.run
	c.mu.Unlock()

	if run == nil {
		return nil
	}

	select {
	case <-run.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown refuses further starts, interrupts the loop's current sleep and
// waits for the goroutine to exit.
func (c *GrindController) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	run := c.run
	if run != nil {
		if c.session.IsActive() {
			c.setStateLocked(domain.StateShuttingDown)
		}
		run.cancel()
	}
	c.mu.Unlock()

	if run == nil {
		return nil
	}

	select {
	case <-run.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for grind loop: %w", ctx.Err())
	}
}

func (c *GrindController) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	run := &runHandle{
		id:        uuid.New().String(),
		startedAt: c.clock.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	c.session.ConsecutiveErrors = 0
	c.run = run
	c.setStateLocked(domain.StateRunning)
	c.logger.Info("grind session starting", "session_id", run.id)

	go c.runLoop(ctx, run)
}

func (c *GrindController) setStateLocked(state domain.SessionState) {
	if c.session.State == state {
		return
	}
	c.session.State = state
	close(c.changed)
	c.changed = make(chan struct{})
}
