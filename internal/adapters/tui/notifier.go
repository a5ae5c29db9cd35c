package tui

import (
	"context"
	"sync"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

type sender interface {
	Send(msg tea.Msg)
}

// Notifier forwards notifications into a running console program. It drops
// them while no program is attached.
type Notifier struct {
	mu     sync.RWMutex
	target sender
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) attach(target sender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.target = target
}

func (n *Notifier) Notify(ctx context.Context, notification domain.Notification) error {
	n.mu.RLock()
	target := n.target
	n.mu.RUnlock()

	if target == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		target.Send(notificationMsg{notification: notification})
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
