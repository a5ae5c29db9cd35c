package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/grindbot/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.msgs = append(s.msgs, msg)
}

type blockingSender struct {
	release chan struct{}
}

func (s blockingSender) Send(tea.Msg) {
	<-s.release
}

func TestNotifierDropsWithoutProgram(t *testing.T) {
	t.Parallel()

	err := NewNotifier().Notify(context.Background(), domain.Notification{Kind: domain.NotificationStarted})
	require.NoError(t, err)
}

func TestNotifierForwardsToProgram(t *testing.T) {
	t.Parallel()

	target := &recordingSender{}
	n := NewNotifier()
	n.attach(target)

	require.NoError(t, n.Notify(context.Background(), domain.Notification{Kind: domain.NotificationStopped}))

	require.Len(t, target.msgs, 1)
	msg, ok := target.msgs[0].(notificationMsg)
	require.True(t, ok)
	assert.Equal(t, domain.NotificationStopped, msg.notification.Kind)
}

func TestNotifierHonorsContext(t *testing.T) {
	t.Parallel()

	target := blockingSender{release: make(chan struct{})}
	defer close(target.release)

	n := NewNotifier()
	n.attach(target)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Notify(ctx, domain.Notification{Kind: domain.NotificationBattleLost})
	assert.True(t, errors.Is(err, context.Canceled))
}
