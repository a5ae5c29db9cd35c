package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierSendsToOperatorChat(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.NotificationKind
		silent bool
	}{
		{name: "budget exceeded is loud", kind: domain.NotificationBudgetExceeded, silent: false},
		{name: "stopped is loud", kind: domain.NotificationStopped, silent: false},
		{name: "battle won is silent", kind: domain.NotificationBattleWon, silent: true},
		{name: "battle lost is silent", kind: domain.NotificationBattleLost, silent: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI()
			notifier := NewNotifier(api, operatorID)

			require.NoError(t, notifier.Notify(context.Background(), domain.Notification{Kind: tc.kind}))

			sent := api.messages()
			require.Len(t, sent, 1)
			assert.Equal(t, operatorID, sent[0].ChatID)
			assert.Equal(t, tc.silent, sent[0].DisableNotification)
		})
	}
}

func TestNotifierWrapsSendError(t *testing.T) {
	api := newFakeAPI()
	api.sendErr = errors.New("bad gateway")

	err := NewNotifier(api, operatorID).Notify(context.Background(), domain.Notification{Kind: domain.NotificationStarted})
	require.ErrorContains(t, err, "send started notification")
	require.ErrorContains(t, err, "bad gateway")
}

type blockingSender struct {
	release chan struct{}
}

func (b blockingSender) Send(tgbotapi.Chattable) (tgbotapi.Message, error) {
	<-b.release
	return tgbotapi.Message{}, nil
}

func TestNotifierHonorsContextDeadline(t *testing.T) {
	sender := blockingSender{release: make(chan struct{})}
	defer close(sender.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewNotifier(sender, operatorID).Notify(ctx, domain.Notification{Kind: domain.NotificationStopped})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
