package telegram

import (
	"context"
	"fmt"

	"github.com/bnema/grindbot/internal/adapters/render/message"
	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier pushes notifications to the operator's private chat. Routine
// kinds are delivered silently.
type Notifier struct {
	api    sender
	chatID int64
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(api sender, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

func (n *Notifier) Notify(ctx context.Context, notification domain.Notification) error {
	msg := tgbotapi.NewMessage(n.chatID, message.Notification(notification))
	msg.DisableNotification = !notification.Important()

	errCh := make(chan error, 1)
	go func() {
		_, err := n.api.Send(msg)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("send %s notification: %w", notification.Kind, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send %s notification: %w", notification.Kind, ctx.Err())
	}
}
