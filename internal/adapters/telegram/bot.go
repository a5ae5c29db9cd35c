package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/grindbot/internal/adapters/render/message"
	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI is the subset of *tgbotapi.BotAPI the adapter uses.
type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var _ botAPI = (*tgbotapi.BotAPI)(nil)

// Connect authorizes token against the Bot API.
func Connect(token string, debug bool) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	api.Debug = debug
	return api, nil
}

const defaultNotifyTimeout = 10 * time.Second

type BotConfig struct {
	OperatorID  int64
	PollTimeout int

	// NotifyTimeout bounds the onboarding message sent on /start.
	NotifyTimeout time.Duration
}

// Bot dispatches operator commands received by long polling.
type Bot struct {
	api      botAPI
	commands ports.GrindCommands
	notifier ports.Notifier
	cfg      BotConfig
	logger   *slog.Logger
}

func NewBot(api botAPI, commands ports.GrindCommands, notifier ports.Notifier, cfg BotConfig, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	return &Bot{
		api:      api,
		commands: commands,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger.With("component", "telegram"),
	}
}

// Run polls updates until ctx ends or the update channel closes.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("polling updates", "operator_id", b.cfg.OperatorID)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}

	if msg.From.ID != b.cfg.OperatorID {
		b.logger.Warn("rejected message", "from", msg.From.ID, "error", domain.ErrUnauthorized)
		b.reply(msg.Chat.ID, message.Unauthorized())
		return
	}

	if !msg.IsCommand() {
		b.reply(msg.Chat.ID, message.UnknownCommand())
		return
	}

	b.logger.Debug("command", "name", msg.Command())
	b.reply(msg.Chat.ID, b.dispatch(ctx, msg.Command()))
}

func (b *Bot) dispatch(ctx context.Context, command string) string {
	switch command {
	case "start":
		b.onboard(ctx)
		return message.Welcome()
	case "help":
		return message.Help()
	case "grind":
		summary, err := b.commands.Toggle()
		if err != nil {
			return message.Error(err)
		}
		return message.Toggled(summary)
	case "status":
		return message.Status(b.commands.Status())
	case "pause":
		if _, err := b.commands.Pause(); err != nil {
			return message.Error(err)
		}
		return message.Paused()
	case "resume":
		if _, err := b.commands.Resume(); err != nil {
			return message.Error(err)
		}
		return message.Resumed()
	case "reset":
		if _, err := b.commands.Reset(); err != nil {
			return message.Error(err)
		}
		return message.Reset()
	default:
		return message.UnknownCommand()
	}
}

func (b *Bot) onboard(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.NotifyTimeout)
	defer cancel()

	if err := b.notifier.Notify(ctx, domain.Notification{Kind: domain.NotificationOnboarding}); err != nil {
		b.logger.Warn("onboarding notification", "error", fmt.Errorf("%w: %w", domain.ErrNotificationDelivery, err))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn("send reply", "chat_id", chatID, "error", err)
	}
}
