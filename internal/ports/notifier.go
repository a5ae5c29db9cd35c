package ports

import (
	"context"

	"github.com/bnema/grindbot/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
