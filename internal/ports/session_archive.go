package ports

import (
	"context"

	"github.com/bnema/grindbot/internal/domain"
)

type SessionArchive interface {
	Save(ctx context.Context, record domain.SessionRecord) error
	List(ctx context.Context) ([]domain.SessionRecord, error)
}
