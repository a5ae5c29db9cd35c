package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
)

type ArchiveService struct {
	archive ports.SessionArchive
}

func NewArchiveService(archive ports.SessionArchive) *ArchiveService {
	return &ArchiveService{archive: archive}
}

// Recent returns archived sessions newest first. A limit of zero or less
// returns every record.
func (s *ArchiveService) Recent(ctx context.Context, limit int) ([]domain.SessionRecord, error) {
	if s.archive == nil {
		return nil, nil
	}

	records, err := s.archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session records: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EndedAt.After(records[j].EndedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// Totals folds records into one aggregate row.
func (s *ArchiveService) Totals(records []domain.SessionRecord) domain.SessionRecord {
	var total domain.SessionRecord
	for _, r := range records {
		total.Cycles += r.Cycles
		total.BattlesWon += r.BattlesWon
		total.BattlesLost += r.BattlesLost
		total.Experience += r.Experience
		total.Currency += r.Currency
		total.Errors += r.Errors
	}
	return total
}
