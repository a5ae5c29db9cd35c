package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  started_at INTEGER NOT NULL,
  ended_at INTEGER NOT NULL,
  cycles INTEGER NOT NULL DEFAULT 0,
  battles_won INTEGER NOT NULL DEFAULT 0,
  battles_lost INTEGER NOT NULL DEFAULT 0,
  experience INTEGER NOT NULL DEFAULT 0,
  currency INTEGER NOT NULL DEFAULT 0,
  errors INTEGER NOT NULL DEFAULT 0,
  stop_reason TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);
`

type ArchiveRepository struct {
	db *sql.DB
}

var _ ports.SessionArchive = (*ArchiveRepository)(nil)

// Open creates or opens the archive database at path.
func Open(path string) (*ArchiveRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Join(fmt.Errorf("init schema: %w", err), db.Close())
	}

	return &ArchiveRepository{db: db}, nil
}

func (r *ArchiveRepository) Close() error {
	return r.db.Close()
}

func (r *ArchiveRepository) Save(ctx context.Context, record domain.SessionRecord) error {
	if record.ID == "" {
		return errors.New("session record id is empty")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, started_at, ended_at, cycles, battles_won, battles_lost, experience, currency, errors, stop_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			cycles = excluded.cycles,
			battles_won = excluded.battles_won,
			battles_lost = excluded.battles_lost,
			experience = excluded.experience,
			currency = excluded.currency,
			errors = excluded.errors,
			stop_reason = excluded.stop_reason`,
		record.ID,
		toUnixNano(record.StartedAt),
		toUnixNano(record.EndedAt),
		record.Cycles,
		record.BattlesWon,
		record.BattlesLost,
		record.Experience,
		record.Currency,
		record.Errors,
		string(record.StopReason),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", record.ID, err)
	}

	return nil
}

func (r *ArchiveRepository) List(ctx context.Context) ([]domain.SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, cycles, battles_won, battles_lost, experience, currency, errors, stop_reason
		FROM sessions
		ORDER BY ended_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []domain.SessionRecord
	for rows.Next() {
		var (
			rec                domain.SessionRecord
			startedAt, endedAt int64
			reason             string
		)
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.Cycles, &rec.BattlesWon, &rec.BattlesLost,
			&rec.Experience, &rec.Currency, &rec.Errors, &reason); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = fromUnixNano(startedAt)
		rec.EndedAt = fromUnixNano(endedAt)
		rec.StopReason = domain.StopReason(reason)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return records, nil
}

func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.Unix(0, v).UTC()
}
