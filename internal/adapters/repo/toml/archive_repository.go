package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	archivePathKey  = "archive.path"
	archiveFileMode = 0o600
	archiveDirMode  = 0o700
	archiveDir      = ".config/grindbot"
	archiveFile     = "sessions.toml"
	tempFilePattern = ".sessions-*.toml.tmp"
)

type ArchiveRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionArchive = (*ArchiveRepository)(nil)

func NewArchiveRepository(cfg *viper.Viper) (*ArchiveRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(archivePathKey, filepath.Join(homeDir, filepath.FromSlash(archiveDir), archiveFile))

	path := cfg.GetString(archivePathKey)
	if path == "" {
		return nil, errors.New("archive path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &ArchiveRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *ArchiveRepository) Path() string {
	return r.path
}

// Save upserts by record ID.
func (r *ArchiveRepository) Save(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.ID == "" {
		return errors.New("session record id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(record)
	updated := false
	for i := range file.Sessions {
		if file.Sessions[i].ID == encoded.ID {
			file.Sessions[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Sessions = append(file.Sessions, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *ArchiveRepository) List(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SessionRecord, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		record, err := fromSchema(entry)
		if err != nil {
			return nil, fmt.Errorf("decode sessions file: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *ArchiveRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read sessions file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode sessions file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	if err := file.validateTimes(); err != nil {
		return fileSchema{}, fmt.Errorf("decode sessions file: %w", err)
	}
	file.applyDefaults()

	return file, nil
}

func (r *ArchiveRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), archiveDirMode); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode sessions file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp sessions file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp sessions file: %w", err)
	}
	if err := tempFile.Chmod(archiveFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp sessions file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp sessions file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace sessions file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve archive path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.SessionRecord) sessionSchema {
	return sessionSchema{
		ID:         record.ID,
		StartedAt:  formatTime(record.StartedAt),
		EndedAt:    formatTime(record.EndedAt),
		StopReason: string(record.StopReason),
		Cycles:     record.Cycles,
		Errors:     record.Errors,
		Battles:    battlesSchema{Won: record.BattlesWon, Lost: record.BattlesLost},
		Rewards:    rewardsSchema{Experience: record.Experience, Currency: record.Currency},
	}
}

func fromSchema(entry sessionSchema) (domain.SessionRecord, error) {
	startedAt, err := parseTime(entry.StartedAt)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("session %q started_at: %w", entry.ID, err)
	}
	endedAt, err := parseTime(entry.EndedAt)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("session %q ended_at: %w", entry.ID, err)
	}

	return domain.SessionRecord{
		ID:          entry.ID,
		StartedAt:   startedAt,
		EndedAt:     endedAt,
		Cycles:      entry.Cycles,
		BattlesWon:  entry.Battles.Won,
		BattlesLost: entry.Battles.Lost,
		Experience:  entry.Rewards.Experience,
		Currency:    entry.Rewards.Currency,
		Errors:      entry.Errors,
		StopReason:  domain.StopReason(entry.StopReason),
	}, nil
}

// parseTime maps an empty string to the zero time.
func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
