package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *ArchiveRepository {
	t.Helper()

	config := viper.New()
	config.Set("archive.path", path)

	repo, err := NewArchiveRepository(config)
	require.NoError(t, err)
	return repo
}

func TestArchiveRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))
	start := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	first := domain.SessionRecord{
		ID:          "run-1",
		StartedAt:   start,
		EndedAt:     start.Add(40 * time.Minute),
		Cycles:      12,
		BattlesWon:  6,
		BattlesLost: 1,
		Experience:  840,
		Currency:    258,
		Errors:      1,
		StopReason:  domain.StopReasonOperator,
	}
	second := domain.SessionRecord{
		ID:         "run-2",
		StartedAt:  start.Add(time.Hour),
		EndedAt:    start.Add(time.Hour + 90*time.Second),
		Errors:     6,
		StopReason: domain.StopReasonBudget,
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionRecord{first, second}, records)
}

func TestArchiveRepositorySaveReplacesSameID(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.SessionRecord{ID: "run-1", Cycles: 1}))
	require.NoError(t, repo.Save(context.Background(), domain.SessionRecord{ID: "run-1", Cycles: 4}))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].Cycles)
}

func TestArchiveRepositoryRejectsEmptyID(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))

	err := repo.Save(context.Background(), domain.SessionRecord{})
	require.ErrorContains(t, err, "id is empty")
}

func TestArchiveRepositoryDefaultPathAndPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewArchiveRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.SessionRecord{ID: "run-1"}))

	path := filepath.Join(homeDir, ".config", "grindbot", "sessions.toml")
	assert.Equal(t, path, repo.Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestArchiveRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "sessions.toml"))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestArchiveRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(path, []byte("sessions = ["), 0o600))

	_, err := newTestRepository(t, path).List(context.Background())
	require.ErrorContains(t, err, "decode sessions file")
}

func TestArchiveRepositoryMalformedTimestampReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[sessions]]",
		`id = "run-bad"`,
		`started_at = "yesterday"`,
		`stop_reason = "operator"`,
	}, "\n")), 0o600))
	repo := newTestRepository(t, path)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "decode sessions file")
	assert.ErrorContains(t, err, `session "run-bad" started_at`)

	err = repo.Save(context.Background(), domain.SessionRecord{ID: "run-next", StopReason: domain.StopReasonOperator})
	require.ErrorContains(t, err, "decode sessions file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "yesterday")
}

func TestArchiveRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"sessions = []",
		"",
	}, "\n")), 0o600))

	_, err := newTestRepository(t, path).List(context.Background())
	require.ErrorContains(t, err, "unsupported sessions schema version")
}

func TestArchiveRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.SessionRecord{ID: "run-1", StopReason: domain.StopReasonShutdown}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "stop_reason = 'shutdown'")
}

func TestArchiveRepositorySaveCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.SessionRecord{ID: "run-1"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestArchiveRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *ArchiveRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.SessionRecord{ID: prefix + strconv.Itoa(i)})
		}
	}
	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	records, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, perRepoWrites*2)
}
