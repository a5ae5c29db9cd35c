package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, "[grind\n"))

	_, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
}

func TestConfigShowPrintsDefaults(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "token_ref: grindbot/telegram_token")
	assert.Contains(t, stdout, "check_interval: 15s")
	assert.Contains(t, stdout, "min: 2s")
	assert.Contains(t, stdout, "driver: toml")
	assert.Contains(t, stdout, "read_timeout: 5s")
	assert.Contains(t, stdout, filepath.Join(home, ".config", "grindbot", "sessions.toml"))
}

func TestConfigShowReadsExplicitFileAndEnv(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[telegram]
operator_id = 777

[grind]
max_retries = 2
`), 0o600))
	t.Setenv("GRINDBOT_LOG_LEVEL", "debug")

	stdout, _, err := executeCLI(t, home, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "operator_id: 777")
	assert.Contains(t, stdout, "max_retries: 2")
	assert.Contains(t, stdout, "level: debug")
}

func TestConfigPathPrintsDirectory(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "grindbot")+"\n", stdout)
}

func TestInvalidConfigFailsCommands(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `
[grind]
win_probability = 3.0
`))

	_, _, err := executeCLI(t, home, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.Contains(t, err.Error(), "win_probability")
}

func TestTokenSetRequiresValueFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "token", "set", "--ref", "file://telegram_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"value\" not set")
}

func TestTokenSetAndRemoveWithFileRef(t *testing.T) {
	home := t.TempDir()
	secretPath := filepath.Join(home, ".config", "grindbot", "secrets", "telegram_token")

	stdout, _, err := executeCLI(t, home, "token", "set", "--ref", "file://telegram_token", "--value", "123:abc")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bot token stored at file://telegram_token")

	data, err := os.ReadFile(secretPath)
	require.NoError(t, err)
	assert.Equal(t, "123:abc", string(data))

	_, _, err = executeCLI(t, home, "token", "remove", "--ref", "file://telegram_token")
	require.NoError(t, err)
	assert.NoFileExists(t, secretPath)
}

func TestTokenSetRejectsEnvRef(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "token", "set", "--ref", "env://BOT_TOKEN", "--value", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestHistoryEmptyArchive(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 0")
	assert.Contains(t, stdout, "No archived sessions.")
}

func TestHistoryTableShowsSessionsAndTotals(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionsFixture(home))

	stdout, _, err := executeCLI(t, home, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 2")
	assert.Contains(t, stdout, "run-new")
	assert.Contains(t, stdout, "run-old")
	assert.Contains(t, stdout, "Totals")
	assert.Contains(t, stdout, "rewards: 840 exp, 258 currency")
	assert.Less(t, strings.Index(stdout, "run-new"), strings.Index(stdout, "run-old"))
}

func TestHistoryJSONNewestFirstWithLimit(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionsFixture(home))

	stdout, _, err := executeCLI(t, home, "history", "--format", "json", "--limit", "1")
	require.NoError(t, err)

	var records []domain.SessionRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "run-new", records[0].ID)
	assert.Equal(t, domain.StopReasonBudget, records[0].StopReason)
}

func TestHistoryYAMLOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionsFixture(home))

	stdout, _, err := executeCLI(t, home, "history", "--format", "yaml", "--limit", "0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "id: run-new")
	assert.Contains(t, stdout, "id: run-old")
	assert.Contains(t, stdout, "stop_reason: operator")
}

func TestHistoryRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "history", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported --format \"csv\"")
}

func TestHistoryWithArchiveDisabled(t *testing.T) {
	t.Setenv("GRINDBOT_ARCHIVE_DRIVER", "none")

	_, _, err := executeCLI(t, t.TempDir(), "history")
	require.ErrorIs(t, err, errArchiveDisabled)
}

func TestHistoryWithSQLiteArchive(t *testing.T) {
	t.Setenv("GRINDBOT_ARCHIVE_DRIVER", "sqlite")
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "history", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, stdout)
	assert.FileExists(t, filepath.Join(home, ".config", "grindbot", "sessions.db"))
}

func TestServeRequiresOperator(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "serve")
	require.ErrorIs(t, err, errOperatorNotSet)
}

func TestServeReportsMissingToken(t *testing.T) {
	t.Setenv("GRINDBOT_TELEGRAM_OPERATOR_ID", "42")
	t.Setenv("GRINDBOT_TELEGRAM_TOKEN_REF", "env://GRINDBOT_TEST_UNSET_TOKEN")

	_, _, err := executeCLI(t, t.TempDir(), "serve")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Contains(t, err.Error(), "resolve bot token")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "grind")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"grind\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, contents string) error {
	dir := filepath.Join(home, ".config", "grindbot")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o600)
}

func writeSessionsFixture(home string) error {
	dir := filepath.Join(home, ".config", "grindbot")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	sessions := `version = 1

[[sessions]]
id = "run-old"
started_at = "2026-10-16T08:00:00Z"
ended_at = "2026-10-16T08:40:00Z"
stop_reason = "operator"
cycles = 12
errors = 1

[sessions.battles]
won = 6
lost = 1

[sessions.rewards]
experience = 840
currency = 258

[[sessions]]
id = "run-new"
started_at = "2026-10-17T09:00:00Z"
ended_at = "2026-10-17T09:05:00Z"
stop_reason = "budget"
cycles = 2
errors = 6

[sessions.battles]
won = 0
lost = 0
`

	return os.WriteFile(filepath.Join(dir, "sessions.toml"), []byte(sessions), 0o600)
}
