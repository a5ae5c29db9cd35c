package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	sqliterepo "github.com/bnema/grindbot/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/grindbot/internal/adapters/repo/toml"
	chainstore "github.com/bnema/grindbot/internal/adapters/secrets/chain"
	envstore "github.com/bnema/grindbot/internal/adapters/secrets/env"
	filestore "github.com/bnema/grindbot/internal/adapters/secrets/file"
	passstore "github.com/bnema/grindbot/internal/adapters/secrets/pass"
	refstore "github.com/bnema/grindbot/internal/adapters/secrets/ref"
	"github.com/bnema/grindbot/internal/adapters/simulator"
	"github.com/bnema/grindbot/internal/application"
	"github.com/bnema/grindbot/internal/config"
	"github.com/bnema/grindbot/internal/ports"
	"github.com/spf13/viper"
)

var errArchiveDisabled = errors.New("session archive is disabled (archive.driver = none)")

type app struct {
	configPath  string
	cfg         config.Config
	logger      *slog.Logger
	secretStore ports.SecretStore
	now         func() time.Time
}

func wireApp(a *app, logOutput io.Writer) error {
	cfg, err := config.Load(viper.New(), a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := cfg.Log.NewLogger(logOutput)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	fallback, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir())
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.secretStore = refstore.NewStore(map[refstore.Scheme]ports.SecretStore{
		refstore.SchemePass:    passstore.NewStore(),
		refstore.SchemeFile:    filestore.NewStore(cfg.SecretsDir()),
		refstore.SchemeEnv:     envstore.NewStore(),
		refstore.SchemeDefault: fallback,
	})
	a.now = time.Now

	return nil
}

// openArchive returns a nil archive when archiving is disabled. The close
// function is always safe to call.
func (a *app) openArchive() (ports.SessionArchive, func() error, error) {
	noop := func() error { return nil }

	switch a.cfg.Archive.Driver {
	case config.ArchiveNone:
		return nil, noop, nil
	case config.ArchiveSQLite:
		repo, err := sqliterepo.Open(a.cfg.Archive.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("wire sqlite archive: %w", err)
		}
		return repo, repo.Close, nil
	default:
		v := viper.New()
		v.Set("archive.path", a.cfg.Archive.Path)
		repo, err := tomlrepo.NewArchiveRepository(v)
		if err != nil {
			return nil, noop, fmt.Errorf("wire toml archive: %w", err)
		}
		return repo, noop, nil
	}
}

func (a *app) newController(notifier ports.Notifier, archive ports.SessionArchive) (*application.GrindController, error) {
	controller, err := application.NewGrindController(a.cfg.Grind, application.GrindDeps{
		Actions:  simulator.NewActions(a.logger),
		Notifier: notifier,
		Archive:  archive,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire grind controller: %w", err)
	}
	return controller, nil
}
