package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/grindbot/internal/application"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "GRINDBOT"
	appDirName = "grindbot"

	DefaultTokenRef = "grindbot/telegram_token"
)

type ArchiveDriver string

const (
	ArchiveTOML   ArchiveDriver = "toml"
	ArchiveSQLite ArchiveDriver = "sqlite"
	ArchiveNone   ArchiveDriver = "none"
)

type Config struct {
	Telegram TelegramConfig          `mapstructure:"telegram" yaml:"telegram"`
	Grind    application.GrindConfig `mapstructure:"grind" yaml:"grind"`
	Archive  ArchiveConfig           `mapstructure:"archive" yaml:"archive"`
	HTTP     HTTPConfig              `mapstructure:"http" yaml:"http"`
	Log      LogConfig               `mapstructure:"log" yaml:"log"`
	// Dir is where the config file, archive and file secrets live.
	Dir string `mapstructure:"-" yaml:"-"`
}

type TelegramConfig struct {
	OperatorID  int64  `mapstructure:"operator_id" yaml:"operator_id"`
	TokenRef    string `mapstructure:"token_ref" yaml:"token_ref"`
	PollTimeout int    `mapstructure:"poll_timeout" yaml:"poll_timeout"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
}

type ArchiveConfig struct {
	Driver ArchiveDriver `mapstructure:"driver" yaml:"driver"`
	Path   string        `mapstructure:"path" yaml:"path"`
}

type HTTPConfig struct {
	Listen       string        `mapstructure:"listen"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (c HTTPConfig) MarshalYAML() (any, error) {
	return map[string]string{
		"listen":        c.Listen,
		"read_timeout":  c.ReadTimeout.String(),
		"write_timeout": c.WriteTimeout.String(),
	}, nil
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Dir returns $HOME/.config/grindbot.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appDirName), nil
}

// Load reads the config file (explicit path or the default directory),
// applies GRINDBOT_* environment overrides and validates the result. A missing
// default config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
		dir = filepath.Dir(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Dir = dir
	cfg.Archive.Path = cfg.archivePath()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	grind := application.DefaultGrindConfig()

	v.SetDefault("telegram.operator_id", 0)
	v.SetDefault("telegram.token_ref", DefaultTokenRef)
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.debug", false)

	v.SetDefault("grind.check_interval", grind.CheckInterval)
	v.SetDefault("grind.check_jitter", grind.CheckJitter)
	v.SetDefault("grind.max_retries", grind.MaxRetries)
	v.SetDefault("grind.explore_delay.min", grind.ExploreDelay.Min)
	v.SetDefault("grind.explore_delay.max", grind.ExploreDelay.Max)
	v.SetDefault("grind.encounter_delay.min", grind.EncounterDelay.Min)
	v.SetDefault("grind.encounter_delay.max", grind.EncounterDelay.Max)
	v.SetDefault("grind.battle_cooldown", grind.BattleCooldown)
	v.SetDefault("grind.cleanup_delay", grind.CleanupDelay)
	v.SetDefault("grind.recovery_delay", grind.RecoveryDelay)
	v.SetDefault("grind.fault_recovery_delay", grind.FaultRecoveryDelay)
	v.SetDefault("grind.encounter_probability", grind.EncounterProbability)
	v.SetDefault("grind.win_probability", grind.WinProbability)
	v.SetDefault("grind.experience.min", grind.Experience.Min)
	v.SetDefault("grind.experience.max", grind.Experience.Max)
	v.SetDefault("grind.currency.min", grind.Currency.Min)
	v.SetDefault("grind.currency.max", grind.Currency.Max)
	v.SetDefault("grind.notify_timeout", grind.NotifyTimeout)

	v.SetDefault("archive.driver", string(ArchiveTOML))
	v.SetDefault("archive.path", "")

	v.SetDefault("http.listen", "")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func (c Config) archivePath() string {
	if c.Archive.Path != "" {
		return c.Archive.Path
	}

	switch c.Archive.Driver {
	case ArchiveSQLite:
		return filepath.Join(c.Dir, "sessions.db")
	case ArchiveTOML:
		return filepath.Join(c.Dir, "sessions.toml")
	default:
		return ""
	}
}

// SecretsDir is the directory of the file secret store.
func (c Config) SecretsDir() string {
	return filepath.Join(c.Dir, "secrets")
}

func (c Config) Validate() error {
	var errs []error

	if err := c.Grind.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("grind: %w", err))
	}

	switch c.Archive.Driver {
	case ArchiveTOML, ArchiveSQLite, ArchiveNone:
	default:
		errs = append(errs, fmt.Errorf("archive: unsupported driver %q", c.Archive.Driver))
	}

	if c.Telegram.PollTimeout < 0 {
		errs = append(errs, fmt.Errorf("telegram: poll_timeout %d is negative", c.Telegram.PollTimeout))
	}
	if c.Telegram.OperatorID < 0 {
		errs = append(errs, fmt.Errorf("telegram: operator_id %d is negative", c.Telegram.OperatorID))
	}

	if _, err := c.Log.level(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log: unsupported format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse level %q: %w", c.Level, err)
	}
	return level, nil
}

// NewLogger builds the process logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
