package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/grindbot/internal/domain"
)

type DurationRange struct {
	Min time.Duration `mapstructure:"min"`
	Max time.Duration `mapstructure:"max"`
}

func (r DurationRange) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("%s min %s is negative", name, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s min %s exceeds max %s", name, r.Min, r.Max)
	}
	return nil
}

// MarshalYAML renders the bounds as duration strings.
func (r DurationRange) MarshalYAML() (any, error) {
	return map[string]string{"min": r.Min.String(), "max": r.Max.String()}, nil
}

// GrindConfig holds every tunable of the grind loop.
type GrindConfig struct {
	CheckInterval        time.Duration `mapstructure:"check_interval"`
	CheckJitter          time.Duration `mapstructure:"check_jitter"`
	MaxRetries           int           `mapstructure:"max_retries"`
	ExploreDelay         DurationRange `mapstructure:"explore_delay"`
	EncounterDelay       DurationRange `mapstructure:"encounter_delay"`
	BattleCooldown       time.Duration `mapstructure:"battle_cooldown"`
	CleanupDelay         time.Duration `mapstructure:"cleanup_delay"`
	RecoveryDelay        time.Duration `mapstructure:"recovery_delay"`
	FaultRecoveryDelay   time.Duration `mapstructure:"fault_recovery_delay"`
	EncounterProbability float64       `mapstructure:"encounter_probability"`
	WinProbability       float64       `mapstructure:"win_probability"`
	Experience           domain.Range  `mapstructure:"experience"`
	Currency             domain.Range  `mapstructure:"currency"`
	NotifyTimeout        time.Duration `mapstructure:"notify_timeout"`
}

func DefaultGrindConfig() GrindConfig {
	return GrindConfig{
		CheckInterval:        15 * time.Second,
		CheckJitter:          3 * time.Second,
		MaxRetries:           5,
		ExploreDelay:         DurationRange{Min: 2 * time.Second, Max: 4 * time.Second},
		EncounterDelay:       DurationRange{Min: 3 * time.Second, Max: 6 * time.Second},
		BattleCooldown:       8 * time.Second,
		CleanupDelay:         time.Second,
		RecoveryDelay:        10 * time.Second,
		FaultRecoveryDelay:   15 * time.Second,
		EncounterProbability: 0.65,
		WinProbability:       0.90,
		Experience:           domain.Range{Min: 120, Max: 160},
		Currency:             domain.Range{Min: 38, Max: 48},
		NotifyTimeout:        10 * time.Second,
	}
}

func (c GrindConfig) Validate() error {
	var errs []error

	for name, d := range map[string]time.Duration{
		"check_interval":       c.CheckInterval,
		"check_jitter":         c.CheckJitter,
		"battle_cooldown":      c.BattleCooldown,
		"cleanup_delay":        c.CleanupDelay,
		"recovery_delay":       c.RecoveryDelay,
		"fault_recovery_delay": c.FaultRecoveryDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s %s is negative", name, d))
		}
	}
	if c.CheckJitter > c.CheckInterval {
		errs = append(errs, fmt.Errorf("check_jitter %s exceeds check_interval %s", c.CheckJitter, c.CheckInterval))
	}
	if c.NotifyTimeout <= 0 {
		errs = append(errs, fmt.Errorf("notify_timeout must be positive, got %s", c.NotifyTimeout))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max_retries %d is negative", c.MaxRetries))
	}
	if err := c.ExploreDelay.validate("explore_delay"); err != nil {
		errs = append(errs, err)
	}
	if err := c.EncounterDelay.validate("encounter_delay"); err != nil {
		errs = append(errs, err)
	}
	if !validProbability(c.EncounterProbability) {
		errs = append(errs, fmt.Errorf("encounter_probability %v outside [0,1]", c.EncounterProbability))
	}
	if !validProbability(c.WinProbability) {
		errs = append(errs, fmt.Errorf("win_probability %v outside [0,1]", c.WinProbability))
	}
	if err := c.Experience.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("experience: %w", err))
	}
	if err := c.Currency.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("currency: %w", err))
	}

	return errors.Join(errs...)
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

type grindConfigYAML struct {
	CheckInterval        string        `yaml:"check_interval"`
	CheckJitter          string        `yaml:"check_jitter"`
	MaxRetries           int           `yaml:"max_retries"`
	ExploreDelay         DurationRange `yaml:"explore_delay"`
	EncounterDelay       DurationRange `yaml:"encounter_delay"`
	BattleCooldown       string        `yaml:"battle_cooldown"`
	CleanupDelay         string        `yaml:"cleanup_delay"`
	RecoveryDelay        string        `yaml:"recovery_delay"`
	FaultRecoveryDelay   string        `yaml:"fault_recovery_delay"`
	EncounterProbability float64       `yaml:"encounter_probability"`
	WinProbability       float64       `yaml:"win_probability"`
	Experience           domain.Range  `yaml:"experience"`
	Currency             domain.Range  `yaml:"currency"`
	NotifyTimeout        string        `yaml:"notify_timeout"`
}

// MarshalYAML writes durations the way the config file spells them.
func (c GrindConfig) MarshalYAML() (any, error) {
	return grindConfigYAML{
		CheckInterval:        c.CheckInterval.String(),
		CheckJitter:          c.CheckJitter.String(),
		MaxRetries:           c.MaxRetries,
		ExploreDelay:         c.ExploreDelay,
		EncounterDelay:       c.EncounterDelay,
		BattleCooldown:       c.BattleCooldown.String(),
		CleanupDelay:         c.CleanupDelay.String(),
		RecoveryDelay:        c.RecoveryDelay.String(),
		FaultRecoveryDelay:   c.FaultRecoveryDelay.String(),
		EncounterProbability: c.EncounterProbability,
		WinProbability:       c.WinProbability,
		Experience:           c.Experience,
		Currency:             c.Currency,
		NotifyTimeout:        c.NotifyTimeout.String(),
	}, nil
}
