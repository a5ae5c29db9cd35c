package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) validateTimes() error {
	for _, entry := range s.Sessions {
		if _, err := fromSchema(entry); err != nil {
			return err
		}
	}

	return nil
}

type sessionSchema struct {
	ID         string        `toml:"id"`
	StartedAt  string        `toml:"started_at"`
	EndedAt    string        `toml:"ended_at"`
	StopReason string        `toml:"stop_reason"`
	Cycles     int           `toml:"cycles"`
	Errors     int           `toml:"errors"`
	Battles    battlesSchema `toml:"battles"`
	Rewards    rewardsSchema `toml:"rewards,omitempty"`
}

type battlesSchema struct {
	Won  int `toml:"won"`
	Lost int `toml:"lost"`
}

type rewardsSchema struct {
	Experience int `toml:"experience"`
	Currency   int `toml:"currency"`
}
