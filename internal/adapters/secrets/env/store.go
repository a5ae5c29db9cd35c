package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
)

var ErrReadOnly = errors.New("environment secrets are read-only")

// Store reads secrets from environment variables named by the key.
type Store struct {
	lookup func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{lookup: os.LookupEnv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, ok := s.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("environment variable %s: %w", key, domain.ErrSecretNotFound)
	}

	return strings.TrimSpace(value), nil
}

func (s *Store) Put(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *Store) Delete(context.Context, string) error {
	return ErrReadOnly
}
