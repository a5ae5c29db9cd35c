package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/grindbot/internal/adapters/secrets/file"
	passstore "github.com/bnema/grindbot/internal/adapters/secrets/pass"
	"github.com/bnema/grindbot/internal/ports"
)

// Store tries each backend in order until one succeeds.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain has no backends")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, b := range backends {
		if b == nil {
			return nil, fmt.Errorf("secret store backend %d is nil", i)
		}
	}

	return &Store{backends: backends}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.each(ctx, "put", func(b ports.SecretStore) error {
		return b.Put(ctx, key, value)
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.each(ctx, "get", func(b ports.SecretStore) error {
		v, err := b.Get(ctx, key)
		if err == nil {
			value = v
		}
		return err
	})
	return value, err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.each(ctx, "delete", func(b ports.SecretStore) error {
		return b.Delete(ctx, key)
	})
}

// each stops at the first success or at a context error. The combined error
// keeps every backend failure reachable through errors.Is.
func (s *Store) each(ctx context.Context, op string, fn func(ports.SecretStore) error) error {
	var errs []error
	for i, b := range s.backends {
		err := fn(b)
		if err == nil {
			return nil
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d %s: %w", i, op, err))
		if ctx.Err() != nil {
			break
		}
	}

	return errors.Join(errs...)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
