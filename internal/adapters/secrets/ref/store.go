package ref

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/grindbot/internal/ports"
)

type Scheme string

const (
	SchemePass Scheme = "pass"
	SchemeFile Scheme = "file"
	SchemeEnv  Scheme = "env"
	// SchemeDefault is used for refs without a scheme prefix.
	SchemeDefault Scheme = ""
)

// Store routes secret refs such as pass://grindbot/token or env://BOT_TOKEN to
// the backend registered for their scheme.
type Store struct {
	backends map[Scheme]ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(backends map[Scheme]ports.SecretStore) *Store {
	copied := make(map[Scheme]ports.SecretStore, len(backends))
	for scheme, b := range backends {
		if b != nil {
			copied[scheme] = b
		}
	}
	return &Store{backends: copied}
}

// Parse splits ref into its scheme and backend key.
func Parse(ref string) (Scheme, string, error) {
	ref = strings.TrimSpace(ref)
	scheme, key, found := strings.Cut(ref, "://")
	if !found {
		scheme, key = "", ref
	}
	if key == "" {
		return "", "", fmt.Errorf("secret ref %q has no key", ref)
	}

	switch Scheme(scheme) {
	case SchemePass, SchemeFile, SchemeEnv, SchemeDefault:
		return Scheme(scheme), key, nil
	default:
		return "", "", fmt.Errorf("secret ref %q: unsupported scheme %q", ref, scheme)
	}
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	backend, key, err := s.route(ref)
	if err != nil {
		return "", err
	}
	return backend.Get(ctx, key)
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	backend, key, err := s.route(ref)
	if err != nil {
		return err
	}
	return backend.Put(ctx, key, value)
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	backend, key, err := s.route(ref)
	if err != nil {
		return err
	}
	return backend.Delete(ctx, key)
}

func (s *Store) route(ref string) (ports.SecretStore, string, error) {
	scheme, key, err := Parse(ref)
	if err != nil {
		return nil, "", err
	}

	backend, ok := s.backends[scheme]
	if !ok {
		return nil, "", errors.New("no secret backend for scheme " + schemeName(scheme))
	}

	return backend, key, nil
}

func schemeName(s Scheme) string {
	if s == SchemeDefault {
		return "default"
	}
	return string(s)
}
