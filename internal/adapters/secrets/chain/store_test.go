package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/grindbot/internal/domain"
	portmocks "github.com/bnema/grindbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenKey = "grindbot/telegram_token"

func TestNewStoreValidatesBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore()
	require.ErrorIs(t, err, errNoBackends)

	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	require.ErrorContains(t, err, "backend 1 is nil")
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetJoinsErrorsWhenEveryBackendFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrSecretNotFound).Once()

	_, err = store.Get(context.Background(), tokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "backend 0 get: pass failed")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStorePutStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Put(mock.Anything, tokenKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "secret"))
}

func TestStoreDeleteFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDoesNotFallBackOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", context.Canceled).Once()

	_, err = store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, context.Canceled)
}
