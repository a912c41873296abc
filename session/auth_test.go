package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
	"storefront/store"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type brokenStore struct{ *store.InMemoryStore }

func (brokenStore) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func newTestAuth(kv domain.KeyValueStore) *Auth {
	clock := fixedClock{t: time.UnixMilli(1700000000123)}
	return NewAuthWithClock(kv, slog.New(slog.NewTextHandler(io.Discard, nil)), clock)
}

func TestLogin(t *testing.T) {
	kv := store.NewInMemoryStore()
	a := newTestAuth(kv)
	ctx := context.Background()

	u, err := a.Login(ctx, "jane.doe@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 1, Email: "jane.doe@example.com", Name: "jane.doe"}, u)
	assert.True(t, a.IsAuthenticated())

	raw, ok, _ := kv.Get(ctx, domain.UserKey)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":1,"email":"jane.doe@example.com","name":"jane.doe"}`, raw)
}

func TestLogin_RejectsEmptyInput(t *testing.T) {
	a := newTestAuth(store.NewInMemoryStore())
	ctx := context.Background()

	_, err := a.Login(ctx, "  ", "secret")
	assert.True(t, domain.IsInvalidCredentialsError(err))
	_, err = a.Login(ctx, "a@b.c", "")
	assert.True(t, domain.IsInvalidCredentialsError(err))
	assert.False(t, a.IsAuthenticated())
}

func TestRegister(t *testing.T) {
	a := newTestAuth(store.NewInMemoryStore())

	u, err := a.Register(context.Background(), "sam@example.com", "pw", "Sam")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), u.ID)
	assert.Equal(t, "Sam", u.Name)

	_, err = a.Register(context.Background(), "sam@example.com", "pw", " ")
	assert.True(t, domain.IsInvalidCredentialsError(err))
}

func TestInitializeAndLogout(t *testing.T) {
	kv := store.NewInMemoryStore()
	ctx := context.Background()
	_, err := newTestAuth(kv).Login(ctx, "kim@example.com", "pw")
	require.NoError(t, err)

	restored := newTestAuth(kv)
	require.NoError(t, restored.Initialize(ctx))
	u, ok := restored.User()
	require.True(t, ok)
	assert.Equal(t, "kim", u.Name)

	require.NoError(t, restored.Logout(ctx))
	assert.False(t, restored.IsAuthenticated())
	_, ok, _ = kv.Get(ctx, domain.UserKey)
	assert.False(t, ok)
}

func TestInitialize_MalformedUser(t *testing.T) {
	for _, payload := range []string{"not json", `"kim"`, `[1,2]`, `{"id":"x"}`} {
		kv := store.NewInMemoryStore()
		ctx := context.Background()
		require.NoError(t, kv.Set(ctx, domain.UserKey, payload))

		a := newTestAuth(kv)
		require.NoError(t, a.Initialize(ctx))
		assert.False(t, a.IsAuthenticated(), "payload %q", payload)
		_, ok, _ := kv.Get(ctx, domain.UserKey)
		assert.False(t, ok, "payload %q should be removed", payload)
	}
}

func TestLogin_WriteFailureKeepsSession(t *testing.T) {
	a := newTestAuth(brokenStore{store.NewInMemoryStore()})

	_, err := a.Login(context.Background(), "lee@example.com", "pw")
	assert.True(t, domain.IsPersistenceError(err))
	assert.True(t, a.IsAuthenticated())
}
