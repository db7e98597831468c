package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favourop/portfolio-backend/internal/auth"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, ttl), mr
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Hour)

	principal := &auth.Principal{ID: "admin", Email: "admin@example.com", Name: "Admin User", Role: "admin"}
	token, err := store.Create(ctx, principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestStore_GetUnknownToken(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(ctx, "never-issued")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestStore_TokensExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	token, err := store.Create(ctx, &auth.Principal{ID: "admin", Email: "admin@example.com"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Hour)

	token, err := store.Create(ctx, &auth.Principal{ID: "admin", Email: "admin@example.com"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	// revoking again is a no-op
	assert.NoError(t, store.Delete(ctx, token))
}

func TestAuthorizer_Authenticate(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Hour)
	authorizer := NewAuthorizer(store)

	token, err := store.Create(ctx, &auth.Principal{ID: "admin", Email: "admin@example.com", Role: "admin"})
	require.NoError(t, err)

	principal, err := authorizer.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Role)

	_, err = authorizer.Authenticate(ctx, "bogus")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
