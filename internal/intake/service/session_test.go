package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*service.SessionService, *time.Time) {
	t.Helper()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &start

	svc := &service.SessionService{
		Store: memory.NewStore(),
		Now:   func() time.Time { return *clock },
	}
	return svc, clock
}

func TestSessionCreateAndGet(t *testing.T) {
	t.Parallel()

	svc, clock := newSessionFixture(t)
	ctx := context.Background()

	token, sess, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "a@example.com", sess.Email)
	require.Equal(t, clock.Add(service.DefaultSessionTTL), sess.ExpiresAt)

	got, err := svc.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", got.Email)
}

func TestSessionGetRefreshesActivityNotExpiry(t *testing.T) {
	t.Parallel()

	svc, clock := newSessionFixture(t)
	ctx := context.Background()

	token, created, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Minute)

	got, err := svc.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, *clock, got.LastActivity)
	require.Equal(t, created.ExpiresAt, got.ExpiresAt, "read must not slide the expiry")
}

func TestSessionExpiryOnRead(t *testing.T) {
	t.Parallel()

	svc, clock := newSessionFixture(t)
	ctx := context.Background()

	token, _, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	*clock = clock.Add(service.DefaultSessionTTL + time.Minute)

	_, err = svc.Get(ctx, token)
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	// The expired record was evicted; rolling the clock back does not
	// bring it back.
	*clock = clock.Add(-time.Hour)
	_, err = svc.Get(ctx, token)
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionInvalidate(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	token, _, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	existed, err := svc.Invalidate(ctx, token)
	require.NoError(t, err)
	require.True(t, existed)

	_, err = svc.Get(ctx, token)
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	existed, err = svc.Invalidate(ctx, "unknown-token")
	require.NoError(t, err)
	require.False(t, existed)
}

func TestSessionExtend(t *testing.T) {
	t.Parallel()

	svc, clock := newSessionFixture(t)
	ctx := context.Background()

	token, created, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	*clock = clock.Add(time.Hour)

	ok, err := svc.Extend(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, clock.Add(service.DefaultSessionTTL), got.ExpiresAt)
	require.True(t, got.ExpiresAt.After(created.ExpiresAt))

	t.Run("extend on expired session fails and evicts", func(t *testing.T) {
		*clock = clock.Add(service.DefaultSessionTTL + time.Minute)

		ok, err := svc.Extend(ctx, token)
		require.NoError(t, err)
		require.False(t, ok)

		_, err = svc.Get(ctx, token)
		require.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("extend on unknown token", func(t *testing.T) {
		ok, err := svc.Extend(ctx, "unknown-token")
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestSessionTokenBindsSingleEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	tokenA, _, err := svc.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)
	tokenB, _, err := svc.Create(ctx, "b@example.com", "203.0.113.9")
	require.NoError(t, err)
	require.NotEqual(t, tokenA, tokenB)

	gotA, err := svc.Get(ctx, tokenA)
	require.NoError(t, err)
	gotB, err := svc.Get(ctx, tokenB)
	require.NoError(t, err)

	require.Equal(t, "a@example.com", gotA.Email)
	require.Equal(t, "b@example.com", gotB.Email)
}
