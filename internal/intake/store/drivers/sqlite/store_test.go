package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "intake.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestVerificationSessionsRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	repo := st.VerificationSessions()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := domain.VerificationSession{
		ID:        "ver-1",
		Email:     "a@example.com",
		CodeHash:  "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		ClientIP:  "203.0.113.9",
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.Get(ctx, "ver-1")
	require.NoError(t, err)
	require.Equal(t, v.Email, got.Email)
	require.Equal(t, v.CodeHash, got.CodeHash)
	require.False(t, got.Verified)
	require.True(t, got.ExpiresAt.Equal(v.ExpiresAt))

	got, err = repo.IncrementAttempts(ctx, "ver-1")
	require.NoError(t, err)
	require.Equal(t, 1, got.Attempts)
	got, err = repo.IncrementAttempts(ctx, "ver-1")
	require.NoError(t, err)
	require.Equal(t, 2, got.Attempts)

	require.NoError(t, repo.MarkVerified(ctx, "ver-1"))
	got, err = repo.Get(ctx, "ver-1")
	require.NoError(t, err)
	require.True(t, got.Verified)

	require.NoError(t, repo.Delete(ctx, "ver-1"))
	_, err = repo.Get(ctx, "ver-1")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "ver-1"), store.ErrNotFound)
	_, err = repo.IncrementAttempts(ctx, "ver-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	repo := st.Sessions()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := domain.Session{
		TokenHash:    "hash-1",
		Email:        "a@example.com",
		ClientIP:     "203.0.113.9",
		CreatedAt:    now,
		ExpiresAt:    now.Add(2 * time.Hour),
		LastActivity: now,
	}
	require.NoError(t, repo.Create(ctx, s))

	touchAt := now.Add(5 * time.Minute)
	require.NoError(t, repo.Touch(ctx, "hash-1", touchAt))
	got, err := repo.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	require.True(t, got.LastActivity.Equal(touchAt))
	require.True(t, got.ExpiresAt.Equal(s.ExpiresAt))

	extendAt := now.Add(10 * time.Minute)
	newExpiry := extendAt.Add(2 * time.Hour)
	require.NoError(t, repo.Extend(ctx, "hash-1", newExpiry, extendAt))
	got, err = repo.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	require.True(t, got.ExpiresAt.Equal(newExpiry))

	require.NoError(t, repo.DeleteExpired(ctx, newExpiry.Add(time.Second)))
	_, err = repo.GetByTokenHash(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmissionsRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	repo := st.Submissions()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := domain.FormSubmission{
		ID:          "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Email:       "a@example.com",
		FullName:    "Alex Applicant",
		Phone:       "+61 4 0000 0000",
		MoveInDate:  "2026-04-01",
		Notes:       "ground floor preferred",
		ClientIP:    "203.0.113.9",
		SubmittedAt: now,
	}
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, f.FullName, got.FullName)
	require.Equal(t, f.Notes, got.Notes)
	require.True(t, got.SubmittedAt.Equal(now))

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}
