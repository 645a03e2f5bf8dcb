package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestVerificationSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := memory.NewStore()
	repo := st.VerificationSessions()

	v := domain.VerificationSession{
		ID:        "ver-1",
		Email:     "a@example.com",
		CodeHash:  "hash",
		ClientIP:  "10.0.0.1",
		CreatedAt: base,
		ExpiresAt: base.Add(15 * time.Minute),
	}
	require.NoError(t, repo.Create(ctx, v))
	require.ErrorIs(t, repo.Create(ctx, v), store.ErrAlreadyExists)

	got, err := repo.Get(ctx, "ver-1")
	require.NoError(t, err)
	require.Equal(t, v, got)

	t.Run("attempts increment monotonically", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			got, err := repo.IncrementAttempts(ctx, "ver-1")
			require.NoError(t, err)
			require.Equal(t, want, got.Attempts)
		}
	})

	t.Run("mark verified", func(t *testing.T) {
		require.NoError(t, repo.MarkVerified(ctx, "ver-1"))
		got, err := repo.Get(ctx, "ver-1")
		require.NoError(t, err)
		require.True(t, got.Verified)
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "ver-1"))
		_, err := repo.Get(ctx, "ver-1")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, repo.Delete(ctx, "ver-1"), store.ErrNotFound)
	})

	t.Run("delete expired keeps live records", func(t *testing.T) {
		live := v
		live.ID = "ver-live"
		live.ExpiresAt = base.Add(time.Hour)
		dead := v
		dead.ID = "ver-dead"
		dead.ExpiresAt = base.Add(-time.Minute)

		require.NoError(t, repo.Create(ctx, live))
		require.NoError(t, repo.Create(ctx, dead))
		require.NoError(t, repo.DeleteExpired(ctx, base))

		_, err := repo.Get(ctx, "ver-dead")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = repo.Get(ctx, "ver-live")
		require.NoError(t, err)
	})
}

func TestSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := memory.NewStore()
	repo := st.Sessions()

	sess := domain.Session{
		TokenHash:    "hash-1",
		Email:        "a@example.com",
		ClientIP:     "10.0.0.1",
		CreatedAt:    base,
		ExpiresAt:    base.Add(2 * time.Hour),
		LastActivity: base,
	}
	require.NoError(t, repo.Create(ctx, sess))

	t.Run("touch moves last_activity only", func(t *testing.T) {
		at := base.Add(10 * time.Minute)
		require.NoError(t, repo.Touch(ctx, "hash-1", at))

		got, err := repo.GetByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
		require.Equal(t, at, got.LastActivity)
		require.Equal(t, base.Add(2*time.Hour), got.ExpiresAt)
	})

	t.Run("extend moves expiry", func(t *testing.T) {
		at := base.Add(20 * time.Minute)
		expiry := at.Add(2 * time.Hour)
		require.NoError(t, repo.Extend(ctx, "hash-1", expiry, at))

		got, err := repo.GetByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
		require.Equal(t, expiry, got.ExpiresAt)
		require.Equal(t, at, got.LastActivity)
	})

	t.Run("delete unknown is not found", func(t *testing.T) {
		require.ErrorIs(t, repo.Delete(ctx, "missing"), store.ErrNotFound)
	})

	t.Run("delete expired", func(t *testing.T) {
		dead := sess
		dead.TokenHash = "hash-dead"
		dead.ExpiresAt = base.Add(-time.Second)
		require.NoError(t, repo.Create(ctx, dead))

		require.NoError(t, repo.DeleteExpired(ctx, base))
		_, err := repo.GetByTokenHash(ctx, "hash-dead")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = repo.GetByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
	})
}

func TestSubmissions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := memory.NewStore()
	repo := st.Submissions()

	f := domain.FormSubmission{
		ID:          "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Email:       "a@example.com",
		FullName:    "Alex Applicant",
		SubmittedAt: base,
	}
	require.NoError(t, repo.Create(ctx, f))
	require.ErrorIs(t, repo.Create(ctx, f), store.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, f, got)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}
