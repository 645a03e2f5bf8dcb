package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/internal/intake/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func newFormFixture(t *testing.T) (*service.FormService, *time.Time) {
	t.Helper()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &start

	st := memory.NewStore()
	sessions := &service.SessionService{
		Store: st,
		Now:   func() time.Time { return *clock },
	}
	return &service.FormService{Store: st, Sessions: sessions}, clock
}

func TestSubmitBindsToSessionIdentity(t *testing.T) {
	t.Parallel()

	svc, _ := newFormFixture(t)
	ctx := context.Background()

	token, _, err := svc.Sessions.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	sub, err := svc.Submit(ctx, token, service.FormRequest{
		Email:      "a@example.com",
		FullName:   "Alex Applicant",
		Phone:      "+61 4 0000 0000",
		MoveInDate: "2026-04-01",
	}, "203.0.113.9")
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	require.Equal(t, "a@example.com", sub.Email)

	got, err := svc.Store.Submissions().GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, "Alex Applicant", got.FullName)
}

func TestSubmitRejectsForeignEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newFormFixture(t)
	ctx := context.Background()

	token, _, err := svc.Sessions.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, token, service.FormRequest{
		Email:    "someone-else@example.com",
		FullName: "Alex Applicant",
	}, "203.0.113.9")
	require.ErrorIs(t, err, service.ErrEmailBindingMismatch)
}

func TestSubmitEmailComparisonIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _ := newFormFixture(t)
	ctx := context.Background()

	token, _, err := svc.Sessions.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	sub, err := svc.Submit(ctx, token, service.FormRequest{
		Email:    "A@Example.COM",
		FullName: "Alex Applicant",
	}, "203.0.113.9")
	require.NoError(t, err)
	// Stored under the session's canonical identity.
	require.Equal(t, "a@example.com", sub.Email)
}

func TestSubmitRequiresLiveSession(t *testing.T) {
	t.Parallel()

	svc, clock := newFormFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "no-such-token", service.FormRequest{
		Email: "a@example.com",
	}, "203.0.113.9")
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	token, _, err := svc.Sessions.Create(ctx, "a@example.com", "203.0.113.9")
	require.NoError(t, err)

	*clock = clock.Add(service.DefaultSessionTTL + time.Minute)

	_, err = svc.Submit(ctx, token, service.FormRequest{
		Email: "a@example.com",
	}, "203.0.113.9")
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}
