package store

import (
	"context"
	"errors"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory,
// sqlite) implement this. Every mutation touches a single key, so no
// transaction surface is exposed; drivers guarantee each call is
// atomic on its own.
type Store interface {
	VerificationSessions() VerificationSessions
	Sessions() Sessions
	Submissions() Submissions

	// ApplyMigrations prepares the backing schema. A no-op for the
	// memory driver.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

type VerificationSessions interface {
	// Create inserts a new verification session keyed by its ID.
	Create(ctx context.Context, v domain.VerificationSession) error

	// Get returns the session regardless of expiry; callers decide what
	// an expired record means and evict via Delete.
	Get(ctx context.Context, id string) (domain.VerificationSession, error)

	// IncrementAttempts bumps the attempt counter and returns the
	// updated session.
	IncrementAttempts(ctx context.Context, id string) (domain.VerificationSession, error)

	// MarkVerified sets the verified flag.
	MarkVerified(ctx context.Context, id string) error

	// Delete removes the session. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all sessions past their TTL (housekeeping).
	DeleteExpired(ctx context.Context, now time.Time) error
}

type Sessions interface {
	// Create inserts a new session keyed by its token fingerprint.
	Create(ctx context.Context, s domain.Session) error

	// GetByTokenHash returns the session regardless of expiry.
	GetByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// Touch updates last_activity without moving the expiry.
	Touch(ctx context.Context, tokenHash string, at time.Time) error

	// Extend advances the expiry and refreshes last_activity.
	Extend(ctx context.Context, tokenHash string, expiresAt, at time.Time) error

	// Delete removes the session. Returns ErrNotFound if absent.
	Delete(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their TTL (housekeeping).
	DeleteExpired(ctx context.Context, now time.Time) error
}

type Submissions interface {
	// Create inserts an accepted form submission.
	Create(ctx context.Context, f domain.FormSubmission) error

	// GetByID fetches a submission by its ULID.
	GetByID(ctx context.Context, id string) (domain.FormSubmission, error)
}
