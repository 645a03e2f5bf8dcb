package memory

import (
	"context"
	"sync"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
)

// Store is the in-process driver: mutex-guarded maps, no persistence.
// It matches the deployment model of a single-worker web service;
// running multiple processes against it silently partitions session
// visibility, which is why the sqlite driver exists as a swap-in.
type Store struct {
	mu            sync.Mutex
	verifications map[string]domain.VerificationSession
	sessions      map[string]domain.Session
	submissions   map[string]domain.FormSubmission
}

func NewStore() *Store {
	return &Store{
		verifications: make(map[string]domain.VerificationSession),
		sessions:      make(map[string]domain.Session),
		submissions:   make(map[string]domain.FormSubmission),
	}
}

func (s *Store) VerificationSessions() store.VerificationSessions {
	return &verificationsRepo{s: s}
}

func (s *Store) Sessions() store.Sessions { return &sessionsRepo{s: s} }

func (s *Store) Submissions() store.Submissions { return &submissionsRepo{s: s} }

func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }
