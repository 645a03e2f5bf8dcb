package memory

import (
	"context"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
)

type verificationsRepo struct {
	s *Store
}

func (r *verificationsRepo) Create(ctx context.Context, v domain.VerificationSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.verifications[v.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.verifications[v.ID] = v
	return nil
}

func (r *verificationsRepo) Get(ctx context.Context, id string) (domain.VerificationSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.verifications[id]
	if !ok {
		return domain.VerificationSession{}, store.ErrNotFound
	}
	return v, nil
}

func (r *verificationsRepo) IncrementAttempts(ctx context.Context, id string) (domain.VerificationSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.verifications[id]
	if !ok {
		return domain.VerificationSession{}, store.ErrNotFound
	}
	v.Attempts++
	r.s.verifications[id] = v
	return v, nil
}

func (r *verificationsRepo) MarkVerified(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.verifications[id]
	if !ok {
		return store.ErrNotFound
	}
	v.Verified = true
	r.s.verifications[id] = v
	return nil
}

func (r *verificationsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.verifications[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.verifications, id)
	return nil
}

func (r *verificationsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, v := range r.s.verifications {
		if v.Expired(now) {
			delete(r.s.verifications, id)
		}
	}
	return nil
}
