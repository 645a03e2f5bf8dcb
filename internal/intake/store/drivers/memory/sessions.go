package memory

import (
	"context"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
)

type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) Create(ctx context.Context, sess domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[sess.TokenHash]; ok {
		return store.ErrAlreadyExists
	}
	r.s.sessions[sess.TokenHash] = sess
	return nil
}

func (r *sessionsRepo) GetByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[tokenHash]
	if !ok {
		return domain.Session{}, store.ErrNotFound
	}
	return sess, nil
}

func (r *sessionsRepo) Touch(ctx context.Context, tokenHash string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[tokenHash]
	if !ok {
		return store.ErrNotFound
	}
	sess.LastActivity = at
	r.s.sessions[tokenHash] = sess
	return nil
}

func (r *sessionsRepo) Extend(ctx context.Context, tokenHash string, expiresAt, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[tokenHash]
	if !ok {
		return store.ErrNotFound
	}
	sess.ExpiresAt = expiresAt
	sess.LastActivity = at
	r.s.sessions[tokenHash] = sess
	return nil
}

func (r *sessionsRepo) Delete(ctx context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[tokenHash]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.sessions, tokenHash)
	return nil
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, sess := range r.s.sessions {
		if sess.Expired(now) {
			delete(r.s.sessions, hash)
		}
	}
	return nil
}
