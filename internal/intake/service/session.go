package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/pkg/cryptox"
)

// DefaultSessionTTL is how long a session lives without an explicit
// extension. Reads refresh last_activity but never move the expiry.
const DefaultSessionTTL = 2 * time.Hour

// SessionService owns the authenticated-session lifecycle. Tokens are
// opaque 32-byte URL-safe strings; only their SHA-256 fingerprints
// reach the store.
type SessionService struct {
	Store store.Store
	TTL   time.Duration

	// Now is the clock; defaults to time.Now. Injectable for tests.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// Create mints a fresh session bound to email and returns the bearer
// token alongside the stored record. Token entropy makes collision
// checks unnecessary.
func (s *SessionService) Create(ctx context.Context, email, clientIP string) (string, domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()
	sess := domain.Session{
		TokenHash:    cryptox.FingerprintToken(token),
		Email:        email,
		ClientIP:     clientIP,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl()),
		LastActivity: now,
	}
	if err := s.Store.Sessions().Create(ctx, sess); err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	return token, sess, nil
}

// Get resolves a bearer token. An expired session is evicted on read
// and reported as ErrSessionNotFound; a live one gets its
// last_activity refreshed (the expiry is untouched).
func (s *SessionService) Get(ctx context.Context, token string) (domain.Session, error) {
	sessions := s.Store.Sessions()
	hash := cryptox.FingerprintToken(token)

	sess, err := sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, err
	}

	now := s.now()
	if sess.Expired(now) {
		_ = sessions.Delete(ctx, hash)
		return domain.Session{}, ErrSessionNotFound
	}

	if err := sessions.Touch(ctx, hash, now); err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, err
	}
	sess.LastActivity = now

	return sess, nil
}

// Invalidate removes a session. Reports whether it existed; an unknown
// token is not an error.
func (s *SessionService) Invalidate(ctx context.Context, token string) (bool, error) {
	err := s.Store.Sessions().Delete(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Extend resets the expiry to now+TTL. This is the only operation that
// moves expires_at after creation. Reports whether the session existed
// and was still live.
func (s *SessionService) Extend(ctx context.Context, token string) (bool, error) {
	sessions := s.Store.Sessions()
	hash := cryptox.FingerprintToken(token)

	sess, err := sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	now := s.now()
	if sess.Expired(now) {
		_ = sessions.Delete(ctx, hash)
		return false, nil
	}

	if err := sessions.Extend(ctx, hash, now.Add(s.ttl()), now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
