package domain

import "time"

// Session is the post-authentication record. The opaque bearer token
// handed to the client is never stored; stores index sessions by its
// SHA-256 fingerprint.
type Session struct {
	TokenHash    string // fingerprint of the bearer token
	Email        string // authenticated identity
	ClientIP     string // captured at creation
	CreatedAt    time.Time
	ExpiresAt    time.Time // fixed TTL; advanced only by an explicit extend
	LastActivity time.Time // refreshed on every successful read
}

// Expired reports whether the session is past its TTL at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
