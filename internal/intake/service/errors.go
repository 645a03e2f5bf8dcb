package service

import "errors"

// Error taxonomy for the verification handshake. Everything here is a
// per-request condition; none of these is fatal to the process.
var (
	// ErrEmailMismatch: email and its confirmation field differ.
	ErrEmailMismatch = errors.New("email confirmation does not match")

	// ErrChallengeFailed: the math challenge answer was wrong or the
	// question text was malformed.
	ErrChallengeFailed = errors.New("security verification failed")

	// ErrDeliveryFailed: the one-time code email could not be sent. The
	// verification session is NOT rolled back; the caller is told the
	// code may already exist.
	ErrDeliveryFailed = errors.New("failed to send verification email")

	// ErrVerificationNotFound: no such verification session (including
	// ones already evicted for expiry or exhaustion).
	ErrVerificationNotFound = errors.New("verification session not found")

	// ErrVerificationExpired: the session was past its TTL; it has been
	// evicted and later lookups report not found.
	ErrVerificationExpired = errors.New("verification session has expired")

	// ErrTooManyAttempts: the attempt budget is exhausted; the session
	// has been evicted.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrSessionNotFound: no live session for the presented token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmailBindingMismatch: a form submission stated an email other
	// than the session identity it was submitted under.
	ErrEmailBindingMismatch = errors.New("form email does not match session identity")
)
