package domain

import "time"

// VerificationSession is the pre-authentication record tracking one
// emailed one-time-code sequence. It is created when a visitor requests
// email verification and is destroyed by expiry, by exhausting the
// attempt budget, or by successful promotion into a Session.
type VerificationSession struct {
	ID        string    // opaque server-generated token
	Email     string    // claimed identity being verified
	CodeHash  string    // Argon2id PHC hash of the emailed one-time code
	ClientIP  string    // captured at creation for audit
	Attempts  int       // verify calls made so far; only ever increases
	Verified  bool      // flips false -> true at most once
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its TTL at the given time.
func (v VerificationSession) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// VerificationReceipt is returned to the caller after a verification
// request has been accepted and the code dispatched.
type VerificationReceipt struct {
	ID        string
	Message   string
	ExpiresAt time.Time
}

// VerificationResult is the outcome of presenting a code. A wrong code
// within the attempt budget yields Verified=false with no session
// token; the caller may retry.
type VerificationResult struct {
	Verified     bool
	Message      string
	SessionToken string
}
