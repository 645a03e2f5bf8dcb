package domain

import "time"

// FormSubmission is an accepted accommodation application. The stated
// email is always the identity of the session that submitted it; the
// binding is enforced before the record is created.
type FormSubmission struct {
	ID          string // ULID
	Email       string // equals the submitting session's email
	FullName    string
	Phone       string
	MoveInDate  string // as stated by the applicant, not interpreted
	Notes       string
	ClientIP    string
	SubmittedAt time.Time
}
