package service

import "context"

// Mailer delivers mail to a claimed identity. Implementations make no
// delivery guarantees; a nil return means the upstream server accepted
// the message, nothing more.
type Mailer interface {
	Send(ctx context.Context, to, subject, bodyText, bodyHTML string) error
}
