package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
	"github.com/lodgeworks/gatehouse/pkg/idx"
)

// FormService accepts accommodation applications from authenticated
// sessions. This is the one coupling with the auth core: the stated
// applicant email must equal the session's verified identity.
type FormService struct {
	Store    store.Store
	Sessions *SessionService
}

// FormRequest is the applicant-provided part of a submission.
type FormRequest struct {
	Email      string
	FullName   string
	Phone      string
	MoveInDate string
	Notes      string
}

// Submit authorizes the bearer token, enforces the email binding, and
// persists the submission. Returns the stored record.
func (s *FormService) Submit(
	ctx context.Context,
	sessionToken string,
	req FormRequest,
	clientIP string,
) (domain.FormSubmission, error) {
	sess, err := s.Sessions.Get(ctx, sessionToken)
	if err != nil {
		return domain.FormSubmission{}, err
	}

	if !strings.EqualFold(req.Email, sess.Email) {
		return domain.FormSubmission{}, ErrEmailBindingMismatch
	}

	sub := domain.FormSubmission{
		ID:          idx.New().String(),
		Email:       sess.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		MoveInDate:  req.MoveInDate,
		Notes:       req.Notes,
		ClientIP:    clientIP,
		SubmittedAt: s.Sessions.now(),
	}
	if err := s.Store.Submissions().Create(ctx, sub); err != nil {
		return domain.FormSubmission{}, fmt.Errorf("failed to store submission: %w", err)
	}

	return sub, nil
}
