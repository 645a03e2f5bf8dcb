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

const (
	// DefaultCodeLength is the number of digits in an emailed one-time code.
	DefaultCodeLength = 6
	// DefaultVerificationTTL bounds how long a code stays redeemable.
	DefaultVerificationTTL = 15 * time.Minute
	// DefaultMaxAttempts is the verify-call budget per verification
	// session. The counter increments before the check, so the budget
	// admits exactly MaxAttempts wrong codes; the next call evicts.
	DefaultMaxAttempts = 5
)

// HandshakeRequest carries the inputs of the request-verification phase.
type HandshakeRequest struct {
	Email             string
	EmailConfirm      string
	ChallengeQuestion string
	ChallengeAnswer   int
	ClientIP          string
}

// HandshakeService orchestrates the verification handshake: math
// challenge, emailed one-time code, and promotion into an
// authenticated session.
type HandshakeService struct {
	Store     store.Store
	Challenge *MathChallengeService
	Mailer    Mailer
	Sessions  *SessionService

	CodeLength      int
	VerificationTTL time.Duration
	MaxAttempts     int

	// Now is the clock; defaults to time.Now. Injectable for tests.
	Now func() time.Time
}

func (s *HandshakeService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *HandshakeService) codeLength() int {
	if s.CodeLength > 0 {
		return s.CodeLength
	}
	return DefaultCodeLength
}

func (s *HandshakeService) verificationTTL() time.Duration {
	if s.VerificationTTL > 0 {
		return s.VerificationTTL
	}
	return DefaultVerificationTTL
}

func (s *HandshakeService) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

// RequestVerification validates the claimed email and challenge
// answer, persists a new verification session, and emails the one-time
// code. The session survives a delivery failure on purpose: the caller
// is told the code may already exist so they can retry verification
// rather than silently losing state.
func (s *HandshakeService) RequestVerification(
	ctx context.Context,
	req HandshakeRequest,
) (domain.VerificationReceipt, error) {
	if req.Email != req.EmailConfirm {
		return domain.VerificationReceipt{}, ErrEmailMismatch
	}

	if !s.Challenge.Verify(req.ChallengeQuestion, req.ChallengeAnswer) {
		return domain.VerificationReceipt{}, ErrChallengeFailed
	}

	code, err := cryptox.GenerateDigitCode(s.codeLength())
	if err != nil {
		return domain.VerificationReceipt{}, fmt.Errorf("failed to generate code: %w", err)
	}
	codeHash, err := cryptox.HashCode(code)
	if err != nil {
		return domain.VerificationReceipt{}, fmt.Errorf("failed to hash code: %w", err)
	}

	now := s.now()
	v := domain.VerificationSession{
		ID:        cryptox.MustGenerateToken(cryptox.TokenSize256),
		Email:     req.Email,
		CodeHash:  codeHash,
		ClientIP:  req.ClientIP,
		CreatedAt: now,
		ExpiresAt: now.Add(s.verificationTTL()),
	}
	if err := s.Store.VerificationSessions().Create(ctx, v); err != nil {
		return domain.VerificationReceipt{}, fmt.Errorf("failed to store verification session: %w", err)
	}

	subject := "Your verification code"
	bodyText := fmt.Sprintf(
		"Your verification code is: %s\n\nIt expires in %d minutes. "+
			"If you did not request this email, please ignore it.\n",
		code, int(s.verificationTTL().Minutes()),
	)
	if err := s.Mailer.Send(ctx, req.Email, subject, bodyText, ""); err != nil {
		// State stays persisted; the recipient may already hold a code
		// from a previous attempt.
		return domain.VerificationReceipt{}, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return domain.VerificationReceipt{
		ID:        v.ID,
		Message:   fmt.Sprintf("Verification code sent to %s", req.Email),
		ExpiresAt: v.ExpiresAt,
	}, nil
}

// VerifyCode checks a presented one-time code against a verification
// session and, on success, promotes it into an authenticated session.
// The verification session is deleted on promotion, so the same code
// can never mint a second session token.
func (s *HandshakeService) VerifyCode(
	ctx context.Context,
	verificationID, presentedCode, clientIP string,
) (domain.VerificationResult, error) {
	verifications := s.Store.VerificationSessions()

	v, err := verifications.Get(ctx, verificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.VerificationResult{}, ErrVerificationNotFound
		}
		return domain.VerificationResult{}, err
	}

	now := s.now()
	if v.Expired(now) {
		_ = verifications.Delete(ctx, verificationID)
		return domain.VerificationResult{}, ErrVerificationExpired
	}

	// The increment lands before the limit check: the call that pushes
	// the counter past the budget is the one that evicts, whatever code
	// it carried.
	v, err = verifications.IncrementAttempts(ctx, verificationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.VerificationResult{}, ErrVerificationNotFound
		}
		return domain.VerificationResult{}, err
	}
	if v.Attempts > s.maxAttempts() {
		_ = verifications.Delete(ctx, verificationID)
		return domain.VerificationResult{}, ErrTooManyAttempts
	}

	if err := cryptox.VerifyCode(presentedCode, v.CodeHash); err != nil {
		if errors.Is(err, cryptox.ErrCodeMismatch) {
			// Session is kept; the caller may retry within the budget.
			return domain.VerificationResult{
				Verified: false,
				Message:  "Invalid verification code",
			}, nil
		}
		return domain.VerificationResult{}, fmt.Errorf("failed to check code: %w", err)
	}

	if err := verifications.MarkVerified(ctx, verificationID); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("failed to mark verified: %w", err)
	}

	token, _, err := s.Sessions.Create(ctx, v.Email, clientIP)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	// Promotion is terminal for the verification session.
	_ = verifications.Delete(ctx, verificationID)

	return domain.VerificationResult{
		Verified:     true,
		Message:      "Email verification successful",
		SessionToken: token,
	}, nil
}
