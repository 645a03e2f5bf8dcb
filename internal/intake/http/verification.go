package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/pkg/httpx"
	"github.com/lodgeworks/gatehouse/pkg/slogx"
)

// VerificationHandler owns the two handshake endpoints: requesting an
// emailed one-time code and redeeming it for a session token.
type VerificationHandler struct {
	Handshake *service.HandshakeService
	Validate  *validator.Validate
}

// HandleRequest handles POST /api/auth/request-email-verification
//
//	@Summary		Request an email verification code
//	@Description	Validates the email pair and math challenge answer, then emails a one-time code.
//	@Description	On delivery failure the verification session is kept, so a code from an earlier attempt may still be redeemable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VerificationRequest		true	"email pair and challenge answer"
//	@Success		200		{object}	VerificationResponse	"verification id and expiry"
//	@Failure		400		{object}	ErrorResponse			"Validation or challenge failure"
//	@Failure		500		{object}	ErrorResponse			"Email delivery failure"
//	@Router			/api/auth/request-email-verification [post].
func (h *VerificationHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req VerificationRequest
	if !decodeAndValidate(w, r, h.Validate, &req) {
		return
	}

	receipt, err := h.Handshake.RequestVerification(ctx, service.HandshakeRequest{
		Email:             req.Email,
		EmailConfirm:      req.EmailConfirm,
		ChallengeQuestion: req.MathQuestion,
		ChallengeAnswer:   req.MathAnswer,
		ClientIP:          httpx.ClientIP(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailMismatch):
			httpx.WriteError(w, http.StatusBadRequest, "validation_error", "Email addresses do not match")
		case errors.Is(err, service.ErrChallengeFailed):
			httpx.WriteError(w, http.StatusBadRequest, "security_check_failed", "Security verification failed")
		case errors.Is(err, service.ErrDeliveryFailed):
			log.Error("verification email delivery failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "delivery_failed",
				"Failed to send verification email; a code from an earlier request may still be valid")
		default:
			log.Error("failed to start verification", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, VerificationResponse{
		VerificationID: receipt.ID,
		Message:        receipt.Message,
		ExpiresAt:      receipt.ExpiresAt,
	})
}

// HandleVerify handles POST /api/auth/verify-mfa-token
//
//	@Summary		Redeem a one-time code
//	@Description	Checks the presented code against its verification session. A wrong code within the
//	@Description	attempt budget returns 200 with verified=false and may be retried; success returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VerifyTokenRequest	true	"verification id and code"
//	@Success		200		{object}	VerifyTokenResponse	"verification outcome"
//	@Failure		400		{object}	ErrorResponse		"Malformed request"
//	@Failure		404		{object}	ErrorResponse		"Unknown verification session"
//	@Failure		410		{object}	ErrorResponse		"Verification session expired"
//	@Failure		429		{object}	ErrorResponse		"Attempt budget exhausted"
//	@Failure		500		{object}	ErrorResponse		"Internal server error"
//	@Router			/api/auth/verify-mfa-token [post].
func (h *VerificationHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req VerifyTokenRequest
	if !decodeAndValidate(w, r, h.Validate, &req) {
		return
	}

	result, err := h.Handshake.VerifyCode(ctx, req.VerificationID, req.Token, httpx.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVerificationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Verification session not found")
		case errors.Is(err, service.ErrVerificationExpired):
			httpx.WriteError(w, http.StatusGone, "expired", "Verification session has expired; request a new code")
		case errors.Is(err, service.ErrTooManyAttempts):
			httpx.WriteError(w, http.StatusTooManyRequests, "too_many_attempts", "Too many verification attempts; request a new code")
		default:
			log.Error("failed to verify code", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, VerifyTokenResponse{
		Verified:     result.Verified,
		Message:      result.Message,
		SessionToken: result.SessionToken,
	})
}
