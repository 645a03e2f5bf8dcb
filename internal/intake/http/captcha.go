package http

import (
	"net/http"
	"time"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/pkg/httpx"
	"github.com/lodgeworks/gatehouse/pkg/slogx"
)

// CaptchaHandler serves fresh math challenges. Challenges are
// stateless: the question text itself is the token the client echoes
// back during request-email-verification.
type CaptchaHandler struct {
	Challenge *service.MathChallengeService
}

// HandleGenerate handles GET /api/auth/generate-math-captcha
//
//	@Summary		Generate a math challenge
//	@Description	Returns a simple arithmetic question to be answered alongside the verification request.
//	@Description	The service keeps no record of issued questions; the client submits the question text back with its answer.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	ChallengeResponse	"question and issue timestamp"
//	@Failure		500	{object}	ErrorResponse		"Internal server error"
//	@Router			/api/auth/generate-math-captcha [get].
func (h *CaptchaHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	challenge, err := h.Challenge.Generate()
	if err != nil {
		log.Error("failed to generate challenge", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to generate challenge")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, ChallengeResponse{
		Question:  challenge.Question,
		Timestamp: time.Now().UTC(),
	})
}
