package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/pkg/httpx"
	"github.com/lodgeworks/gatehouse/pkg/slogx"
)

// FormHandler accepts accommodation applications from authenticated
// sessions.
type FormHandler struct {
	Forms    *service.FormService
	Validate *validator.Validate
}

// HandleSubmit handles POST /api/form/submit
//
//	@Summary		Submit an accommodation application
//	@Description	Persists an application for the verified identity behind X-Session-Token.
//	@Description	The payload email must equal the session email; a mismatch is rejected.
//	@Tags			Form
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-Token	header		string				true	"opaque session token"
//	@Param			request			body		FormSubmitRequest	true	"application details"
//	@Success		201				{object}	FormSubmitResponse	"stored submission id"
//	@Failure		400				{object}	ErrorResponse		"Malformed request"
//	@Failure		401				{object}	ErrorResponse		"No live session for the token"
//	@Failure		403				{object}	ErrorResponse		"Payload email does not match the session identity"
//	@Failure		500				{object}	ErrorResponse		"Internal server error"
//	@Router			/api/form/submit [post].
func (h *FormHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.Header.Get(sessionTokenHeader)
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Missing session token")
		return
	}

	var req FormSubmitRequest
	if !decodeAndValidate(w, r, h.Validate, &req) {
		return
	}

	sub, err := h.Forms.Submit(ctx, token, service.FormRequest{
		Email:      req.Email,
		FullName:   req.FullName,
		Phone:      req.Phone,
		MoveInDate: req.MoveInDate,
		Notes:      req.Notes,
	}, httpx.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Session not found or expired")
		case errors.Is(err, service.ErrEmailBindingMismatch):
			httpx.WriteError(w, http.StatusForbidden, "email_binding_mismatch", "Form email does not match the verified session email")
		default:
			log.Error("failed to store submission", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, FormSubmitResponse{
		SubmissionID: sub.ID,
		Status:       "received",
		Message:      "Application received",
		Timestamp:    sub.SubmittedAt,
	})
}
