package http

import (
	"errors"
	"net/http"

	"github.com/lodgeworks/gatehouse/internal/intake/service"
	"github.com/lodgeworks/gatehouse/pkg/httpx"
	"github.com/lodgeworks/gatehouse/pkg/slogx"
)

// SessionHandler owns the session lifecycle endpoints. All three read
// the bearer token from the X-Session-Token header.
type SessionHandler struct {
	Sessions *service.SessionService
}

// HandleStatus handles GET /api/auth/session/status
//
//	@Summary		Check session status
//	@Description	Reports whether the presented token maps to a live session. A missing, unknown,
//	@Description	or expired token yields authenticated=false rather than an error status.
//	@Tags			Session
//	@Produce		json
//	@Param			X-Session-Token	header		string	false	"opaque session token"
//	@Success		200				{object}	SessionStatusResponse
//	@Failure		500				{object}	ErrorResponse	"Internal server error"
//	@Router			/api/auth/session/status [get].
func (h *SessionHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	httpx.NoCache(w)

	token := r.Header.Get(sessionTokenHeader)
	if token == "" {
		httpx.WriteJSON(w, http.StatusOK, SessionStatusResponse{Authenticated: false})
		return
	}

	sess, err := h.Sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			httpx.WriteJSON(w, http.StatusOK, SessionStatusResponse{Authenticated: false})
			return
		}
		log.Error("failed to resolve session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SessionStatusResponse{
		Authenticated: true,
		Email:         sess.Email,
		ExpiresAt:     &sess.ExpiresAt,
	})
}

// HandleExtend handles POST /api/auth/session/extend
//
//	@Summary		Extend a session
//	@Description	Resets the session expiry to a full lifetime from now. This is the only
//	@Description	operation that moves the expiry; ordinary reads never slide it.
//	@Tags			Session
//	@Produce		json
//	@Param			X-Session-Token	header		string	true	"opaque session token"
//	@Success		200				{object}	SessionExtendResponse
//	@Failure		401				{object}	ErrorResponse	"No live session for the token"
//	@Failure		500				{object}	ErrorResponse	"Internal server error"
//	@Router			/api/auth/session/extend [post].
func (h *SessionHandler) HandleExtend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.Header.Get(sessionTokenHeader)
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Missing session token")
		return
	}

	ok, err := h.Sessions.Extend(ctx, token)
	if err != nil {
		log.Error("failed to extend session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		return
	}
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Session not found or expired")
		return
	}

	sess, err := h.Sessions.Get(ctx, token)
	if err != nil {
		log.Error("failed to reload extended session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, SessionExtendResponse{
		Message:   "Session extended",
		ExpiresAt: sess.ExpiresAt,
	})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Invalidates the presented session token. Logging out an unknown or already
//	@Description	expired token succeeds; the operation is idempotent.
//	@Tags			Session
//	@Produce		json
//	@Param			X-Session-Token	header		string	false	"opaque session token"
//	@Success		200				{object}	MessageResponse
//	@Failure		500				{object}	ErrorResponse	"Internal server error"
//	@Router			/api/auth/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if token := r.Header.Get(sessionTokenHeader); token != "" {
		if _, err := h.Sessions.Invalidate(ctx, token); err != nil {
			log.Error("failed to invalidate session", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
			return
		}
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}
