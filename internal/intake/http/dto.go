package http

import "time"

// ErrorResponse is the JSON error envelope for every non-2xx reply.
type ErrorResponse struct {
	Error            string `json:"error" example:"validation_error"`
	ErrorDescription string `json:"error_description" example:"Email addresses do not match"`
}

// ChallengeResponse carries a freshly generated math challenge.
type ChallengeResponse struct {
	Question  string    `json:"question" example:"What is 5 + 7?"`
	Timestamp time.Time `json:"timestamp"`
}

// VerificationRequest starts the email verification handshake.
type VerificationRequest struct {
	Email        string `json:"email" validate:"required,email" example:"tenant@example.com"`
	EmailConfirm string `json:"email_confirm" validate:"required,email" example:"tenant@example.com"`
	MathQuestion string `json:"math_question" validate:"required" example:"What is 5 + 7?"`
	MathAnswer   int    `json:"math_answer" example:"12"`
}

// VerificationResponse acknowledges a stored verification session.
type VerificationResponse struct {
	VerificationID string    `json:"verification_id"`
	Message        string    `json:"message" example:"Verification code sent to tenant@example.com"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// VerifyTokenRequest presents a one-time code for redemption.
type VerifyTokenRequest struct {
	VerificationID string `json:"verification_id" validate:"required"`
	Token          string `json:"token" validate:"required" example:"123456"`
}

// VerifyTokenResponse reports the outcome of a code redemption. A
// wrong code within the attempt budget is a 200 with verified=false;
// session_token is present only when verified is true.
type VerifyTokenResponse struct {
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
	SessionToken string `json:"session_token,omitempty"`
}

// SessionStatusResponse describes the session behind X-Session-Token.
// An absent, unknown, or expired token yields authenticated=false, not
// an error status.
type SessionStatusResponse struct {
	Authenticated bool       `json:"authenticated"`
	Email         string     `json:"email,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// SessionExtendResponse acknowledges a session lifetime extension.
type SessionExtendResponse struct {
	Message   string    `json:"message" example:"Session extended"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormSubmitRequest is an accommodation application payload. Email
// must match the session identity or the submission is rejected.
type FormSubmitRequest struct {
	Email      string `json:"email" validate:"required,email" example:"tenant@example.com"`
	FullName   string `json:"full_name" validate:"required" example:"Alex Tenant"`
	Phone      string `json:"phone" validate:"required" example:"+61 400 000 000"`
	MoveInDate string `json:"move_in_date" validate:"required" example:"2026-10-01"`
	Notes      string `json:"notes"`
}

// FormSubmitResponse acknowledges a persisted submission.
type FormSubmitResponse struct {
	SubmissionID string    `json:"submission_id"`
	Status       string    `json:"status" example:"received"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// HealthChecks itemises dependency probes for /readyz.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}

// HealthResponse is shared by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
