package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lodgeworks/gatehouse/pkg/httpx"
)

// sessionTokenHeader carries the opaque bearer token on every
// session-scoped endpoint.
const sessionTokenHeader = "X-Session-Token"

// decodeAndValidate parses a JSON body into dst and runs struct
// validation. On failure it writes the 400 envelope and reports false;
// the caller returns immediately.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", validationMessage(err))
		return false
	}
	return true
}

// validationMessage flattens validator errors into a single
// caller-facing sentence.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", jsonFieldName(fe.Field())))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", jsonFieldName(fe.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", jsonFieldName(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}

// jsonFieldName converts an exported struct field name to its
// snake_case JSON spelling.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
