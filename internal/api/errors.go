package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

const upstreamUnavailableMessage = "AI service is temporarily unavailable"

// Response is the envelope used for error and plain acknowledgement bodies.
type Response struct {
	Success   bool   `json:"success" example:"false"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty" example:"User not found"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusForError maps the error taxonomy onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUpstream):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError logs err and writes the client-facing error. Only
// validation errors expose their text; upstream and internal failures get an
// opaque message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, l *slog.Logger, err error, notFoundMessage string) {
	status := StatusForError(err)
	var message string
	switch status {
	case http.StatusNotFound:
		message = notFoundMessage
		l.WarnContext(r.Context(), "Resource not found", slog.Any("error", err))
	case http.StatusBadRequest:
		message = validationMessage(err)
		l.WarnContext(r.Context(), "Validation failed", slog.Any("error", err))
	case http.StatusServiceUnavailable:
		message = upstreamUnavailableMessage
		l.ErrorContext(r.Context(), "Upstream failure", slog.Any("error", err))
	default:
		message = "Internal server error"
		l.ErrorContext(r.Context(), "Request failed", slog.Any("error", err))
	}
	ErrorResponse(w, r, status, message)
}

// validationMessage strips the sentinel prefix so clients see only the field
// problem ("name is required").
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, types.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(types.ErrValidation.Error())+2:]
	}
	return msg
}

// ParseUUIDParam parses a path value, classifying a malformed id as a
// validation error.
func ParseUUIDParam(name, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &paramError{name: name}
	}
	return id, nil
}

type paramError struct {
	name string
}

func (e *paramError) Error() string {
	return types.ErrValidation.Error() + ": invalid " + e.name
}

func (e *paramError) Unwrap() error {
	return types.ErrValidation
}
