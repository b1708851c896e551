package apperr

import (
	"errors"
	"net/http"
)

// Error kinds shared by every domain.
// Domain errors wrap one of these so the HTTP layer can map them without
// knowing the domain.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
)

// Error is a domain error carrying a kind and a client-facing message
type Error struct {
	Kind    error
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is(err, apperr.ErrNotFound) match any domain error of that kind
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation builds a ValidationFailed error with per-field details
func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: ErrValidation, Message: message, Details: details}
}

// HTTPStatus converts an error to its HTTP status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message of err.
// Errors without a kind never leak their text.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// Details returns per-field details attached to a validation error, if any
func Details(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		return appErr.Details
	}
	return nil
}
