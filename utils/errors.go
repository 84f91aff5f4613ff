package utils

import (
	"errors"
	"net/http"
)

// Outcome taxonomy for the persistence and authorization layer. These are the
// only errors the engine and ownership resolver return for expected
// conditions; anything else is an unexpected store failure wrapped by the
// caller.
var (
	// ErrNotFound covers both zero matches and ambiguous matches on
	// id-scoped lookups.
	ErrNotFound = errors.New("not_found")

	// ErrUnauthorized covers a foreign owner, a missing resource during
	// authorization, and a broken ownership chain. Callers must not let
	// clients distinguish it from ErrNotFound.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is a uniqueness or integrity constraint violation on write.
	ErrConflict = errors.New("conflict")

	// ErrInternal is an unexpected persistence failure.
	ErrInternal = errors.New("internal_error")
)

// Domain-level errors used by the service layer.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailExists        = errors.New("email_exists")
	ErrInactiveUser       = errors.New("inactive_user")
	ErrInvalidToken       = errors.New("invalid_token")
)

// AppError carries a status code and public error code from services up to
// controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
