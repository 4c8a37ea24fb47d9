package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abarros/arc-assessment/internal/pdf"
	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAssessmentIncomplete indicates the report was requested before every
// required section was finished.
type ErrAssessmentIncomplete struct {
	ResumeStep string
}

func (e *ErrAssessmentIncomplete) Error() string {
	return fmt.Sprintf("assessment incomplete: next step is %s", e.ResumeStep)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Renderer failures map to distinct gateway statuses so clients can tell
// "service down" from "render crashed" from "render hung".
func HTTPStatus(err error) int {
	var offline *pdf.OfflineError
	var timeout *pdf.TimeoutError
	var render *pdf.RenderError
	var startup *pdf.StartupError
	switch {
	case errors.As(err, &offline), errors.As(err, &startup):
		return http.StatusServiceUnavailable
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &render):
		return http.StatusBadGateway
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAssessmentIncomplete:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
