package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError signals a missing or rejected session token. Expired is set
// when the caller should be sent back through login.
type AuthError struct {
	Message string
	Expired bool
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError carries a non-401 failure response from the helpdesk backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// ValidationError reports a request rejected before any backend call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewAuthExpired builds an AuthError that provokes a re-login redirect.
func NewAuthExpired(message string) error {
	if message == "" {
		message = "session expired"
	}
	return &AuthError{Message: message, Expired: true}
}

// NewAPIError builds an APIError from a backend response.
func NewAPIError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}

// NewValidation builds a ValidationError.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsAuthExpired reports whether err requires re-authentication.
func IsAuthExpired(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Expired
}

// HTTPStatus maps an error to the status the portal should answer with.
func HTTPStatus(err error) int {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// PublicMessage returns the message safe to surface inline to the user.
func PublicMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	return "the helpdesk backend is unreachable"
}
