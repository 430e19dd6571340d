package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthExpired(t *testing.T) {
	assert.True(t, IsAuthExpired(NewAuthExpired("no session token")))
	assert.True(t, IsAuthExpired(fmt.Errorf("wrapped: %w", NewAuthExpired(""))))
	assert.False(t, IsAuthExpired(&AuthError{Message: "bad header"}))
	assert.False(t, IsAuthExpired(NewAPIError(http.StatusUnauthorized, "nope")))
	assert.False(t, IsAuthExpired(errors.New("network down")))
	assert.False(t, IsAuthExpired(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(NewAuthExpired("")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewAPIError(http.StatusNotFound, "ticket not found")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidation("missing field")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(errors.New("connection refused")))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "session expired", PublicMessage(NewAuthExpired("")))
	assert.Equal(t, "ticket not found", PublicMessage(NewAPIError(404, "ticket not found")))
	assert.Equal(t, "Not Found", PublicMessage(NewAPIError(404, "")))
	assert.Equal(t, "missing field", PublicMessage(NewValidation("missing field")))
	assert.Equal(t, "the helpdesk backend is unreachable", PublicMessage(errors.New("dial tcp: timeout")))
}

func TestAPIErrorFormatting(t *testing.T) {
	err := NewAPIError(http.StatusConflict, "already assigned")
	assert.EqualError(t, err, "already assigned (status 409)")

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}
