package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// transientRegisterMessage is the backend's marker for registration being
// momentarily unavailable; only this message triggers the retry loop.
const transientRegisterMessage = "Please attempt to login after a few minutes"

// friendlyRegisterMessage is surfaced once the retry budget is exhausted.
const friendlyRegisterMessage = "Registration is temporarily unavailable. Please try again in a few minutes."

// RegisterInput carries the signup profile. Data holds the free-form fields
// (graduation year, degree, hostel block, room number).
type RegisterInput struct {
	Name  string
	Email string
	Data  map[string]domain.ProfileField
}

// Me fetches the caller's profile.
func (c *Client) Me(ctx context.Context, token string) (*domain.Profile, error) {
	var resp struct {
		Status string         `json:"status"`
		User   domain.Profile `json:"user"`
	}
	if err := c.get(ctx, token, "/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register completes signup and returns the fresh session token the backend
// issues on success. Transient unavailability is retried with a fixed delay
// up to the configured budget; every other failure fails fast.
func (c *Client) Register(ctx context.Context, token string, input RegisterInput) (string, error) {
	if input.Name == "" || input.Email == "" {
		return "", errs.NewValidation("name and email are required")
	}
	data, err := json.Marshal(input.Data)
	if err != nil {
		return "", err
	}
	fields := map[string]string{
		"name":  input.Name,
		"email": input.Email,
		"data":  string(data),
	}

	for attempt := 0; ; attempt++ {
		newToken, err := c.registerOnce(ctx, token, fields)
		if err == nil {
			return newToken, nil
		}
		if !isTransientRegister(err) {
			return "", err
		}
		if attempt >= c.register.MaxRetries {
			return "", errs.NewAPIError(errs.HTTPStatus(err), friendlyRegisterMessage)
		}
		if err := sleepContext(ctx, c.register.RetryDelay()); err != nil {
			return "", err
		}
	}
}

func (c *Client) registerOnce(ctx context.Context, token string, fields map[string]string) (string, error) {
	var resp struct {
		Status        string `json:"status"`
		Authenticated bool   `json:"authenticated"`
		Token         string `json:"token"`
		Message       string `json:"message"`
	}
	if err := c.postForm(ctx, token, "/me/register", fields, &resp); err != nil {
		return "", err
	}
	if !resp.Authenticated || resp.Token == "" {
		if resp.Message == "" {
			resp.Message = "failed to register user"
		}
		// 2xx without a token: the upstream failed, not the caller.
		return "", errs.NewAPIError(http.StatusBadGateway, resp.Message)
	}
	return resp.Token, nil
}

func isTransientRegister(err error) bool {
	return errs.PublicMessage(err) == transientRegisterMessage
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
