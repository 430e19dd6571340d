package backend

import (
	"context"
	"strconv"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// CreateSeverityInput is the payload for defining a new severity.
type CreateSeverityInput struct {
	Name  string
	Level int
	Note  string
}

// CreateStaffInput promotes an existing user to staff, identified by either
// email or user id.
type CreateStaffInput struct {
	Email      string
	UserID     string
	IsSysAdmin bool
}

// ListStaff fetches the staff roster for assignee selection and settings.
func (c *Client) ListStaff(ctx context.Context, token string) ([]domain.StaffMember, error) {
	var resp struct {
		Status string               `json:"status"`
		Staff  []domain.StaffMember `json:"staff"`
	}
	if err := c.get(ctx, token, "/admin/staff", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Staff, nil
}

// CreateStaff adds a staff member. Exactly one of email or user id must be
// given.
func (c *Client) CreateStaff(ctx context.Context, token string, input CreateStaffInput) (*domain.StaffMember, error) {
	if (input.Email == "") == (input.UserID == "") {
		return nil, errs.NewValidation("exactly one of email or user_id must be provided")
	}
	fields := map[string]string{
		"is_sys_admin": strconv.FormatBool(input.IsSysAdmin),
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if input.UserID != "" {
		fields["user_id"] = input.UserID
	}
	var resp struct {
		Status string             `json:"status"`
		Staff  domain.StaffMember `json:"staff"`
	}
	if err := c.postForm(ctx, token, "/admin/staff", fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Staff, nil
}

// CreateSeverity defines a new severity level.
func (c *Client) CreateSeverity(ctx context.Context, token string, input CreateSeverityInput) (*domain.Severity, error) {
	if input.Name == "" {
		return nil, errs.NewValidation("severity name is required")
	}
	fields := map[string]string{
		"name":  input.Name,
		"level": strconv.Itoa(input.Level),
		"note":  input.Note,
	}
	var resp struct {
		Status   string          `json:"status"`
		Severity domain.Severity `json:"severity"`
	}
	if err := c.postForm(ctx, token, "/admin/severity", fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Severity, nil
}
