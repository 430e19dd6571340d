package dto

import (
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/portal"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title          string `json:"title" form:"title"`
	SubcategoryID  string `json:"subcategory_id" form:"subcategory_id"`
	InitialMessage string `json:"initial_message" form:"initial_message"`
}

// NewMessageRequest payload.
type NewMessageRequest struct {
	Content string `json:"content" form:"content"`
}

// StatusActionRequest names the transition to perform.
type StatusActionRequest struct {
	Action portal.Action `json:"action" form:"action"`
}

// UpdateFieldRequest payload for inline classification edits.
type UpdateFieldRequest struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

// CreateSeverityRequest payload.
type CreateSeverityRequest struct {
	Name  string `json:"name" form:"name"`
	Level int    `json:"level" form:"level"`
	Note  string `json:"note" form:"note"`
}

// CreateStaffRequest payload; exactly one of email or user_id is expected.
type CreateStaffRequest struct {
	Email      string `json:"email" form:"email"`
	UserID     string `json:"user_id" form:"user_id"`
	IsSysAdmin bool   `json:"is_sys_admin" form:"is_sys_admin"`
}

// RegisterRequest carries the signup profile fields.
type RegisterRequest struct {
	Name             string `json:"name" form:"name"`
	Email            string `json:"email" form:"email"`
	YearOfGraduation string `json:"yearOfGraduation" form:"yearOfGraduation"`
	Degree           string `json:"degree" form:"degree"`
	HostelBlock      string `json:"hostelBlock" form:"hostelBlock"`
	RoomNumber       string `json:"roomNumber" form:"roomNumber"`
}

// LandingView is the login landing page view model.
type LandingView struct {
	SessionExpired bool   `json:"session_expired"`
	Notice         string `json:"notice,omitempty"`
}

// TicketPageView is the ticket detail page view model: the projection plus
// the role-gated status panel and the normalized timeline.
type TicketPageView struct {
	Ticket   *domain.TicketDetails  `json:"ticket"`
	Panel    portal.StatusPanel     `json:"panel"`
	Timeline []portal.TimelineEntry `json:"timeline"`
}

// ProfileView is the /me view model.
type ProfileView struct {
	Name  string                         `json:"name"`
	Email string                         `json:"email"`
	Data  map[string]domain.ProfileField `json:"data"`
}
