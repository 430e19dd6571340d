package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// CreateTicketInput is the payload for opening a new ticket. The backend
// creates the ticket and its first message atomically.
type CreateTicketInput struct {
	Title          string
	SubcategoryID  string
	InitialMessage string
}

// TicketState is the (ticket_status, resolution_status) pair as returned by
// the status endpoint.
type TicketState struct {
	TicketStatus     domain.TicketStatus     `json:"ticket_status"`
	ResolutionStatus domain.ResolutionStatus `json:"resolution_status"`
}

// TicketField names a classification field updatable in place.
type TicketField string

const (
	FieldCategory    TicketField = "category"
	FieldSubcategory TicketField = "subcategory"
	FieldSeverity    TicketField = "severity"
	FieldSLA         TicketField = "sla"
	FieldAssignee    TicketField = "assignee"
)

// ValidTicketField reports whether field is one of the updatable fields.
func ValidTicketField(field TicketField) bool {
	switch field {
	case FieldCategory, FieldSubcategory, FieldSeverity, FieldSLA, FieldAssignee:
		return true
	}
	return false
}

// ListTickets fetches tickets visible to the caller. asUser restricts the
// listing to the caller's own tickets; staff pass false for the full view.
func (c *Client) ListTickets(ctx context.Context, token string, asUser bool) ([]domain.Ticket, error) {
	query := url.Values{"as_user": {strconv.FormatBool(asUser)}}
	var resp struct {
		Status  string          `json:"status"`
		Tickets []domain.Ticket `json:"tickets"`
	}
	if err := c.get(ctx, token, "/tickets", query, &resp); err != nil {
		return nil, err
	}
	return resp.Tickets, nil
}

// GetTicketDetails fetches one ticket's detail projection. A ticket that
// does not exist or is not visible to the caller surfaces as APIError 404.
func (c *Client) GetTicketDetails(ctx context.Context, token, ticketID string) (*domain.TicketDetails, error) {
	var resp struct {
		Status string               `json:"status"`
		Ticket domain.TicketDetails `json:"ticket"`
	}
	if err := c.get(ctx, token, "/tickets/"+ticketID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Ticket, nil
}

// GetTicketMessages fetches the ticket's message thread in backend order.
func (c *Client) GetTicketMessages(ctx context.Context, token, ticketID string) ([]domain.Message, error) {
	var resp struct {
		Status   string           `json:"status"`
		Messages []domain.Message `json:"messages"`
	}
	if err := c.get(ctx, token, "/tickets/"+ticketID+"/messages", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// AddTicketMessage appends one USER message to the ticket thread.
func (c *Client) AddTicketMessage(ctx context.Context, token, ticketID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, errs.NewValidation("message content is required")
	}
	var resp struct {
		Status  string         `json:"status"`
		Message domain.Message `json:"message"`
	}
	fields := map[string]string{"content": content}
	if err := c.postForm(ctx, token, "/tickets/"+ticketID+"/messages", fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Message, nil
}

// CreateTicket opens a ticket with its initial message.
func (c *Client) CreateTicket(ctx context.Context, token string, input CreateTicketInput) (*domain.Ticket, error) {
	if input.Title == "" || input.SubcategoryID == "" || input.InitialMessage == "" {
		return nil, errs.NewValidation("title, subcategory and initial message are required")
	}
	fields := map[string]string{
		"title":           input.Title,
		"subcategory_id":  input.SubcategoryID,
		"initial_message": input.InitialMessage,
	}
	var resp struct {
		Status string        `json:"status"`
		Ticket domain.Ticket `json:"ticket"`
	}
	if err := c.postForm(ctx, token, "/me/create", fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Ticket, nil
}

// GetTicketStatus fetches only the lifecycle state pair.
func (c *Client) GetTicketStatus(ctx context.Context, token, ticketID string) (*TicketState, error) {
	var resp struct {
		Status           string                  `json:"status"`
		TicketStatus     domain.TicketStatus     `json:"ticket_status"`
		ResolutionStatus domain.ResolutionStatus `json:"resolution_status"`
	}
	if err := c.get(ctx, token, "/tickets/"+ticketID+"/status", nil, &resp); err != nil {
		return nil, err
	}
	return &TicketState{TicketStatus: resp.TicketStatus, ResolutionStatus: resp.ResolutionStatus}, nil
}

// UpdateTicketStatus sets ticket_status and/or resolution_status. At least
// one flag must be provided; a call with neither is rejected locally and
// never reaches the backend. The backend remains the authority and may
// still reject the transition.
func (c *Client) UpdateTicketStatus(ctx context.Context, token, ticketID string, open, resolved *bool) error {
	if open == nil && resolved == nil {
		return errs.NewValidation("at least one of open or resolved must be set")
	}
	fields := map[string]string{}
	if open != nil {
		fields["open"] = strconv.FormatBool(*open)
	}
	if resolved != nil {
		fields["resolved"] = strconv.FormatBool(*resolved)
	}
	return c.postForm(ctx, token, "/tickets/"+ticketID+"/status", fields, nil)
}

// UpdateTicketField updates exactly one classification field.
func (c *Client) UpdateTicketField(ctx context.Context, token, ticketID string, field TicketField, value string) error {
	if !ValidTicketField(field) {
		return errs.NewValidation("unknown ticket field")
	}
	if value == "" {
		return errs.NewValidation("field value is required")
	}
	fields := map[string]string{
		"field": string(field),
		"value": value,
	}
	return c.postForm(ctx, token, "/tickets/"+ticketID+"/info", fields, nil)
}
