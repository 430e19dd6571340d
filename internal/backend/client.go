package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// API is the surface handlers program against; *Client implements it.
type API interface {
	ListTickets(ctx context.Context, token string, asUser bool) ([]domain.Ticket, error)
	GetTicketDetails(ctx context.Context, token, ticketID string) (*domain.TicketDetails, error)
	GetTicketMessages(ctx context.Context, token, ticketID string) ([]domain.Message, error)
	AddTicketMessage(ctx context.Context, token, ticketID, content string) (*domain.Message, error)
	CreateTicket(ctx context.Context, token string, input CreateTicketInput) (*domain.Ticket, error)
	GetTicketStatus(ctx context.Context, token, ticketID string) (*TicketState, error)
	UpdateTicketStatus(ctx context.Context, token, ticketID string, open, resolved *bool) error
	UpdateTicketField(ctx context.Context, token, ticketID string, field TicketField, value string) error
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, token, categoryID string) ([]domain.Subcategory, error)
	ListSeverities(ctx context.Context, token string) ([]domain.Severity, error)
	CreateSeverity(ctx context.Context, token string, input CreateSeverityInput) (*domain.Severity, error)
	ListSLAs(ctx context.Context, token string) ([]domain.SLA, error)
	ListStaff(ctx context.Context, token string) ([]domain.StaffMember, error)
	CreateStaff(ctx context.Context, token string, input CreateStaffInput) (*domain.StaffMember, error)
	Me(ctx context.Context, token string) (*domain.Profile, error)
	Register(ctx context.Context, token string, input RegisterInput) (string, error)
}

// Client proxies calls to the remote helpdesk REST backend. It is stateless:
// every call carries the caller's bearer token and returns a request-scoped
// projection.
type Client struct {
	http     *resty.Client
	register config.RegisterConfig
}

var _ API = (*Client)(nil)

// NewClient builds a backend client from config.
func NewClient(cfg config.BackendConfig, register config.RegisterConfig) *Client {
	cli := resty.New()
	cli.SetBaseURL(cfg.BaseURL)
	cli.SetTimeout(cfg.Timeout())
	return &Client{http: cli, register: register}
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx).SetAuthToken(token)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	return decodeResponse(resp, err, out)
}

func (c *Client) postForm(ctx context.Context, token, path string, fields map[string]string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetMultipartFormData(fields).
		Post(path)
	return decodeResponse(resp, err, out)
}

// decodeResponse normalizes failures: 401 becomes an expired AuthError, any
// other non-2xx becomes an APIError with the message taken from the response
// body when present.
func decodeResponse(resp *resty.Response, err error, out any) error {
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return classifyFailure(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

func classifyFailure(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		return errs.NewAuthExpired("Session expired. Please log in again.")
	}
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &payload)
	return errs.NewAPIError(resp.StatusCode(), payload.Message)
}
