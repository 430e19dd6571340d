package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/portal"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// TicketsHandler serves the ticket pages and actions.
type TicketsHandler struct {
	api backend.API
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(api backend.API) *TicketsHandler {
	return &TicketsHandler{api: api}
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	tickets, err := h.api.ListTickets(c.UserContext(), token, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	ticket, err := h.api.CreateTicket(c.UserContext(), token, backend.CreateTicketInput{
		Title:          req.Title,
		SubcategoryID:  req.SubcategoryID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ticket": ticket})
}

// Detail GET /tickets/:id. Details and messages are independent reads, so
// they are fetched concurrently and joined before the view model is built.
func (h *TicketsHandler) Detail(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	authz, _ := auth.FromContext(c)
	ticketID := c.Params("id")

	var (
		details  *domain.TicketDetails
		messages []domain.Message
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		details, err = h.api.GetTicketDetails(ctx, token, ticketID)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = h.api.GetTicketMessages(ctx, token, ticketID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	var currentUserID string
	if authz != nil {
		currentUserID = authz.UserID
	}
	return c.JSON(dto.TicketPageView{
		Ticket:   details,
		Panel:    portal.NewStatusPanel(details, authz),
		Timeline: portal.Timeline(messages, currentUserID),
	})
}

// AddMessage POST /tickets/:id/messages.
func (h *TicketsHandler) AddMessage(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.NewMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	message, err := h.api.AddTicketMessage(c.UserContext(), token, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

// UpdateStatus POST /tickets/:id/status. The displayed state never changes
// until the backend confirms; a rejection surfaces as an inline error with
// the view untouched.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.StatusActionRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	open, resolved, err := portal.Flags(req.Action)
	if err != nil {
		return err
	}
	if err := h.api.UpdateTicketStatus(c.UserContext(), token, c.Params("id"), open, resolved); err != nil {
		return err
	}
	state, err := h.api.GetTicketStatus(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"ticket_status":     state.TicketStatus,
		"resolution_status": state.ResolutionStatus,
		"actions":           portal.ActionsFor(domain.State{Ticket: state.TicketStatus, Resolution: state.ResolutionStatus}),
	})
}

// UpdateField POST /tickets/:id/info.
func (h *TicketsHandler) UpdateField(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	err := h.api.UpdateTicketField(c.UserContext(), token, c.Params("id"), backend.TicketField(req.Field), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"updated": true})
}
