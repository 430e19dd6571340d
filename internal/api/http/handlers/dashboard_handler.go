package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// DashboardHandler serves the staff triage view.
type DashboardHandler struct {
	api backend.API
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(api backend.API) *DashboardHandler {
	return &DashboardHandler{api: api}
}

// List GET /dashboard: every ticket visible to staff, not just the
// caller's own.
func (h *DashboardHandler) List(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	tickets, err := h.api.ListTickets(c.UserContext(), token, false)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}
