package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// OptionsHandler serves the selector data for forms and inline editors.
type OptionsHandler struct {
	api backend.API
}

// NewOptionsHandler constructs handler.
func NewOptionsHandler(api backend.API) *OptionsHandler {
	return &OptionsHandler{api: api}
}

// Categories GET /options/categories.
func (h *OptionsHandler) Categories(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	categories, err := h.api.ListCategories(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// Subcategories GET /options/categories/:id/subcategories. Depends on a
// previously chosen category.
func (h *OptionsHandler) Subcategories(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	subcategories, err := h.api.ListSubcategories(c.UserContext(), token, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subcategories": subcategories})
}

// Severities GET /options/severities.
func (h *OptionsHandler) Severities(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	severities, err := h.api.ListSeverities(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"severities": severities})
}

// SLAs GET /options/slas.
func (h *OptionsHandler) SLAs(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	slas, err := h.api.ListSLAs(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"slas": slas})
}

// Staff GET /options/staff, for the assignee selector.
func (h *OptionsHandler) Staff(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	staff, err := h.api.ListStaff(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"staff": staff})
}
