package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// SettingsHandler serves the sys_admin configuration routes.
type SettingsHandler struct {
	api backend.API
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(api backend.API) *SettingsHandler {
	return &SettingsHandler{api: api}
}

// Severities GET /settings/severities.
func (h *SettingsHandler) Severities(c *fiber.Ctx) error {
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

// CreateSeverity POST /settings/severities.
func (h *SettingsHandler) CreateSeverity(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.CreateSeverityRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	severity, err := h.api.CreateSeverity(c.UserContext(), token, backend.CreateSeverityInput{
		Name:  req.Name,
		Level: req.Level,
		Note:  req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"severity": severity})
}

// SLAs GET /settings/slas.
func (h *SettingsHandler) SLAs(c *fiber.Ctx) error {
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

// Staff GET /settings/staff.
func (h *SettingsHandler) Staff(c *fiber.Ctx) error {
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

// CreateStaff POST /settings/staff.
func (h *SettingsHandler) CreateStaff(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	staff, err := h.api.CreateStaff(c.UserContext(), token, backend.CreateStaffInput{
		Email:      req.Email,
		UserID:     req.UserID,
		IsSysAdmin: req.IsSysAdmin,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"staff": staff})
}
