package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// AccountHandler serves the landing, login, signup, profile and logout
// routes.
type AccountHandler struct {
	api      backend.API
	sessions *session.Manager
	loginURL string
}

// NewAccountHandler constructs handler.
func NewAccountHandler(api backend.API, sessions *session.Manager, loginURL string) *AccountHandler {
	return &AccountHandler{api: api, sessions: sessions, loginURL: loginURL}
}

// Landing GET /. Public; reads the session-expired marker set by redirects.
func (h *AccountHandler) Landing(c *fiber.Ctx) error {
	view := dto.LandingView{}
	if c.Query("session_expired") == "true" {
		view.SessionExpired = true
		view.Notice = "Your session has expired. Please log in again."
	}
	return c.JSON(view)
}

// Login GET /login. Public; hands the user to the backend's OAuth entry.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	return c.Redirect(h.loginURL, fiber.StatusSeeOther)
}

// Logout POST /logout.
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Me GET /me. Name and email come from the session claims, the profile data
// map from the backend.
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	authz, _ := auth.FromContext(c)
	profile, err := h.api.Me(c.UserContext(), token)
	if err != nil {
		return err
	}
	view := dto.ProfileView{Data: profile.Data}
	if authz != nil {
		view.Name = authz.Name
		view.Email = authz.Email
	}
	return c.JSON(view)
}

// SignupForm GET /signup. The signup role gate has already run; the form
// is prefilled from the claims.
func (h *AccountHandler) SignupForm(c *fiber.Ctx) error {
	authz, ok := auth.FromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	return c.JSON(fiber.Map{"name": authz.Name, "email": authz.Email})
}

// Register POST /signup. On success the backend issues a fresh token with
// the full role set, which replaces the signup-scoped cookie.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return errs.NewAuthExpired("")
	}
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("invalid payload")
	}
	input := backend.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Data: map[string]domain.ProfileField{
			"yearOfGraduation": {Name: "yearOfGraduation", Value: req.YearOfGraduation},
			"degree":           {Name: "degree", Value: req.Degree},
			"hostelBlock":      {Name: "hostelBlock", Value: req.HostelBlock},
			"roomNumber":       {Name: "roomNumber", Value: req.RoomNumber},
		},
	}
	newToken, err := h.api.Register(c.UserContext(), token, input)
	if err != nil {
		return err
	}
	h.sessions.SetToken(c, newToken)
	return c.JSON(fiber.Map{"success": true})
}
