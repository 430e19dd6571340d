package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Account        *handlers.AccountHandler
	Tickets        *handlers.TicketsHandler
	Dashboard      *handlers.DashboardHandler
	Options        *handlers.OptionsHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires portal routes. Access rules: / and /login are
// public, /signup requires the signup role, /dashboard requires team,
// /settings/* requires sys_admin, everything else a valid session.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/healthz", cfg.Health.Live)

	app.Get("/", cfg.Account.Landing)
	app.Get("/login", cfg.Account.Login)

	signup := app.Group("/signup", cfg.AuthMiddleware.Handle, auth.RequireRole(auth.RoleSignup))
	signup.Get("/", cfg.Account.SignupForm)
	signup.Post("/", cfg.Account.Register)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/logout", cfg.Account.Logout)
	protected.Get("/me", cfg.Account.Me)

	protected.Get("/tickets", cfg.Tickets.List)
	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets/:id", cfg.Tickets.Detail)
	protected.Post("/tickets/:id/messages", cfg.Tickets.AddMessage)
	protected.Post("/tickets/:id/status", auth.RequireRole(auth.RoleTeam), cfg.Tickets.UpdateStatus)
	protected.Post("/tickets/:id/info", auth.RequireRole(auth.RoleTeam), cfg.Tickets.UpdateField)

	protected.Get("/dashboard", auth.RequireRole(auth.RoleTeam), cfg.Dashboard.List)

	options := protected.Group("/options")
	options.Get("/categories", cfg.Options.Categories)
	options.Get("/categories/:id/subcategories", cfg.Options.Subcategories)
	options.Get("/severities", cfg.Options.Severities)
	options.Get("/slas", cfg.Options.SLAs)
	options.Get("/staff", auth.RequireRole(auth.RoleTeam), cfg.Options.Staff)

	settings := protected.Group("/settings", auth.RequireRole(auth.RoleSysAdmin))
	settings.Get("/severities", cfg.Settings.Severities)
	settings.Post("/severities", cfg.Settings.CreateSeverity)
	settings.Get("/slas", cfg.Settings.SLAs)
	settings.Get("/staff", cfg.Settings.Staff)
	settings.Post("/staff", cfg.Settings.CreateStaff)
}
