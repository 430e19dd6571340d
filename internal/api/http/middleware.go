package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/observability"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// RegisterMiddlewares attaches global middlewares such as error handling
// and logging. The request logger is outermost: it must observe the status
// the error middleware settled on, not the pre-translation one.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware maps the error taxonomy to responses: expired
// auth redirects back through login, everything else becomes an inline
// JSON envelope for the caller to surface.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = errs.NewAPIError(fiber.StatusInternalServerError, "internal server error")
			}
			if err == nil {
				return
			}
			if metrics != nil {
				metrics.RecordError(c.Path(), c.Method(), errorKind(err))
			}
			if errs.IsAuthExpired(err) {
				err = c.Redirect(auth.ExpiredRedirect, fiber.StatusSeeOther)
				return
			}
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				c.Status(fiberErr.Code)
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"status":  fiberErr.Code,
					"message": fiberErr.Message,
				}})
				err = nil
				return
			}
			status := errs.HTTPStatus(err)
			if status >= 500 {
				logger.Error("request failed", zap.Error(err))
			}
			c.Status(status)
			_ = c.JSON(fiber.Map{"error": fiber.Map{
				"status":  status,
				"message": errs.PublicMessage(err),
			}})
			err = nil
		}()
		return c.Next()
	}
}

func errorKind(err error) string {
	var authErr *errs.AuthError
	if errors.As(err, &authErr) {
		return "auth"
	}
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		return "api"
	}
	var valErr *errs.ValidationError
	if errors.As(err, &valErr) {
		return "validation"
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return "route"
	}
	return "network"
}
