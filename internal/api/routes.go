// Package api is the JSON surface: token login plus read access to
// transports, rates and the audit trail.
package api

import (
	"dispatchbase/internal/auth"
	"dispatchbase/internal/config"
	"dispatchbase/internal/export"
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register mounts /api on app. Callers check cfg.APIEnabled first.
func Register(app *fiber.App, cfg *config.Config, svc *service.Registry) {
	users := svc.Users.UserStore

	api := app.Group("/api")
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(users))
	api.Post("/auth/login", auth.LoginHandler(cfg, users))

	protected := api.Group("", auth.JWTMiddleware(cfg, users))
	protected.Get("/auth/me", auth.MeHandler(users))

	protected.Get("/transports", ListTransportsHandler(svc.Transports))
	protected.Get("/transports/export",
		auth.RequireRole(models.RoleAdmin, models.RoleOffice),
		export.TransportsHandler(svc.Transports))
	protected.Get("/transports/:id", GetTransportHandler(svc.Transports))
	protected.Get("/rates", GetRatesHandler(svc.Rates))
	protected.Get("/audit-logs", auth.RequireRole(models.RoleAdmin), ListAuditLogsHandler(svc.Audit))
}
