// Package web serves the HTML pages: one paginated list and one edit form per
// entity, plus rates, export and audit views.
package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"dispatchbase/internal/config"
	"dispatchbase/internal/export"
	"dispatchbase/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"
)

//go:embed views/*.html
var viewFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

const csrfContextKey = "csrf"

const msgCSRFMismatch = "Invalid request (CSRF token mismatch)."

// NewApp builds the Fiber application with every HTML route registered. The
// JSON API is mounted separately on the returned app.
func NewApp(cfg *config.Config, svc *service.Registry) *fiber.App {
	views, err := fs.Sub(viewFiles, "views")
	if err != nil {
		logrus.WithError(err).Fatal("embedded views missing")
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: logrus.StandardLogger().Out}))

	origins := strings.Split(cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logrus.WithError(err).Fatal("embedded static files missing")
	}
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(static)}))

	if cfg.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrf_token",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			ContextKey:     csrfContextKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/api")
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				logrus.WithError(err).WithField("path", c.Path()).Warn("csrf rejected")
				return fiber.NewError(fiber.StatusForbidden, msgCSRFMismatch)
			},
		}))
	}

	registerRoutes(app, svc)
	return app
}

func registerRoutes(app *fiber.App, svc *service.Registry) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/transport-list")
	})

	pages := []struct {
		name string
		list *listPage
		form *formPage
	}{
		{"customer", customerList(svc), customerForm(svc)},
		{"location", locationList(svc), locationForm(svc)},
		{"coroner", coronerList(svc), coronerForm(svc)},
		{"pouch", pouchList(svc), pouchForm(svc)},
		{"user", userList(svc), userForm(svc)},
		{"employee", employeeList(svc), employeeForm(svc)},
		{"vehicle", vehicleList(svc), vehicleForm(svc)},
		{"transport", transportList(svc), transportForm(svc)},
	}
	for _, p := range pages {
		app.Get("/"+p.name+"-list", p.list.Handler())
		edit := p.form.Handler()
		app.Get("/"+p.name+"-edit", edit)
		app.Post("/"+p.name+"-edit", edit)
	}

	decedent := decedentForm(svc).Handler()
	app.Get("/decedent-edit", decedent)
	app.Post("/decedent-edit", decedent)

	rates := RatesHandler(svc)
	app.Get("/rates-edit", rates)
	app.Post("/rates-edit", rates)

	app.Get("/transport-list/export", export.TransportsHandler(svc.Transports))
	app.Get("/audit-list", AuditListHandler(svc.Audit))
}

type errorView struct {
	Title   string
	Message string
}

// errorHandler answers /api requests with {"error": msg} and everything else
// with the error page.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An unexpected error occurred."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("unexpected error")
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	c.Status(code)
	if rerr := c.Render("error", errorView{Title: "Error", Message: msg}, "layout"); rerr != nil {
		return c.SendString(msg)
	}
	return nil
}
