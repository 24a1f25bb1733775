package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artem13815/askexpert/api/http/handlers"
	"github.com/artem13815/askexpert/api/http/middleware"
	"github.com/artem13815/askexpert/api/http/views"
)

// NewApp builds the Fiber app with views and the common middleware stack.
// Order: RequestID → AccessLog → Metrics → Recover → routes
func NewApp(logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "askexpert",
		Views:                 views.Engine(),
		DisableStartupMessage: true,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.AccessLog(logger))
	app.Use(middleware.Metrics())
	app.Use(recover.New())
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, ask *handlers.AskHandler, form *handlers.FormHandler) {
	app.Get("/", form.Show)
	app.Post("/", form.Submit)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/personas", ask.Personas)
	v1.Post("/ask", ask.Ask)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)
}
