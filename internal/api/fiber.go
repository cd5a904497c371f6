package api

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/routes"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/services"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

type Options struct {
	// RequestLog enables the per-request access log line.
	RequestLog bool
	// Quiet hides the startup banner.
	Quiet bool
}

// NewFiberApp creates the Fiber app with global middleware and all routes mounted.
func NewFiberApp(cfg *config.Config, db *gorm.DB, plugins []apps.Plugin, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "profilehub",
		BodyLimit:             1 * 1024 * 1024,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: opts.Quiet,
	})

	// Sentry first so it sees panics before recover swallows them.
	if sentry.CurrentHub().Client() != nil {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.RequestLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	authService := services.NewAuthService(db, cfg)
	routes.Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		plugins,
	)

	return app
}

// ErrorHandler hides details of 5xx errors from clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
