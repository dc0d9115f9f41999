package http_transport

import (
	"errors"
	"log/slog"
	"time"

	"github.com/init-pkg/vapt-ingest/domain/errs"
	"github.com/init-pkg/vapt-ingest/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

const AppName = "vapt-ingest"

func NewFiberApp(cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:         AppName,
		BodyLimit:       cfg.Http.BodyLimit,
		ErrorHandler:    ErrorHandler(log),
		StructValidator: NewStructValidator(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Http.CorsOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
	}))
	app.Use(requestLogger(log))

	return app
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		log.Info("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
			"request_id", requestid.FromContext(c))

		return err
	}
}

func statusOf(err error) int {
	var appErr errs.Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
