package http_transport

import (
	"errors"
	"log/slog"

	"github.com/init-pkg/vapt-ingest/domain/dtos"
	"github.com/init-pkg/vapt-ingest/domain/errs"

	"github.com/gofiber/fiber/v3"
)

func RespondError(c fiber.Ctx, err errs.Error) error {
	return c.Status(err.Status()).JSON(dtos.ErrorResponse{Error: err.Error()})
}

// ErrorHandler answers every error that escaped a handler with the {"error": ...} body.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var appErr errs.Error
		if errors.As(err, &appErr) {
			return RespondError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
		}

		return c.Status(code).JSON(dtos.ErrorResponse{Error: err.Error()})
	}
}
