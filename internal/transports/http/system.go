package http_transport

import (
	"log/slog"

	"github.com/init-pkg/vapt-ingest/docs"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

// SystemHttpHandler serves the health probe and the Swagger UI with its doc.json.
type SystemHttpHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSystemHandler(db *gorm.DB, log *slog.Logger) *SystemHttpHandler {
	return &SystemHttpHandler{db, log}
}

func (this *SystemHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Get("/health", this.health)
	mainApp.Get("/swagger/*", swagger.New(swagger.Config{
		Title:        docs.SwaggerInfo.Title,
		InstanceName: docs.SwaggerInfo.InstanceName(),
	}))
}

// health godoc
//
//	@Summary	Liveness including a database ping
//	@Tags		system
//	@Produce	json
//	@Success	200
//	@Failure	503
//	@Router		/health [get]
func (this *SystemHttpHandler) health(fctx fiber.Ctx) error {
	sqlDB, err := this.db.DB()
	if err == nil {
		err = sqlDB.PingContext(fctx.Context())
	}
	if err != nil {
		this.log.Error("health check failed", "error", err)
		return fctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}

	return fctx.JSON(fiber.Map{"status": "ok"})
}
