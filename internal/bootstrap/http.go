package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/vapt-ingest/internal/config"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"
	"go.uber.org/fx"
)

func httpOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			http_transport.NewFiberApp,
			http_transport.AsHandler(http_transport.NewSystemHandler),
		),
		fx.Invoke(registerHandlers),
		fx.Invoke(serveHttp),
	)
}

func registerHandlers(app *fiber.App, params http_transport.HandlersParams) {
	for _, h := range params.Handlers {
		h.Register(app)
	}
}

func serveHttp(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info("http server listening", "addr", cfg.Http.Addr)

				err := app.Listen(cfg.Http.Addr, fiber.ListenConfig{DisableStartupMessage: true})
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", "error", err)
					shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return app.ShutdownWithContext(ctx)
		},
	})
}
