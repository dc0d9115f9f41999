package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func Run() {
	app := fx.New(
		coreOptions(),
		clientsOptions(),
		appOptions(),
		schemaOptions(),
		httpOptions(),

		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log.With("component", "fx")}
		}),
	)

	app.Run()
}
