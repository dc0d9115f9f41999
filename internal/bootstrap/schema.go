package bootstrap

import (
	"context"
	"log/slog"

	"github.com/init-pkg/vapt-ingest/internal/config"
	"github.com/init-pkg/vapt-ingest/internal/storage/migrations"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// schemaOptions runs the migrations once on start. It is registered before the
// http hook so the table exists before the first request is accepted.
func schemaOptions() fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, log *slog.Logger) {
		if !cfg.Infrastructure.Db.MigrateOnStart {
			log.Info("migrate on start disabled")
			return
		}

		lc.Append(fx.StartHook(func(ctx context.Context) error {
			return ensureSchema(ctx, cfg, db, log)
		}))
	})
}

func ensureSchema(ctx context.Context, cfg *config.Config, db *gorm.DB, log *slog.Logger) error {
	dialect, err := migrations.DialectFor(cfg.Infrastructure.Db.Driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return migrations.Up(ctx, sqlDB, dialect, log)
}
