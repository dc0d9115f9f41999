package database_client

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/init-pkg/vapt-ingest/internal/config"

	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 500 * time.Millisecond

// Dialector picks the gorm driver for the configured db.driver.
func Dialector(cfg *config.Db) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.Dsn), nil
	case "mysql":
		return mysql.Open(cfg.Dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func New(cfg *config.Config, log *slog.Logger, lc fx.Lifecycle) (*gorm.DB, error) {
	var dbCfg = &cfg.Infrastructure.Db

	dialector, err := Dialector(dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbCfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	lc.Append(fx.StopHook(func() error {
		log.Info("closing database pool")
		return sqlDB.Close()
	}))

	log.Info("database connected", "driver", dbCfg.Driver)

	return db, nil
}

type slogWriter struct {
	log *slog.Logger
}

func (this slogWriter) Printf(format string, args ...any) {
	this.log.Warn(fmt.Sprintf(format, args...))
}

// NewGormLogger reports slow queries and errors through slog. Record-not-found is
// an expected outcome of lookups and is not logged.
func NewGormLogger(log *slog.Logger) logger.Interface {
	return logger.New(slogWriter{log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
