package bootstrap

import (
	"context"
	"log/slog"
	"testing"

	"github.com/init-pkg/vapt-ingest/internal/config"
	"github.com/init-pkg/vapt-ingest/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	ctx := context.Background()

	log := NewLogger(&config.Config{Log: config.Log{Level: "warn", Format: "text"}})
	assert.False(t, log.Enabled(ctx, slog.LevelInfo))
	assert.True(t, log.Enabled(ctx, slog.LevelWarn))

	log = NewLogger(&config.Config{Log: config.Log{Level: "loud"}})
	assert.True(t, log.Enabled(ctx, slog.LevelInfo))
	assert.False(t, log.Enabled(ctx, slog.LevelDebug))
}

func TestEnsureSchemaRejectsUnknownDriver(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := &config.Config{Infrastructure: config.Infrastructure{Db: config.Db{Driver: "oracle"}}}

	assert.Error(t, ensureSchema(context.Background(), cfg, db, testutil.Logger()))

	cfg.Infrastructure.Db.Driver = "sqlite"
	assert.NoError(t, ensureSchema(context.Background(), cfg, db, testutil.Logger()))
}
