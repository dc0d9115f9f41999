package database_client

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/init-pkg/vapt-ingest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql"} {
		d, err := Dialector(&config.Db{Driver: driver, Dsn: "dsn"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(&config.Db{Driver: "oracle"})
	assert.ErrorContains(t, err, "oracle")
}

func TestGormLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.Background()
	trace := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), trace, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now(), trace, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), "component=gorm")
}
