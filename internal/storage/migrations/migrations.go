// Package migrations owns the vulnerabilities schema. Each supported dialect
// has its own directory of goose SQL files with identical version numbers.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

const (
	DialectPostgres = goose.DialectPostgres
	DialectMySQL    = goose.DialectMySQL
	DialectSQLite3  = goose.DialectSQLite3
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var embedded embed.FS

// DialectFor maps a configured db driver name to its goose dialect.
func DialectFor(driver string) (goose.Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return DialectPostgres, nil
	case "mysql":
		return DialectMySQL, nil
	case "sqlite", "sqlite3":
		return DialectSQLite3, nil
	default:
		return "", fmt.Errorf("migrations: no dialect for driver %q", driver)
	}
}

func NewProvider(db *sql.DB, dialect goose.Dialect) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedded, string(dialect))
	if err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return goose.NewProvider(dialect, db, fsys)
}

// Up applies every pending migration. Running it on an up-to-date schema is a no-op.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, log *slog.Logger) error {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	if len(results) == 0 {
		log.Debug("schema up to date")
	}

	return nil
}
