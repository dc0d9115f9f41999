package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/init-pkg/vapt-ingest/internal/bootstrap"
	"github.com/init-pkg/vapt-ingest/internal/config"
	"github.com/init-pkg/vapt-ingest/internal/storage/migrations"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type env struct {
	cfg      *config.Config
	log      *slog.Logger
	db       *sql.DB
	dialect  goose.Dialect
	provider *goose.Provider
}

func newRootCmd() *cobra.Command {
	var e env

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the vulnerabilities schema",
		Long:          "Applies or rolls back the embedded migrations.\n\n" + config.Usage(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return e.db.Close()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrations.Up(cmd.Context(), e.db, e.dialect, e.log)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				res, err := e.provider.Down(cmd.Context())
				if err != nil {
					return err
				}
				e.log.Info("migration rolled back", "version", res.Source.Version, "path", res.Source.Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the state of every migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return e.status(cmd.Context(), cmd.OutOrStdout())
			},
		},
	)

	return root
}

func (this *env) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dialect, err := migrations.DialectFor(cfg.Infrastructure.Db.Driver)
	if err != nil {
		return err
	}

	db, err := sql.Open(cfg.Infrastructure.Db.Driver, cfg.Infrastructure.Db.Dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Infrastructure.Db.Driver, err)
	}

	provider, err := migrations.NewProvider(db, dialect)
	if err != nil {
		db.Close()
		return err
	}

	this.cfg = cfg
	this.log = bootstrap.NewLogger(cfg)
	this.db = db
	this.dialect = dialect
	this.provider = provider
	return nil
}

func (this *env) status(ctx context.Context, out io.Writer) error {
	statuses, err := this.provider.Status(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return w.Flush()
}
