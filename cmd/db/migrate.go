package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/garrettladley/constellation/internal/migrations"
	pgmigrations "github.com/garrettladley/constellation/internal/migrations/postgres"
	"github.com/garrettladley/constellation/internal/paths"
)

func migrateCmd() *cobra.Command {
	var (
		url    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  "Applies migrations to the sqlite database in the config directory, or to the postgres database given by --url.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
				return migratePostgres(ctx, url, dryRun)
			}
			return migrateSQLite(ctx, url, dryRun)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "postgres connection url; empty uses the local sqlite database")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list pending migrations without applying them")
	return cmd
}

func migrateSQLite(ctx context.Context, path string, dryRun bool) error {
	if path == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return err
		}
		var err error
		if path, err = paths.DB(); err != nil {
			return err
		}
	}
	path = strings.TrimPrefix(path, "sqlite://")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	pending, err := migrations.Pending(ctx, db)
	if err != nil {
		return err
	}
	if dryRun {
		printPending(pending)
		return nil
	}

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}
	fmt.Printf("Applied %d migration(s) to %s\n", len(pending), path)
	return nil
}

func migratePostgres(ctx context.Context, url string, dryRun bool) error {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	pending, err := pgmigrations.Pending(ctx, pool)
	if err != nil {
		return err
	}
	if dryRun {
		printPending(pending)
		return nil
	}

	if err := pgmigrations.Apply(ctx, pool); err != nil {
		return err
	}
	fmt.Printf("Applied %d migration(s) to postgres\n", len(pending))
	return nil
}

func printPending(pending []string) {
	if len(pending) == 0 {
		fmt.Println("No pending migrations")
		return
	}
	for _, name := range pending {
		fmt.Println(name)
	}
}
