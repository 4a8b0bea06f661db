package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the schema owned by service. Every statement is idempotent,
// so it runs on each start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, service string) error {
	file := "migrations/" + service + ".sql"
	sql, err := migrations.ReadFile(file)
	if err != nil {
		return fmt.Errorf("no schema for service %q: %w", service, err)
	}

	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", file, err)
	}

	slog.Info("migration applied", "file", file)
	return nil
}
