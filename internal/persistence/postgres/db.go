package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nodisys/netbanx-gateway/internal/config"
)

// Connect opens a pgx pool against the receipt/log database and verifies
// connectivity before returning.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := cfg.PgxConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to database",
		"host", cfg.Host,
		"database", cfg.Name,
	)

	return pool, nil
}

// EnsureSchema creates the audit log and receipt tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS netbanx_log (
			id UUID PRIMARY KEY,
			trx_id TEXT NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			category TEXT NOT NULL,
			message JSONB,
			fail BOOLEAN NOT NULL DEFAULT FALSE,
			ip TEXT
		);
		CREATE INDEX IF NOT EXISTS netbanx_log_trx_idx ON netbanx_log (trx_id);

		CREATE TABLE IF NOT EXISTS netbanx_receipt (
			trx_id TEXT PRIMARY KEY,
			receipt TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			card_type TEXT,
			card_number TEXT,
			ts TIMESTAMPTZ NOT NULL,
			ip TEXT
		);
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
