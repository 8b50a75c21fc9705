package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// schemaStatements is the full DDL for the service. The employee reference
// on shifts is TEXT without a foreign key: callers may store generated or
// prefixed identifiers, and deleting an employee must leave their shift
// rows in place.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS managers (
        id BIGSERIAL PRIMARY KEY,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        phone TEXT NOT NULL UNIQUE,
        email TEXT NOT NULL UNIQUE,
        password TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS employees (
        id BIGSERIAL PRIMARY KEY,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        phone TEXT,
        manager_id BIGINT NOT NULL REFERENCES managers(id) ON DELETE CASCADE
    )`,
	`CREATE TABLE IF NOT EXISTS shifts (
        id BIGSERIAL PRIMARY KEY,
        manager_id BIGINT NOT NULL REFERENCES managers(id) ON DELETE CASCADE,
        employee_id TEXT NOT NULL,
        day TEXT NOT NULL,
        shift_type TEXT NOT NULL,
        week_start_date TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_lookup
        ON shifts (manager_id, week_start_date, day, shift_type)`,
}

// InitSchema creates the tables and indexes inside a single transaction so a
// failure mid-creation rolls back all DDL. Runs once at process start.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping schema init")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}

	logger.Info("database schema ready", zap.Int("statements", len(schemaStatements)))
	return nil
}
