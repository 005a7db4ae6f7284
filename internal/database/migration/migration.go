// Package migration creates the journal snapshot schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"xerosync/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked before running; its presence means the schema is
// already in place.
const sentinelTable = "public.journals"

var steps = []migrationStep{
	{
		Name: "create_table_journals",
		SQL: `CREATE TABLE IF NOT EXISTS journals (
  id               TEXT        PRIMARY KEY,
  journal_date     DATE        NOT NULL,
  journal_number   TEXT        NOT NULL DEFAULT '',
  reference        TEXT        NOT NULL DEFAULT '',
  created_date_utc TIMESTAMPTZ NOT NULL,
  source_id        TEXT        NOT NULL DEFAULT '',
  source_type      TEXT        NOT NULL DEFAULT '',
  synced_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_journal_lines",
		SQL: `CREATE TABLE IF NOT EXISTS journal_lines (
  journal_id          TEXT    NOT NULL REFERENCES journals (id) ON DELETE CASCADE,
  position            INTEGER NOT NULL CHECK (position >= 0),
  journal_line_id     TEXT    NOT NULL DEFAULT '',
  account_id          TEXT    NOT NULL DEFAULT '',
  account_code        TEXT    NOT NULL DEFAULT '',
  account_type        TEXT    NOT NULL DEFAULT '',
  account_name        TEXT    NOT NULL DEFAULT '',
  description         TEXT    NOT NULL DEFAULT '',
  net_amount          NUMERIC NOT NULL DEFAULT 0,
  gross_amount        NUMERIC NOT NULL DEFAULT 0,
  tax_amount          NUMERIC NOT NULL DEFAULT 0,
  tax_type            TEXT    NOT NULL DEFAULT '',
  tax_name            TEXT    NOT NULL DEFAULT '',
  tracking_categories JSONB   NOT NULL DEFAULT '[]',
  PRIMARY KEY (journal_id, position)
);`,
	},
	{
		Name: "create_index_journals_journal_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_journals_journal_date ON journals (journal_date);`,
	},
	{
		Name: "create_index_journal_lines_account_code",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_journal_lines_account_code ON journal_lines (account_code);`,
	},
}

// EnsureMigrated runs every step unless the journals table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = logger.OrNop(log).With(zap.String("component", "database"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		log.Error("db migration failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		log.Info("schema already exists, skipping migration", zap.Duration("elapsed", time.Since(start)))
		return nil
	}

	log.Info("db migration started", zap.Int("steps", len(steps)))
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db migration failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("step_elapsed", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug("db migration step applied",
			zap.String("migration_step", step.Name),
			zap.Duration("step_elapsed", time.Since(stepStart)),
		)
	}

	log.Info("db migration finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}
