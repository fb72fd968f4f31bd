package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_faculty",
		SQL: `CREATE TABLE IF NOT EXISTS faculty (
  uid        TEXT        PRIMARY KEY,
  first_name TEXT        NOT NULL,
  last_name  TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_appraisals",
		SQL: `CREATE TABLE IF NOT EXISTS appraisals (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  uid          TEXT        NOT NULL,
  title        TEXT        NOT NULL,
  category     TEXT        NOT NULL,
  description  TEXT        NOT NULL,
  date         TEXT        NOT NULL,
  image_url    TEXT        NOT NULL DEFAULT '',
  submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_appraisals_uid",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_appraisals_uid ON appraisals (uid);`,
	},
}

// EnsureMigrated checks if the 'appraisals' table exists and runs migrations if it doesn't.
// Appraisal uids are not tied to faculty rows; a submission may precede its profile.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("status", "starting").Msg("db_migration_check")

	var exists bool
	query := "SELECT to_regclass('public.appraisals') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Err(err).
			Str("status", "error").
			Dur("duration_ms", time.Since(start)).
			Msg("db_migration_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("status", "success").
			Dur("duration_ms", time.Since(start)).
			Msg("db_migration_skip")
		return nil
	}

	log.Info().Str("status", "in_progress").Msg("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Err(err).
				Str("status", "error").
				Str("migration_step", step.Name).
				Dur("duration_ms", time.Since(start)).
				Dur("step_duration_ms", time.Since(stepStart)).
				Msg("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("status", "success").
			Str("migration_step", step.Name).
			Dur("step_duration_ms", time.Since(stepStart)).
			Msg("db_migration_step")
	}

	log.Info().
		Str("status", "success").
		Dur("duration_ms", time.Since(start)).
		Msg("db_migration_success")

	return nil
}
