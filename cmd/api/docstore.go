package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"appraisalapi/internal/config"
	"appraisalapi/internal/database"
	"appraisalapi/internal/database/migration"
	"appraisalapi/internal/logging"
	"appraisalapi/internal/repository"
	"appraisalapi/internal/repository/firestore"
	"appraisalapi/internal/repository/memory"
	"appraisalapi/internal/repository/postgres"
)

// docstore bundles the repositories of one backend with its probe and teardown.
type docstore struct {
	faculty    repository.FacultyRepository
	appraisals repository.AppraisalRepository
	ping       func(ctx context.Context) error
	close      func()
}

func openDocstore(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) (*docstore, error) {
	switch cfg.DocstoreBackend {
	case config.BackendPostgres:
		// Initialize PostgreSQL connection (with pooling via database/sql)
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return &docstore{
			faculty:    postgres.NewFacultyPostgres(db),
			appraisals: postgres.NewAppraisalPostgres(db),
			ping:       db.PingContext,
			close:      func() { _ = db.Close() },
		}, nil

	case config.BackendFirestore:
		client, err := database.NewFirestore(ctx, cfg.Firestore)
		if err != nil {
			return nil, err
		}
		appraisals := firestore.NewAppraisalFirestore(client)
		return &docstore{
			faculty:    firestore.NewFacultyFirestore(client),
			appraisals: appraisals,
			ping:       appraisals.Ping,
			close:      func() { _ = client.Close() },
		}, nil

	case config.BackendMemory:
		dbLogger := logging.Component(logger, "database")
		dbLogger.Warn().Msg("memory_docstore_not_persistent")
		store := memory.NewStore()
		return &docstore{
			faculty:    store,
			appraisals: store,
			ping:       func(context.Context) error { return nil },
			close:      func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported docstore backend %q", cfg.DocstoreBackend)
	}
}
