package postgres

import (
	"context"
	"database/sql"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
)

// FacultyPostgres is a PostgreSQL implementation of repository.FacultyRepository.
type FacultyPostgres struct {
	db *sql.DB
}

// NewFacultyPostgres creates a new FacultyPostgres repository.
func NewFacultyPostgres(db *sql.DB) *FacultyPostgres {
	return &FacultyPostgres{db: db}
}

var _ repository.FacultyRepository = (*FacultyPostgres)(nil)

// Upsert inserts the profile or overwrites every column of the existing row.
func (r *FacultyPostgres) Upsert(ctx context.Context, p *model.FacultyProfile) error {
	const q = `
		INSERT INTO faculty (uid, first_name, last_name, email, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			email      = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q,
		p.UID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Timestamp,
	)
	return err
}
