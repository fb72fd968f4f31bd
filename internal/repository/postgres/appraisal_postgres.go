package postgres

import (
	"context"
	"database/sql"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
)

// AppraisalPostgres is a PostgreSQL implementation of repository.AppraisalRepository.
// Identifiers are generated by the database.
type AppraisalPostgres struct {
	db *sql.DB
}

// NewAppraisalPostgres creates a new AppraisalPostgres repository.
func NewAppraisalPostgres(db *sql.DB) *AppraisalPostgres {
	return &AppraisalPostgres{db: db}
}

var _ repository.AppraisalRepository = (*AppraisalPostgres)(nil)

// Create inserts a new appraisal row and returns the stored record.
func (r *AppraisalPostgres) Create(ctx context.Context, a *model.Appraisal) (*model.Appraisal, error) {
	const q = `
		INSERT INTO appraisals (uid, title, category, description, date, image_url, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, uid, title, category, description, date, image_url, submitted_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.UID,
		a.Title,
		a.Category,
		a.Description,
		a.Date,
		a.ImageURL,
		a.SubmittedAt,
	)
	var out model.Appraisal
	if err := scanAppraisal(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUID returns every appraisal owned by uid. Rows come back in heap
// order, which for this append-only table is insertion order.
func (r *AppraisalPostgres) ListByUID(ctx context.Context, uid string) ([]model.Appraisal, error) {
	const q = `
		SELECT id::text, uid, title, category, description, date, image_url, submitted_at
		FROM appraisals
		WHERE uid = $1
	`
	rows, err := r.db.QueryContext(ctx, q, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Appraisal, 0)
	for rows.Next() {
		var a model.Appraisal
		if err := scanAppraisal(rows, &a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAppraisal(s scanner, a *model.Appraisal) error {
	return s.Scan(
		&a.ID,
		&a.UID,
		&a.Title,
		&a.Category,
		&a.Description,
		&a.Date,
		&a.ImageURL,
		&a.SubmittedAt,
	)
}
