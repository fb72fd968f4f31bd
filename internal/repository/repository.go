// Package repository contains data access layer abstractions over the document store.
// Implementations live in subpackages (postgres, firestore, memory) inside this directory.
package repository

import (
	"context"

	"appraisalapi/internal/model"
)

// Collection names shared by the document store backends.
const (
	FacultyCollection    = "faculty"
	AppraisalsCollection = "appraisals"
)

// FacultyRepository persists faculty profiles keyed by uid.
type FacultyRepository interface {
	// Upsert creates the profile or fully replaces the one stored under p.UID.
	Upsert(ctx context.Context, p *model.FacultyProfile) error
}

// AppraisalRepository persists appraisal records. No business logic here,
// strictly persistence operations.
type AppraisalRepository interface {
	// Create inserts a new record and returns it with the store generated ID.
	Create(ctx context.Context, a *model.Appraisal) (*model.Appraisal, error)

	// ListByUID returns every record whose uid equals uid, in the store's
	// natural iteration order. It returns an empty slice when nothing matches.
	ListByUID(ctx context.Context, uid string) ([]model.Appraisal, error)
}
