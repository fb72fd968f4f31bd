// Package firestore implements the repositories on Cloud Firestore collections.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
)

// FacultyFirestore stores profiles as documents keyed by uid.
type FacultyFirestore struct {
	client *firestore.Client
}

// NewFacultyFirestore creates a new FacultyFirestore repository.
func NewFacultyFirestore(client *firestore.Client) *FacultyFirestore {
	return &FacultyFirestore{client: client}
}

var _ repository.FacultyRepository = (*FacultyFirestore)(nil)

// Upsert overwrites the document at faculty/{uid}. Set without merge
// options replaces every field.
func (r *FacultyFirestore) Upsert(ctx context.Context, p *model.FacultyProfile) error {
	_, err := r.client.Collection(repository.FacultyCollection).Doc(p.UID).Set(ctx, p)
	return err
}

// AppraisalFirestore stores appraisals under auto-generated document IDs.
type AppraisalFirestore struct {
	client *firestore.Client
}

// NewAppraisalFirestore creates a new AppraisalFirestore repository.
func NewAppraisalFirestore(client *firestore.Client) *AppraisalFirestore {
	return &AppraisalFirestore{client: client}
}

var _ repository.AppraisalRepository = (*AppraisalFirestore)(nil)

// Create adds a document to the appraisals collection.
func (r *AppraisalFirestore) Create(ctx context.Context, a *model.Appraisal) (*model.Appraisal, error) {
	ref, _, err := r.client.Collection(repository.AppraisalsCollection).Add(ctx, a)
	if err != nil {
		return nil, err
	}
	out := *a
	out.ID = ref.ID
	return &out, nil
}

// ListByUID runs an equality query on uid and decodes every match.
func (r *AppraisalFirestore) ListByUID(ctx context.Context, uid string) ([]model.Appraisal, error) {
	iter := r.client.Collection(repository.AppraisalsCollection).Where("uid", "==", uid).Documents(ctx)
	defer iter.Stop()

	items := make([]model.Appraisal, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var a model.Appraisal
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode appraisal %s: %w", snap.Ref.ID, err)
		}
		a.ID = snap.Ref.ID
		items = append(items, a)
	}
	return items, nil
}

// Ping reads at most one appraisal document to confirm the client can reach Firestore.
func (r *AppraisalFirestore) Ping(ctx context.Context) error {
	iter := r.client.Collection(repository.AppraisalsCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}
