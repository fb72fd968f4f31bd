package service

import (
	"context"
	"fmt"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
	"appraisalapi/internal/storage"
)

// SubmitAppraisalInput is a self-appraisal submission with an optional proof image.
type SubmitAppraisalInput struct {
	UID         string               `json:"uid" validate:"required"`
	Title       string               `json:"title" validate:"required"`
	Category    string               `json:"category" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Date        string               `json:"date" validate:"required"`
	Image       *model.UploadedImage `json:"-"`
}

// AppraisalQuery selects a user's appraisals, optionally narrowed by date parts.
type AppraisalQuery struct {
	UID   string `json:"uid" validate:"required"`
	Year  string `json:"year"`
	Month string `json:"month"`
	Date  string `json:"date"`
}

// AppraisalService defines the use cases for self-appraisals.
type AppraisalService interface {
	// Submit uploads the proof image when present, then records the appraisal.
	// A failed insert after a successful upload leaves the object in place.
	Submit(ctx context.Context, in SubmitAppraisalInput) (*model.Appraisal, error)

	// List returns the user's appraisals that pass the query's filter.
	List(ctx context.Context, q AppraisalQuery) ([]model.Appraisal, error)
}

type appraisalService struct {
	store storage.Storage
	repo  repository.AppraisalRepository
	opts  options
}

// NewAppraisalService constructs a new AppraisalService.
func NewAppraisalService(store storage.Storage, repo repository.AppraisalRepository, opts ...Option) AppraisalService {
	return &appraisalService{store: store, repo: repo, opts: buildOptions(opts)}
}

func (s *appraisalService) Submit(ctx context.Context, in SubmitAppraisalInput) (*model.Appraisal, error) {
	if err := checkRequired(in, MsgMissingAppraisal); err != nil {
		return nil, err
	}

	var key, imageURL string
	if in.Image != nil {
		key = storage.TimestampedKey(ProofPrefix, s.opts.now(), in.Image.Filename)
		url, err := s.uploadProof(ctx, key, in.Image)
		if err != nil {
			return nil, &StoreError{Op: "upload proof image", Err: err}
		}
		imageURL = url
	}

	rec := &model.Appraisal{
		UID:         in.UID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		ImageURL:    imageURL,
		SubmittedAt: s.opts.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		if key != "" {
			s.opts.loggerFor(ctx).Warn().
				Str("object_key", key).
				Str("uid", in.UID).
				Err(err).
				Msg("appraisal_insert_failed_object_orphaned")
		}
		return nil, &StoreError{Op: "insert appraisal", Err: err}
	}
	return stored, nil
}

// uploadProof writes the image to the object store, waits for the store to
// confirm the object, and returns a signed read URL for it.
func (s *appraisalService) uploadProof(ctx context.Context, key string, img *model.UploadedImage) (string, error) {
	w := s.store.NewWriter(ctx, key, img.ContentType, int64(len(img.Data)))
	_, writeErr := w.Write(img.Data)
	closeErr := w.Close()

	if err := <-w.Done(); err != nil {
		return "", err
	}
	if writeErr != nil {
		return "", writeErr
	}
	if closeErr != nil {
		return "", closeErr
	}

	url, err := s.store.PresignGet(ctx, key, s.opts.signedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("sign url: %w", err)
	}

	s.opts.loggerFor(ctx).Debug().
		Str("object_key", key).
		Str("content_type", img.ContentType).
		Int("size", len(img.Data)).
		Msg("proof_image_uploaded")
	return url, nil
}

func (s *appraisalService) List(ctx context.Context, q AppraisalQuery) ([]model.Appraisal, error) {
	if err := checkRequired(q, MsgUIDRequired); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByUID(ctx, q.UID)
	if err != nil {
		return nil, &StoreError{Op: "query appraisals", Err: err}
	}

	f := Filter{Year: q.Year, Month: q.Month, Date: q.Date}
	out := make([]model.Appraisal, 0, len(items))
	for _, a := range items {
		if f.Match(a.Date, s.opts.filterMode) {
			out = append(out, a)
		}
	}
	return out, nil
}
