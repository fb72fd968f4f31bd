package service

import (
	"context"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
)

// SaveProfileInput is the profile a faculty member submits. Only presence is
// checked; the email format is taken as given.
type SaveProfileInput struct {
	UID       string `json:"uid" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// ProfileService defines the use cases for faculty profiles.
type ProfileService interface {
	// SaveProfile creates or fully replaces the profile stored under in.UID.
	SaveProfile(ctx context.Context, in SaveProfileInput) error
}

type profileService struct {
	repo repository.FacultyRepository
	opts options
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(repo repository.FacultyRepository, opts ...Option) ProfileService {
	return &profileService{repo: repo, opts: buildOptions(opts)}
}

func (s *profileService) SaveProfile(ctx context.Context, in SaveProfileInput) error {
	if err := checkRequired(in, MsgMissingProfile); err != nil {
		return err
	}

	p := &model.FacultyProfile{
		UID:       in.UID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Timestamp: s.opts.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return &StoreError{Op: "save profile", Err: err}
	}
	return nil
}
