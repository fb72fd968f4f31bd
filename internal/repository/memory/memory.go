// Package memory is an in-process document store for local development and tests.
// Records live only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository"
)

// Store keeps faculty profiles by uid and appraisals in insertion order.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	mu         sync.RWMutex
	faculty    map[string]model.FacultyProfile
	appraisals []model.Appraisal
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{faculty: make(map[string]model.FacultyProfile)}
}

var (
	_ repository.FacultyRepository   = (*Store)(nil)
	_ repository.AppraisalRepository = (*Store)(nil)
)

// Upsert stores a copy of p, replacing any profile with the same uid.
func (s *Store) Upsert(_ context.Context, p *model.FacultyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faculty[p.UID] = *p
	return nil
}

// Profile returns the stored profile for uid.
func (s *Store) Profile(uid string) (model.FacultyProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.faculty[uid]
	return p, ok
}

// ProfileCount reports how many profiles are stored.
func (s *Store) ProfileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.faculty)
}

// Create appends a copy of a under a freshly generated ID.
func (s *Store) Create(_ context.Context, a *model.Appraisal) (*model.Appraisal, error) {
	out := *a
	out.ID = uuid.NewString()

	s.mu.Lock()
	s.appraisals = append(s.appraisals, out)
	s.mu.Unlock()

	return &out, nil
}

// ListByUID returns the appraisals owned by uid in insertion order.
func (s *Store) ListByUID(_ context.Context, uid string) ([]model.Appraisal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Appraisal, 0)
	for _, a := range s.appraisals {
		if a.UID == uid {
			items = append(items, a)
		}
	}
	return items, nil
}
