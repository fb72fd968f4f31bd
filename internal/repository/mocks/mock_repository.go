package mocks

import (
	"context"

	"appraisalapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFacultyRepository struct {
	mock.Mock
}

func (m *MockFacultyRepository) Upsert(ctx context.Context, p *model.FacultyProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockAppraisalRepository struct {
	mock.Mock
}

func (m *MockAppraisalRepository) Create(ctx context.Context, a *model.Appraisal) (*model.Appraisal, error) {
	args := m.Called(ctx, a)
	if f, ok := args.Get(0).(func(context.Context, *model.Appraisal) *model.Appraisal); ok {
		return f(ctx, a), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appraisal), args.Error(1)
}

func (m *MockAppraisalRepository) ListByUID(ctx context.Context, uid string) ([]model.Appraisal, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appraisal), args.Error(1)
}
