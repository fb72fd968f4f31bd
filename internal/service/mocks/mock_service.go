package mocks

import (
	"context"

	"appraisalapi/internal/model"
	"appraisalapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) SaveProfile(ctx context.Context, in service.SaveProfileInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type MockAppraisalService struct {
	mock.Mock
}

func (m *MockAppraisalService) Submit(ctx context.Context, in service.SubmitAppraisalInput) (*model.Appraisal, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appraisal), args.Error(1)
}

func (m *MockAppraisalService) List(ctx context.Context, q service.AppraisalQuery) ([]model.Appraisal, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appraisal), args.Error(1)
}
