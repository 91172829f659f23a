package mocks

import (
	"context"

	"runbot/internal/model"
	"runbot/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Submission], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Submission]), args.Error(1)
}

func (m *MockSubmissionRepository) SetMedia(ctx context.Context, id int64, mediaKey string, sizeBytes int64) error {
	args := m.Called(ctx, id, mediaKey, sizeBytes)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateStatus(ctx context.Context, id int64, status, moderatorComment string) error {
	args := m.Called(ctx, id, status, moderatorComment)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
