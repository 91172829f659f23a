package mocks

import (
	"context"
	"io"

	"runbot/internal/model"
	"runbot/internal/service"
	"runbot/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) List(ctx context.Context, limit, offset int) (*service.SubmissionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionListResult), args.Error(1)
}

func (m *MockSubmissionService) Get(ctx context.Context, id int64) (*model.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *MockSubmissionService) Moderate(ctx context.Context, id int64, status, moderatorComment string) error {
	args := m.Called(ctx, id, status, moderatorComment)
	return args.Error(0)
}

func (m *MockSubmissionService) AttachMedia(ctx context.Context, id int64, r io.ReadSeeker, declaredFilename string) (*storage.StoredObject, error) {
	args := m.Called(ctx, id, r, declaredFilename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.StoredObject), args.Error(1)
}

func (m *MockSubmissionService) MediaURL(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
