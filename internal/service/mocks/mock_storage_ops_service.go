package mocks

import (
	"context"

	"runbot/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorageOpsService struct {
	mock.Mock
}

func (m *MockStorageOpsService) Stats(ctx context.Context) (*storage.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Stats), args.Error(1)
}

func (m *MockStorageOpsService) Cleanup(ctx context.Context, maxAgeDays int) (*storage.CleanupReport, error) {
	args := m.Called(ctx, maxAgeDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.CleanupReport), args.Error(1)
}
