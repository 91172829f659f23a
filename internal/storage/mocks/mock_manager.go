package mocks

import (
	"context"
	"io"

	"runbot/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockManager stands in for the storage manager façade in service tests.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Upload(ctx context.Context, r io.ReadSeeker, declaredName string, category storage.Category) (*storage.StoredObject, error) {
	args := m.Called(ctx, r, declaredName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.StoredObject), args.Error(1)
}

func (m *MockManager) ResolveURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockManager) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockManager) Cleanup(ctx context.Context, maxAgeDays int) (*storage.CleanupReport, error) {
	args := m.Called(ctx, maxAgeDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.CleanupReport), args.Error(1)
}

func (m *MockManager) Stats(ctx context.Context) (*storage.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Stats), args.Error(1)
}
