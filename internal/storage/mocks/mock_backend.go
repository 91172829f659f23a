package mocks

import (
	"context"
	"io"

	"runbot/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Kind() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBackend) Put(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) error {
	args := m.Called(ctx, key, r, opt)
	return args.Error(0)
}

func (m *MockBackend) URLFor(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBackend) List(ctx context.Context) <-chan storage.ObjectInfo {
	args := m.Called(ctx)
	if f, ok := args.Get(0).(func(context.Context) <-chan storage.ObjectInfo); ok {
		return f(ctx)
	}
	return args.Get(0).(<-chan storage.ObjectInfo)
}
