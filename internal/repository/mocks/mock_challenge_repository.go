package mocks

import (
	"context"

	"runbot/internal/model"
	"runbot/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	args := m.Called(ctx, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) FindByID(ctx context.Context, id int64) (*model.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Challenge], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Challenge]), args.Error(1)
}

func (m *MockChallengeRepository) Update(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	args := m.Called(ctx, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
