package mocks

import (
	"context"

	"runbot/internal/model"
	"runbot/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Create(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	args := m.Called(ctx, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeService) Get(ctx context.Context, id int64) (*model.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeService) List(ctx context.Context, limit, offset int) (*service.ChallengeListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChallengeListResult), args.Error(1)
}

func (m *MockChallengeService) Update(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	args := m.Called(ctx, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Challenge), args.Error(1)
}

func (m *MockChallengeService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
