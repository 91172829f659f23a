package mocks

import (
	"context"

	"runbot/internal/model"
	"runbot/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id int64) (*model.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Participant], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Participant]), args.Error(1)
}

func (m *MockParticipantRepository) Update(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
