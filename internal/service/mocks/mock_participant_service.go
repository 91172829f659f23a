package mocks

import (
	"context"

	"runbot/internal/model"
	"runbot/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockParticipantService struct {
	mock.Mock
}

func (m *MockParticipantService) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantService) Get(ctx context.Context, id int64) (*model.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantService) List(ctx context.Context, limit, offset int) (*service.ParticipantListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ParticipantListResult), args.Error(1)
}

func (m *MockParticipantService) Update(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participant), args.Error(1)
}

func (m *MockParticipantService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
