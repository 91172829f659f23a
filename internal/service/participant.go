package service

import (
	"context"
	"database/sql"
	"errors"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// ParticipantListResult is the service-level DTO for paginated participants.
type ParticipantListResult struct {
	Items []model.Participant `json:"data"`
	Total int                 `json:"total"`
}

// ParticipantService defines admin operations over registered participants.
type ParticipantService interface {
	Create(ctx context.Context, p *model.Participant) (*model.Participant, error)
	Get(ctx context.Context, id int64) (*model.Participant, error)
	List(ctx context.Context, limit, offset int) (*ParticipantListResult, error)
	Update(ctx context.Context, p *model.Participant) (*model.Participant, error)
	Delete(ctx context.Context, id int64) error
}

type participantService struct {
	repo repository.ParticipantRepository
}

// NewParticipantService constructs a new ParticipantService.
func NewParticipantService(repo repository.ParticipantRepository) ParticipantService {
	return &participantService{repo: repo}
}

func (s *participantService) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	if p.FullName == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, p)
}

func (s *participantService) Get(ctx context.Context, id int64) (*model.Participant, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *participantService) List(ctx context.Context, limit, offset int) (*ParticipantListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ParticipantListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *participantService) Update(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	if p.ID <= 0 {
		return nil, ErrIDRequired
	}
	if p.FullName == "" {
		return nil, ErrNameRequired
	}
	out, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *participantService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
