package service

import (
	"context"
	"database/sql"
	"errors"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// ChallengeListResult is the service-level DTO for paginated challenges.
type ChallengeListResult struct {
	Items []model.Challenge `json:"data"`
	Total int               `json:"total"`
}

// ChallengeService defines admin operations over fitness challenges.
type ChallengeService interface {
	Create(ctx context.Context, ch *model.Challenge) (*model.Challenge, error)
	Get(ctx context.Context, id int64) (*model.Challenge, error)
	List(ctx context.Context, limit, offset int) (*ChallengeListResult, error)
	Update(ctx context.Context, ch *model.Challenge) (*model.Challenge, error)
	Delete(ctx context.Context, id int64) error
}

type challengeService struct {
	repo repository.ChallengeRepository
}

// NewChallengeService constructs a new ChallengeService.
func NewChallengeService(repo repository.ChallengeRepository) ChallengeService {
	return &challengeService{repo: repo}
}

func validateChallenge(ch *model.Challenge) error {
	if ch.Name == "" {
		return ErrNameRequired
	}
	if !ch.EndDate.After(ch.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *challengeService) Create(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	if err := validateChallenge(ch); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, ch)
}

func (s *challengeService) Get(ctx context.Context, id int64) (*model.Challenge, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	ch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ch, nil
}

func (s *challengeService) List(ctx context.Context, limit, offset int) (*ChallengeListResult, error) {
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
	return &ChallengeListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *challengeService) Update(ctx context.Context, ch *model.Challenge) (*model.Challenge, error) {
	if ch.ID <= 0 {
		return nil, ErrIDRequired
	}
	if err := validateChallenge(ch); err != nil {
		return nil, err
	}
	out, err := s.repo.Update(ctx, ch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *challengeService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
