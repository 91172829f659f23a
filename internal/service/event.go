package service

import (
	"context"
	"database/sql"
	"errors"

	"runbot/internal/model"
	"runbot/internal/repository"
)

// EventListResult is the service-level DTO for paginated events.
type EventListResult struct {
	Items []model.Event `json:"data"`
	Total int           `json:"total"`
}

// EventService defines admin operations over events.
type EventService interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context, limit, offset int) (*EventListResult, error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	repo repository.EventRepository
}

// NewEventService constructs a new EventService.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func validateEvent(e *model.Event) error {
	if e.Name == "" {
		return ErrNameRequired
	}
	if !e.EndDate.After(e.StartDate) {
		return ErrInvalidDateRange
	}
	switch e.Status {
	case "", model.EventStatusUpcoming, model.EventStatusActive,
		model.EventStatusFinished, model.EventStatusCancelled:
	default:
		return ErrInvalidStatus
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if e.Status == "" {
		e.Status = model.EventStatusUpcoming
	}
	return s.repo.Create(ctx, e)
}

func (s *eventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *eventService) List(ctx context.Context, limit, offset int) (*EventListResult, error) {
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
	return &EventListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *eventService) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID <= 0 {
		return nil, ErrIDRequired
	}
	if err := validateEvent(e); err != nil {
		return nil, err
	}
	out, err := s.repo.Update(ctx, e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
