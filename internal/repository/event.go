package repository

import (
	"context"

	"runbot/internal/model"
)

// EventRepository defines persistence for events (runs, challenges, tournaments).
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Event], error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}
