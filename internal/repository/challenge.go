package repository

import (
	"context"

	"runbot/internal/model"
)

// ChallengeRepository defines persistence for challenges.
type ChallengeRepository interface {
	Create(ctx context.Context, c *model.Challenge) (*model.Challenge, error)
	FindByID(ctx context.Context, id int64) (*model.Challenge, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Challenge], error)
	Update(ctx context.Context, c *model.Challenge) (*model.Challenge, error)
	Delete(ctx context.Context, id int64) error
}
