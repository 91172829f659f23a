package repository

import (
	"context"

	"runbot/internal/model"
)

// ParticipantRepository defines persistence for registered participants.
// No business logic here, strictly SQL-backed operations.
type ParticipantRepository interface {
	// Create inserts a new participant and returns the stored row.
	Create(ctx context.Context, p *model.Participant) (*model.Participant, error)

	// FindByID returns a participant by primary key.
	FindByID(ctx context.Context, id int64) (*model.Participant, error)

	// List returns a page of participants ordered by registration date.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Participant], error)

	// Update overwrites mutable fields of an existing participant.
	Update(ctx context.Context, p *model.Participant) (*model.Participant, error)

	// Delete removes a participant by ID. Deleting a missing row is not an error.
	Delete(ctx context.Context, id int64) error
}
