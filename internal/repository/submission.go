package repository

import (
	"context"

	"runbot/internal/model"
)

// SubmissionRepository defines persistence for challenge submissions and
// their attached media descriptors.
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) (*model.Submission, error)

	FindByID(ctx context.Context, id int64) (*model.Submission, error)

	// List returns a page of submissions, newest first.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Submission], error)

	// SetMedia persists the storage key and size of an uploaded media file
	// on the submission row.
	SetMedia(ctx context.Context, id int64, mediaKey string, sizeBytes int64) error

	// UpdateStatus records a moderation decision.
	UpdateStatus(ctx context.Context, id int64, status, moderatorComment string) error

	// Delete removes a submission by ID. Deleting a missing row is not an error.
	Delete(ctx context.Context, id int64) error
}
