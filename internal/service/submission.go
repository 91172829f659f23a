package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"runbot/internal/model"
	"runbot/internal/repository"
	"runbot/internal/storage"
)

// MediaStorage is the subset of the storage manager the services need.
// Declared here so tests can substitute a mock.
type MediaStorage interface {
	Upload(ctx context.Context, r io.ReadSeeker, declaredName string, category storage.Category) (*storage.StoredObject, error)
	ResolveURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Cleanup(ctx context.Context, maxAgeDays int) (*storage.CleanupReport, error)
	Stats(ctx context.Context) (*storage.Stats, error)
}

var _ MediaStorage = (*storage.Manager)(nil)

// SubmissionListResult is the service-level DTO for paginated submissions.
type SubmissionListResult struct {
	Items []model.Submission `json:"data"`
	Total int                `json:"total"`
}

// SubmissionService defines the admin use cases around challenge submissions
// and their attached media.
type SubmissionService interface {
	// List returns submissions using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*SubmissionListResult, error)

	// Get returns a single submission by its ID.
	Get(ctx context.Context, id int64) (*model.Submission, error)

	// Moderate records an approve/reject decision.
	Moderate(ctx context.Context, id int64, status, moderatorComment string) error

	// AttachMedia uploads the stream through the storage manager and persists
	// the returned key on the submission. A previously attached object is
	// deleted after the swap succeeds.
	AttachMedia(ctx context.Context, id int64, r io.ReadSeeker, declaredFilename string) (*storage.StoredObject, error)

	// MediaURL resolves the submission's stored media key to an access URL.
	MediaURL(ctx context.Context, id int64) (string, error)

	// Delete removes a submission and its stored media, media first so a
	// failed object delete keeps the DB reference for retry.
	Delete(ctx context.Context, id int64) error
}

type submissionService struct {
	store MediaStorage
	repo  repository.SubmissionRepository
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(store MediaStorage, repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{store: store, repo: repo}
}

func (s *submissionService) List(ctx context.Context, limit, offset int) (*SubmissionListResult, error) {
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
	return &SubmissionListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *submissionService) Get(ctx context.Context, id int64) (*model.Submission, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *submissionService) Moderate(ctx context.Context, id int64, status, moderatorComment string) error {
	if id <= 0 {
		return ErrIDRequired
	}
	switch status {
	case model.SubmissionStatusApproved, model.SubmissionStatusRejected, model.SubmissionStatusPending:
	default:
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status, moderatorComment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *submissionService) AttachMedia(ctx context.Context, id int64, r io.ReadSeeker, declaredFilename string) (*storage.StoredObject, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	prev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, err := s.store.Upload(ctx, r, declaredFilename, "")
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetMedia(ctx, id, obj.Key, obj.SizeBytes); err != nil {
		// Rollback: the DB row never referenced the new object.
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("persist media key failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("persist media key failed: %w", err)
	}

	// Old object is unreferenced now; best-effort removal.
	if prev.MediaKey != "" && prev.MediaKey != obj.Key {
		_ = s.store.Delete(ctx, prev.MediaKey)
	}
	return obj, nil
}

func (s *submissionService) MediaURL(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", ErrIDRequired
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if sub.MediaKey == "" {
		return "", ErrNoMedia
	}
	return s.store.ResolveURL(ctx, sub.MediaKey)
}

func (s *submissionService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if sub.MediaKey != "" {
		if err := s.store.Delete(ctx, sub.MediaKey); err != nil {
			return fmt.Errorf("delete media: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}
