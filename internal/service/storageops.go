package service

import (
	"context"

	"runbot/internal/storage"
)

// StorageOpsService exposes backend-wide storage operations to the panel:
// usage stats and manual retention sweeps.
type StorageOpsService interface {
	Stats(ctx context.Context) (*storage.Stats, error)
	Cleanup(ctx context.Context, maxAgeDays int) (*storage.CleanupReport, error)
}

type storageOpsService struct {
	store      MediaStorage
	defaultAge int
}

// NewStorageOpsService constructs a StorageOpsService. defaultAgeDays is
// used when a cleanup request does not specify a retention window.
func NewStorageOpsService(store MediaStorage, defaultAgeDays int) StorageOpsService {
	return &storageOpsService{store: store, defaultAge: defaultAgeDays}
}

func (s *storageOpsService) Stats(ctx context.Context) (*storage.Stats, error) {
	return s.store.Stats(ctx)
}

func (s *storageOpsService) Cleanup(ctx context.Context, maxAgeDays int) (*storage.CleanupReport, error) {
	if maxAgeDays <= 0 {
		maxAgeDays = s.defaultAge
	}
	return s.store.Cleanup(ctx, maxAgeDays)
}
