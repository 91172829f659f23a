package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"runbot/internal/config"
)

// Package storage routes media uploads to either a local filesystem root or an
// S3-compatible object store (Cloudflare R2). The backend is chosen once at
// startup and held as a single Backend value; no call branches on a storage
// type flag at runtime.

// PutOptions define optional parameters for writing objects.
// Size must be the exact number of bytes to write.
type PutOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo describes one stored object as seen by a listing pass.
// Err carries a listing failure through the channel, mirroring how the
// minio client reports errors mid-stream.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	Err          error
}

// Backend is the capability set every storage medium must provide.
// Implementations are safe for concurrent use.
type Backend interface {
	// Kind identifies the backend ("local" or "r2").
	Kind() string
	// Put writes the object under key. It never leaves a partially written
	// object visible under key on failure.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) error
	// URLFor returns a reference the caller can use to read the object:
	// a serve path for local disk, a time-limited signed URL for the
	// object store. It does not check that the object exists.
	URLFor(ctx context.Context, key string) (string, error)
	// Delete removes the object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// List emits every current object on the returned channel, one pass,
	// lazily. Object-store pagination is handled under the interface.
	// The channel is closed when the listing ends or ctx is cancelled.
	List(ctx context.Context) <-chan ObjectInfo
}

// New selects and constructs the Backend for the given configuration.
// A configuration that cannot support its selected backend fails here,
// before any upload traffic is served.
func New(cfg config.StorageConfig) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	switch cfg.Type {
	case config.StorageLocal:
		return NewLocal(cfg.MediaPath)
	case config.StorageR2:
		return NewR2(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown storage type %q", ErrBackendUnavailable, cfg.Type)
	}
}
