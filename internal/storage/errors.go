package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilename is returned when a declared filename sanitizes to nothing.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrUnsupportedCategory is returned for a category with no quota rule.
	ErrUnsupportedCategory = errors.New("unsupported file category")

	// ErrBackendUnavailable is returned at startup when the selected backend
	// is missing required configuration.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrSweepRunning is returned when a cleanup sweep is requested while
	// another sweep is still in flight.
	ErrSweepRunning = errors.New("cleanup sweep already running")
)

// QuotaExceededError reports an upload larger than its category allows.
type QuotaExceededError struct {
	Category Category
	Limit    int64
	Actual   int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s: %d bytes > limit %d bytes", e.Category, e.Actual, e.Limit)
}

// WriteError wraps a backend I/O, network, or authentication failure during a write.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DeleteError wraps a genuine backend failure during a delete.
// A missing object is never a DeleteError.
type DeleteError struct {
	Key string
	Err error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s: %v", e.Key, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }
