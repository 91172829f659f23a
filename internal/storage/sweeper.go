package storage

import (
	"context"
	"sync/atomic"
	"time"
)

// CleanupReport accumulates the outcome of one retention sweep.
// A sweep is best-effort: per-object delete failures are recorded here and
// the sweep moves on to the next object.
type CleanupReport struct {
	DeletedCount int            `json:"deleted_count"`
	DeletedBytes int64          `json:"deleted_bytes"`
	Failures     []SweepFailure `json:"failures,omitempty"`
}

// SweepFailure records one object the sweep could not delete.
type SweepFailure struct {
	Key string `json:"key"`
	Err error  `json:"-"`
}

// Sweeper reclaims backend space by deleting objects older than a cutoff.
// At most one sweep is in flight per process; overlapping sweeps would only
// waste backend calls, so a second invocation is rejected rather than queued.
type Sweeper struct {
	backend  Backend
	sweeping atomic.Bool
}

// NewSweeper returns a Sweeper over the given backend.
func NewSweeper(b Backend) *Sweeper {
	return &Sweeper{backend: b}
}

// Sweep deletes every object whose last-modified time precedes now-maxAge.
// It consumes the backend listing incrementally, so large buckets are never
// materialized in memory. Returns ErrSweepRunning if a sweep is in flight.
// A listing failure aborts the sweep; the partial report is still returned.
func (s *Sweeper) Sweep(ctx context.Context, maxAge time.Duration) (*CleanupReport, error) {
	if !s.sweeping.CompareAndSwap(false, true) {
		return nil, ErrSweepRunning
	}
	defer s.sweeping.Store(false)

	cutoff := time.Now().Add(-maxAge)
	report := &CleanupReport{}

	for obj := range s.backend.List(ctx) {
		if obj.Err != nil {
			return report, obj.Err
		}
		if !obj.LastModified.Before(cutoff) {
			continue
		}
		if err := s.backend.Delete(ctx, obj.Key); err != nil {
			report.Failures = append(report.Failures, SweepFailure{Key: obj.Key, Err: err})
			continue
		}
		report.DeletedCount++
		report.DeletedBytes += obj.Size
	}
	return report, nil
}
