package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"
)

// keyStampLayout is a compact UTC timestamp with nanosecond precision.
// Keys sort lexicographically in upload order.
const keyStampLayout = "20060102T150405.000000000"

// StoredObject describes a successfully stored upload. It is immutable once
// returned; the caller persists Key (and resolves URLs from it) in its own
// records.
type StoredObject struct {
	Key       string    `json:"key"`
	Category  Category  `json:"category"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
	Backend   string    `json:"backend"`
}

// Stats summarizes the current contents of the active backend.
type Stats struct {
	Backend     string `json:"backend"`
	ObjectCount int    `json:"object_count"`
	TotalBytes  int64  `json:"total_bytes"`
}

// Manager is the façade in front of the active Backend: it sanitizes
// filenames, enforces quotas before any write, allocates collision-free
// keys, and owns the retention sweeper.
type Manager struct {
	backend Backend
	quota   *QuotaPolicy
	sweeper *Sweeper

	mu   sync.Mutex
	last time.Time
}

// NewManager wires a Manager over the given backend and quota policy.
func NewManager(b Backend, q *QuotaPolicy) *Manager {
	return &Manager{
		backend: b,
		quota:   q,
		sweeper: NewSweeper(b),
	}
}

// Upload validates and stores one object.
//
// The size is measured by seeking the stream itself, never taken from a
// client-declared header, then the stream is rewound before the backend
// write. Validation failures happen before any backend call and leave no
// side effects. An empty category is detected from the filename extension.
func (m *Manager) Upload(ctx context.Context, r io.ReadSeeker, declaredName string, category Category) (*StoredObject, error) {
	name, err := sanitizeFilename(declaredName)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = DetectCategory(name)
	}

	size, err := measureStream(r)
	if err != nil {
		return nil, fmt.Errorf("measure upload size: %w", err)
	}
	if err := m.quota.Validate(category, size); err != nil {
		return nil, err
	}

	now := m.nextStamp()
	key := now.Format(keyStampLayout) + "_" + name

	if err := m.backend.Put(ctx, key, r, PutOptions{
		Size:        size,
		ContentType: ContentTypeFor(name),
	}); err != nil {
		return nil, err
	}

	return &StoredObject{
		Key:       key,
		Category:  category,
		SizeBytes: size,
		CreatedAt: now,
		Backend:   m.backend.Kind(),
	}, nil
}

// ResolveURL returns a read reference for a stored key. It does not verify
// existence; callers needing that must check their own records first.
func (m *Manager) ResolveURL(ctx context.Context, key string) (string, error) {
	return m.backend.URLFor(ctx, key)
}

// Delete removes a stored object. Idempotent: deleting an absent key is nil.
func (m *Manager) Delete(ctx context.Context, key string) error {
	return m.backend.Delete(ctx, key)
}

// Cleanup deletes every object older than maxAgeDays. Only one sweep runs
// at a time; a concurrent call fails with ErrSweepRunning.
func (m *Manager) Cleanup(ctx context.Context, maxAgeDays int) (*CleanupReport, error) {
	return m.sweeper.Sweep(ctx, time.Duration(maxAgeDays)*24*time.Hour)
}

// Stats walks the backend listing and totals object count and bytes.
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{Backend: m.backend.Kind()}
	for obj := range m.backend.List(ctx) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		st.ObjectCount++
		st.TotalBytes += obj.Size
	}
	return st, nil
}

// Backend exposes the active backend's kind for logging and stats.
func (m *Manager) Backend() string { return m.backend.Kind() }

// nextStamp hands out strictly increasing UTC timestamps, so two uploads of
// the same filename can never share a key even within one clock tick.
func (m *Manager) nextStamp() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(m.last) {
		now = m.last.Add(time.Nanosecond)
	}
	m.last = now
	return now
}

// sanitizeFilename strips directory components and control characters from a
// client-declared filename, keeping only a safe basename.
func sanitizeFilename(name string) (string, error) {
	// Keep only the last path segment, tolerating Windows separators.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsControl(r):
			// drop
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		return "", ErrInvalidFilename
	}
	return clean, nil
}

// measureStream finds the remaining byte count by seeking to the end, then
// restores the read position for the backend write.
func measureStream(r io.Seeker) (int64, error) {
	cur, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end - cur, nil
}
