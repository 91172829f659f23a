package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"runbot/internal/storage"
	"runbot/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listOf(objs ...storage.ObjectInfo) func(context.Context) <-chan storage.ObjectInfo {
	return func(context.Context) <-chan storage.ObjectInfo {
		ch := make(chan storage.ObjectInfo, len(objs))
		for _, o := range objs {
			ch <- o
		}
		close(ch)
		return ch
	}
}

func TestSweepRetentionCutoff(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	s := storage.NewSweeper(mb)

	now := time.Now()
	mb.On("List", ctx).Return(listOf(
		storage.ObjectInfo{Key: "stale.jpg", Size: 2048, LastModified: now.AddDate(0, 0, -10)},
		storage.ObjectInfo{Key: "fresh.jpg", Size: 1024, LastModified: now.AddDate(0, 0, -1)},
	))
	mb.On("Delete", ctx, "stale.jpg").Return(nil)

	report, err := s.Sweep(ctx, 7*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, report.DeletedCount)
	assert.Equal(t, int64(2048), report.DeletedBytes)
	assert.Empty(t, report.Failures)
	mb.AssertNotCalled(t, "Delete", ctx, "fresh.jpg")
}

func TestSweepPartialFailure(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	s := storage.NewSweeper(mb)

	old := time.Now().AddDate(0, 0, -30)
	mb.On("List", ctx).Return(listOf(
		storage.ObjectInfo{Key: "a.jpg", Size: 10, LastModified: old},
		storage.ObjectInfo{Key: "b.jpg", Size: 20, LastModified: old},
		storage.ObjectInfo{Key: "c.jpg", Size: 30, LastModified: old},
	))
	mb.On("Delete", ctx, "a.jpg").Return(nil)
	mb.On("Delete", ctx, "b.jpg").Return(&storage.DeleteError{Key: "b.jpg", Err: errors.New("network down")})
	mb.On("Delete", ctx, "c.jpg").Return(nil)

	report, err := s.Sweep(ctx, 7*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, report.DeletedCount)
	assert.Equal(t, int64(40), report.DeletedBytes)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "b.jpg", report.Failures[0].Key)
	mb.AssertExpectations(t)
}

func TestSweepListingErrorAborts(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	s := storage.NewSweeper(mb)

	old := time.Now().AddDate(0, 0, -30)
	mb.On("List", ctx).Return(listOf(
		storage.ObjectInfo{Key: "a.jpg", Size: 10, LastModified: old},
		storage.ObjectInfo{Err: errors.New("listing failed")},
	))
	mb.On("Delete", ctx, "a.jpg").Return(nil)

	report, err := s.Sweep(ctx, 7*24*time.Hour)

	require.Error(t, err)
	// The partial report still accounts for work done before the failure.
	assert.Equal(t, 1, report.DeletedCount)
}

func TestSweepSingleFlight(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	s := storage.NewSweeper(mb)

	started := make(chan struct{})
	release := make(chan storage.ObjectInfo)
	mb.On("List", mock.Anything).Return(func(context.Context) <-chan storage.ObjectInfo {
		close(started)
		return release
	}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := s.Sweep(ctx, 7*24*time.Hour)
		assert.NoError(t, err)
	}()

	<-started
	_, err := s.Sweep(ctx, 7*24*time.Hour)
	assert.ErrorIs(t, err, storage.ErrSweepRunning)

	close(release)
	<-done

	// Once the first sweep finished, a new one may start.
	mb.On("List", ctx).Return(listOf())
	_, err = s.Sweep(ctx, 7*24*time.Hour)
	assert.NoError(t, err)
}
