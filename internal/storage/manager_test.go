package storage_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"runbot/internal/config"
	"runbot/internal/storage"
	"runbot/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^\d{8}T\d{6}\.\d{9}_`)

func newTestManager(b storage.Backend) *storage.Manager {
	return storage.NewManager(b, storage.NewQuotaPolicy(config.QuotaConfig{
		MaxUploadSizeMB:   10,
		MaxImageSizeMB:    5,
		MaxVideoSizeMB:    50,
		MaxDocumentSizeMB: 10,
	}))
}

func TestManagerUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)
		r := strings.NewReader("hello")

		mb.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return keyPattern.MatchString(key) && strings.HasSuffix(key, "_photo.jpg")
		}), r, storage.PutOptions{Size: 5, ContentType: "image/jpeg"}).Return(nil)
		mb.On("Kind").Return("local")

		obj, err := m.Upload(ctx, r, "photo.jpg", "")

		require.NoError(t, err)
		assert.Equal(t, storage.CategoryImage, obj.Category)
		assert.Equal(t, int64(5), obj.SizeBytes)
		assert.Equal(t, "local", obj.Backend)
		assert.False(t, obj.CreatedAt.IsZero())
		mb.AssertExpectations(t)
	})

	t.Run("6MB image over 5MB limit", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)
		r := bytes.NewReader(make([]byte, 6*1024*1024))

		obj, err := m.Upload(ctx, r, "big.jpg", storage.CategoryImage)

		require.Error(t, err)
		var qerr *storage.QuotaExceededError
		require.True(t, errors.As(err, &qerr))
		assert.Equal(t, storage.CategoryImage, qerr.Category)
		assert.Equal(t, int64(5*1024*1024), qerr.Limit)
		assert.Equal(t, int64(6*1024*1024), qerr.Actual)
		assert.Nil(t, obj)
		mb.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("3MB document under 10MB limit", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)
		r := bytes.NewReader(make([]byte, 3*1024*1024))

		mb.On("Put", ctx, mock.Anything, r, mock.Anything).Return(nil)
		mb.On("Kind").Return("r2")

		obj, err := m.Upload(ctx, r, "plan.pdf", "")

		require.NoError(t, err)
		assert.Equal(t, storage.CategoryDocument, obj.Category)
		assert.Equal(t, int64(3*1024*1024), obj.SizeBytes)
	})

	t.Run("invalid filename", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)

		_, err := m.Upload(ctx, strings.NewReader("x"), "///", "")

		assert.ErrorIs(t, err, storage.ErrInvalidFilename)
		mb.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported category", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)

		_, err := m.Upload(ctx, strings.NewReader("x"), "a.txt", storage.Category("archive"))

		assert.ErrorIs(t, err, storage.ErrUnsupportedCategory)
		mb.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("backend write failure propagates", func(t *testing.T) {
		mb := new(mocks.MockBackend)
		m := newTestManager(mb)
		r := strings.NewReader("x")

		mb.On("Put", ctx, mock.Anything, r, mock.Anything).
			Return(&storage.WriteError{Key: "k", Err: errors.New("disk full")})

		_, err := m.Upload(ctx, r, "a.txt", "")

		var werr *storage.WriteError
		require.True(t, errors.As(err, &werr))
	})
}

func TestManagerUploadKeyUniqueness(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	m := newTestManager(mb)

	var keys []string
	mb.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			keys = append(keys, args.String(1))
		}).Return(nil)
	mb.On("Kind").Return("local")

	for i := 0; i < 50; i++ {
		_, err := m.Upload(ctx, strings.NewReader("same"), "run.jpg", "")
		require.NoError(t, err)
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "key %q assigned twice", k)
		seen[k] = true
	}
	// Keys must sort in upload order.
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestManagerResolveURL(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	m := newTestManager(mb)

	mb.On("URLFor", ctx, "20240101T000000.000000000_a.jpg").
		Return("/media/20240101T000000.000000000_a.jpg", nil)

	url, err := m.ResolveURL(ctx, "20240101T000000.000000000_a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "/media/20240101T000000.000000000_a.jpg", url)
}

func TestManagerDelete(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	m := newTestManager(mb)

	mb.On("Delete", ctx, "some-key").Return(nil).Twice()

	// Idempotent per the backend contract: both calls succeed.
	assert.NoError(t, m.Delete(ctx, "some-key"))
	assert.NoError(t, m.Delete(ctx, "some-key"))
	mb.AssertExpectations(t)
}

func TestManagerStats(t *testing.T) {
	ctx := context.Background()
	mb := new(mocks.MockBackend)
	m := newTestManager(mb)

	mb.On("Kind").Return("local")
	mb.On("List", ctx).Return(func(context.Context) <-chan storage.ObjectInfo {
		ch := make(chan storage.ObjectInfo, 3)
		ch <- storage.ObjectInfo{Key: "a", Size: 100}
		ch <- storage.ObjectInfo{Key: "b", Size: 250}
		ch <- storage.ObjectInfo{Key: "c", Size: 50}
		close(ch)
		return ch
	})

	st, err := m.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, st.ObjectCount)
	assert.Equal(t, int64(400), st.TotalBytes)
	assert.Equal(t, "local", st.Backend)
}
