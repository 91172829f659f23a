package storage

import (
	"errors"
	"testing"

	"runbot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuotaConfig() config.QuotaConfig {
	return config.QuotaConfig{
		MaxUploadSizeMB:   10,
		MaxImageSizeMB:    5,
		MaxVideoSizeMB:    50,
		MaxDocumentSizeMB: 10,
	}
}

func TestQuotaPolicy_MaxBytesFor(t *testing.T) {
	p := NewQuotaPolicy(testQuotaConfig())

	limit, err := p.MaxBytesFor(CategoryImage)
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), limit)

	limit, err = p.MaxBytesFor(CategoryOther)
	require.NoError(t, err)
	assert.Equal(t, int64(10*1024*1024), limit)

	_, err = p.MaxBytesFor(Category("archive"))
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestQuotaPolicy_Validate(t *testing.T) {
	p := NewQuotaPolicy(testQuotaConfig())

	tests := []struct {
		name     string
		category Category
		size     int64
		wantErr  bool
	}{
		{"image under limit", CategoryImage, 1024, false},
		{"image exactly at limit", CategoryImage, 5 * 1024 * 1024, false},
		{"image one byte over", CategoryImage, 5*1024*1024 + 1, true},
		{"video at limit", CategoryVideo, 50 * 1024 * 1024, false},
		{"document over limit", CategoryDocument, 11 * 1024 * 1024, true},
		{"other at limit", CategoryOther, 10 * 1024 * 1024, false},
		{"zero size", CategoryImage, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.category, tt.size)
			if tt.wantErr {
				var qerr *QuotaExceededError
				require.Error(t, err)
				require.True(t, errors.As(err, &qerr))
				assert.Equal(t, tt.category, qerr.Category)
				assert.Equal(t, tt.size, qerr.Actual)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuotaPolicy_ValidateUnknownCategory(t *testing.T) {
	p := NewQuotaPolicy(testQuotaConfig())
	assert.ErrorIs(t, p.Validate(Category("archive"), 1), ErrUnsupportedCategory)
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		filename string
		want     Category
	}{
		{"photo.jpg", CategoryImage},
		{"photo.JPEG", CategoryImage},
		{"run.mp4", CategoryVideo},
		{"clip.webm", CategoryVideo},
		{"report.pdf", CategoryDocument},
		{"results.csv", CategoryDocument},
		{"archive.zip", CategoryOther},
		{"noextension", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCategory(tt.filename), tt.filename)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("shot.png"))
	assert.Equal(t, "application/pdf", ContentTypeFor("doc.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("blob.unknownext"))
}
