package storage

import (
	"mime"
	"path/filepath"
	"strings"

	"runbot/internal/config"
)

// Category classifies an upload for quota purposes.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryDocument Category = "document"
	CategoryOther    Category = "other"
)

const mb = int64(1024 * 1024)

// QuotaPolicy maps file categories to maximum upload sizes.
// It is built once from configuration and read-only afterwards.
type QuotaPolicy struct {
	limits map[Category]int64
}

// NewQuotaPolicy converts the configured per-category MB ceilings into bytes.
// CategoryOther is capped by the general MAX_UPLOAD_SIZE_MB limit.
func NewQuotaPolicy(cfg config.QuotaConfig) *QuotaPolicy {
	return &QuotaPolicy{
		limits: map[Category]int64{
			CategoryImage:    cfg.MaxImageSizeMB * mb,
			CategoryVideo:    cfg.MaxVideoSizeMB * mb,
			CategoryDocument: cfg.MaxDocumentSizeMB * mb,
			CategoryOther:    cfg.MaxUploadSizeMB * mb,
		},
	}
}

// MaxBytesFor returns the byte ceiling for a category.
func (p *QuotaPolicy) MaxBytesFor(cat Category) (int64, error) {
	limit, ok := p.limits[cat]
	if !ok {
		return 0, ErrUnsupportedCategory
	}
	return limit, nil
}

// Validate checks a measured byte length against the category's ceiling.
// A size exactly at the limit passes.
func (p *QuotaPolicy) Validate(cat Category, sizeBytes int64) error {
	limit, err := p.MaxBytesFor(cat)
	if err != nil {
		return err
	}
	if sizeBytes > limit {
		return &QuotaExceededError{Category: cat, Limit: limit, Actual: sizeBytes}
	}
	return nil
}

var categoryByExt = map[string]Category{
	".jpg": CategoryImage, ".jpeg": CategoryImage, ".png": CategoryImage,
	".gif": CategoryImage, ".webp": CategoryImage,
	".mp4": CategoryVideo, ".avi": CategoryVideo, ".mov": CategoryVideo,
	".wmv": CategoryVideo, ".flv": CategoryVideo, ".webm": CategoryVideo,
	".pdf": CategoryDocument, ".doc": CategoryDocument, ".docx": CategoryDocument,
	".txt": CategoryDocument, ".xlsx": CategoryDocument, ".xls": CategoryDocument,
	".csv": CategoryDocument,
}

// DetectCategory classifies a filename by extension.
// Unknown extensions fall back to CategoryOther.
func DetectCategory(filename string) Category {
	if cat, ok := categoryByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return cat
	}
	return CategoryOther
}

// ContentTypeFor guesses the MIME type from the filename extension.
func ContentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
