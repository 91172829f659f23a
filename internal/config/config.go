package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backend kinds selectable via STORAGE_TYPE.
const (
	StorageLocal = "local"
	StorageR2    = "r2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig selects and configures the media storage backend.
// Exactly one backend is active per process; there is no runtime swap.
type StorageConfig struct {
	// Type is either "local" or "r2".
	Type string

	// MediaPath is the root directory for the local backend.
	MediaPath string

	// Cloudflare R2 settings (S3-compatible).
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
}

// QuotaConfig holds per-category upload size ceilings, in megabytes.
type QuotaConfig struct {
	MaxUploadSizeMB   int64
	MaxImageSizeMB    int64
	MaxVideoSizeMB    int64
	MaxDocumentSizeMB int64
}

// AuthConfig holds admin authentication settings.
type AuthConfig struct {
	JWTSecret     string
	TokenTTLMin   int
	AdminUsername string
	AdminPassword string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables at startup; nothing
// re-reads the environment mid-request.
type AppConfig struct {
	AppHost         string
	Port            string
	Database        DatabaseConfig
	Storage         StorageConfig
	Quota           QuotaConfig
	Auth            AuthConfig
	AutoCleanupDays int
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the .env file.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Type:              getEnv("STORAGE_TYPE", StorageLocal),
			MediaPath:         getEnv("MEDIA_PATH", "media"),
			R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			R2Bucket:          getEnv("R2_BUCKET", "runbot-media"),
		},
		Quota: QuotaConfig{
			MaxUploadSizeMB:   getEnvInt64("MAX_UPLOAD_SIZE_MB", 10),
			MaxImageSizeMB:    getEnvInt64("MAX_IMAGE_SIZE_MB", 5),
			MaxVideoSizeMB:    getEnvInt64("MAX_VIDEO_SIZE_MB", 50),
			MaxDocumentSizeMB: getEnvInt64("MAX_DOCUMENT_SIZE_MB", 10),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTLMin:   getEnvInt("SESSION_LIFETIME_MIN", 60),
			AdminUsername: getEnv("ADMIN_USERNAME", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		AutoCleanupDays: getEnvInt("AUTO_CLEANUP_DAYS", 7),
	}
}

// Validate checks that the selected backend has everything it needs.
// It runs once at startup so a misconfigured backend refuses to serve
// upload traffic instead of failing lazily on first use.
func (c *StorageConfig) Validate() error {
	switch c.Type {
	case StorageLocal:
		if c.MediaPath == "" {
			return fmt.Errorf("storage: MEDIA_PATH is required for local storage")
		}
	case StorageR2:
		if c.R2AccountID == "" || c.R2AccessKeyID == "" || c.R2SecretAccessKey == "" {
			return fmt.Errorf("storage: R2_ACCOUNT_ID, R2_ACCESS_KEY_ID and R2_SECRET_ACCESS_KEY are required for r2 storage")
		}
		if c.R2Bucket == "" {
			return fmt.Errorf("storage: R2_BUCKET is required for r2 storage")
		}
	default:
		return fmt.Errorf("storage: unknown STORAGE_TYPE %q", c.Type)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
