package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"runbot/internal/config"
)

// signedURLTTL bounds how long a leaked media link stays usable.
const signedURLTTL = time.Hour

// r2Backend stores objects in a Cloudflare R2 bucket through the
// S3-compatible minio client. It is safe for concurrent use.
type r2Backend struct {
	client *minio.Client
	bucket string
}

// NewR2 creates the R2 client, verifies connectivity and ensures the bucket
// exists (creates it if missing).
func NewR2(cfg config.StorageConfig) (Backend, error) {
	endpoint := fmt.Sprintf("%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, ""),
		Secure: true,
		Region: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create r2 client: %v", ErrBackendUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.R2Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: check bucket existence: %v", ErrBackendUnavailable, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.R2Bucket, minio.MakeBucketOptions{Region: "auto"}); err != nil {
			return nil, fmt.Errorf("%w: create bucket: %v", ErrBackendUnavailable, err)
		}
	}

	return &r2Backend{client: cli, bucket: cfg.R2Bucket}, nil
}

func (r *r2Backend) Kind() string { return "r2" }

// Put uploads in a single call; the object store commits object-atomically.
func (r *r2Backend) Put(ctx context.Context, key string, reader io.Reader, opt PutOptions) error {
	_, err := r.client.PutObject(ctx, r.bucket, key, reader, opt.Size, minio.PutObjectOptions{
		ContentType: opt.ContentType,
	})
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// URLFor presigns a GET for the given object key. The bucket is never
// publicly readable; the expiring link is the only read path.
func (r *r2Backend) URLFor(ctx context.Context, key string) (string, error) {
	u, err := r.client.PresignedGetObject(ctx, r.bucket, key, signedURLTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return u.String(), nil
}

// Delete removes the object. S3-style deletes succeed for absent keys, which
// gives us idempotence for free.
func (r *r2Backend) Delete(ctx context.Context, key string) error {
	if err := r.client.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return &DeleteError{Key: key, Err: err}
	}
	return nil
}

// List streams the bucket contents. The minio client paginates the
// underlying ListObjectsV2 calls; consumers only see one channel.
func (r *r2Backend) List(ctx context.Context) <-chan ObjectInfo {
	out := make(chan ObjectInfo)
	go func() {
		defer close(out)
		for obj := range r.client.ListObjects(ctx, r.bucket, minio.ListObjectsOptions{}) {
			info := ObjectInfo{
				Key:          obj.Key,
				Size:         obj.Size,
				LastModified: obj.LastModified,
				Err:          obj.Err,
			}
			select {
			case out <- info:
			case <-ctx.Done():
				return
			}
			if obj.Err != nil {
				return
			}
		}
	}()
	return out
}
